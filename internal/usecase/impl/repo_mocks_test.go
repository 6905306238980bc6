package impl

import (
	"context"
	"testing"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/domain/repository"
	mockRepo "cashmemo/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// repoMocks wires every repository mock behind one factory. The transaction
// manager runs the callback against the same factory.
type repoMocks struct {
	factory       *mockRepo.MockRepositoryFactory
	tx            *mockRepo.MockTransactionManager
	user          *mockRepo.MockUserRepository
	admin         *mockRepo.MockAdminRepository
	shop          *mockRepo.MockShopRepository
	plan          *mockRepo.MockPlanRepository
	category      *mockRepo.MockCategoryRepository
	product       *mockRepo.MockProductRepository
	customer      *mockRepo.MockCustomerRepository
	order         *mockRepo.MockOrderRepository
	invoice       *mockRepo.MockInvoiceRepository
	payment       *mockRepo.MockPaymentRepository
	paymentMethod *mockRepo.MockPaymentMethodRepository
	notification  *mockRepo.MockNotificationRepository
}

func newRepoMocks(t *testing.T) *repoMocks {
	t.Helper()

	m := &repoMocks{
		factory:       mockRepo.NewMockRepositoryFactory(t),
		tx:            mockRepo.NewMockTransactionManager(t),
		user:          mockRepo.NewMockUserRepository(t),
		admin:         mockRepo.NewMockAdminRepository(t),
		shop:          mockRepo.NewMockShopRepository(t),
		plan:          mockRepo.NewMockPlanRepository(t),
		category:      mockRepo.NewMockCategoryRepository(t),
		product:       mockRepo.NewMockProductRepository(t),
		customer:      mockRepo.NewMockCustomerRepository(t),
		order:         mockRepo.NewMockOrderRepository(t),
		invoice:       mockRepo.NewMockInvoiceRepository(t),
		payment:       mockRepo.NewMockPaymentRepository(t),
		paymentMethod: mockRepo.NewMockPaymentMethodRepository(t),
		notification:  mockRepo.NewMockNotificationRepository(t),
	}

	m.factory.EXPECT().UserRepo().Return(m.user).Maybe()
	m.factory.EXPECT().AdminRepo().Return(m.admin).Maybe()
	m.factory.EXPECT().ShopRepo().Return(m.shop).Maybe()
	m.factory.EXPECT().PlanRepo().Return(m.plan).Maybe()
	m.factory.EXPECT().CategoryRepo().Return(m.category).Maybe()
	m.factory.EXPECT().ProductRepo().Return(m.product).Maybe()
	m.factory.EXPECT().CustomerRepo().Return(m.customer).Maybe()
	m.factory.EXPECT().OrderRepo().Return(m.order).Maybe()
	m.factory.EXPECT().InvoiceRepo().Return(m.invoice).Maybe()
	m.factory.EXPECT().PaymentRepo().Return(m.payment).Maybe()
	m.factory.EXPECT().PaymentMethodRepo().Return(m.paymentMethod).Maybe()
	m.factory.EXPECT().NotificationRepo().Return(m.notification).Maybe()

	m.tx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Maybe()

	return m
}

// ownShop registers the shop returned for userID by resolveShop.
func (m *repoMocks) ownShop(userID uuid.UUID) *entity.ShopProfile {
	shop := &entity.ShopProfile{
		ID:       uuid.New(),
		UserID:   userID,
		ShopName: "Nakshi Ghor",
		ShopSlug: "nakshi-ghor",
	}
	m.shop.EXPECT().FindShopByUserID(mock.Anything, userID).Return(shop, nil).Maybe()

	return shop
}

func ptr[T any](v T) *T {
	return &v
}
