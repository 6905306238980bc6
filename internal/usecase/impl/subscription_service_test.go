package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cashmemo/internal/domain/constants"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/service"
	"cashmemo/internal/infra/cache"
	mockRepo "cashmemo/internal/mocks/repository"
	mockSvc "cashmemo/internal/mocks/service"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionFixture struct {
	store     *fakeStore
	publisher *mockSvc.MockEventPublisher
	service   *subscriptionService
	now       time.Time
	shop      *entity.ShopProfile
	pro       *entity.SubscriptionPlan
	adminID   uuid.UUID
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	t.Helper()

	store, tm := newFakeStore()
	store.addPlan(&entity.SubscriptionPlan{Name: "Free", Slug: "free", IsDefault: true})
	pro := store.addPlan(&entity.SubscriptionPlan{Name: "Pro", Slug: "pro", Price: 499, MaxProducts: entity.Unlimited})
	shop := store.addShop(&entity.ShopProfile{ShopName: "Nakshi Ghor", ShopSlug: "nakshi-ghor"})

	publisher := mockSvc.NewMockEventPublisher(t)
	now := time.Date(2024, 1, 31, 11, 0, 0, 0, dhaka)

	return &subscriptionFixture{
		store:     store,
		publisher: publisher,
		service: &subscriptionService{
			txManager: tm,
			repos:     store,
			publisher: publisher,
			plans:     newCachedLoader(cache.NewMemoryCache(64, time.Minute), time.Minute, newDiscardLogger()),
			logger:    newDiscardLogger(),
			now:       func() time.Time { return now },
		},
		now:     now,
		shop:    shop,
		pro:     pro,
		adminID: uuid.New(),
	}
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(event *service.DomainEvent) bool {
		return event.Type == eventType
	})
}

func TestSubscriptionService_VerifyTransaction_GrantsPro(t *testing.T) {
	f := newSubscriptionFixture(t)
	txn := f.store.addPendingTransaction(f.shop, f.pro, "8N7A6D5C")

	f.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == constants.EventPaymentVerified &&
				event.UserID == f.shop.UserID.String() &&
				event.Data["transaction_id"] == "8N7A6D5C"
		})).
		Return(nil).
		Once()

	out, err := f.service.VerifyTransaction(context.Background(), f.adminID, &usecase.VerifyTransactionInput{
		TransactionID: " 8N7A6D5C ",
		Status:        entity.PaymentTransactionVerified,
		Note:          "matched bKash statement",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentTransactionVerified, out.Transaction.Status)
	assert.Equal(t, f.adminID, *out.Transaction.VerifiedBy)

	shop, err := f.store.FindShopByID(context.Background(), f.shop.ID)
	require.NoError(t, err)
	assert.True(t, shop.IsPro)
	require.NotNil(t, shop.ProExpiry)
	// 31 Jan plus one calendar month clamps to 29 Feb.
	assert.True(t, shop.ProExpiry.Equal(time.Date(2024, 2, 29, 11, 0, 0, 0, dhaka)))

	request := f.store.requestFor(txn.ID)
	require.NotNil(t, request)
	assert.Equal(t, entity.SubscriptionRequestApproved, request.Status)
	assert.Equal(t, f.adminID, *request.ResolvedBy)

	require.Len(t, f.store.notifications, 1)
	assert.Equal(t, entity.NotificationPaymentVerified, f.store.notifications[0].Type)
	assert.Equal(t, f.shop.UserID, f.store.notifications[0].UserID)
	assert.Contains(t, f.store.notifications[0].Message, "29 Feb 2024")
}

func TestSubscriptionService_VerifyTransaction_RejectLeavesShopUnchanged(t *testing.T) {
	f := newSubscriptionFixture(t)
	txn := f.store.addPendingTransaction(f.shop, f.pro, "REJ-001")

	f.publisher.EXPECT().Publish(mock.Anything, eventOfType(constants.EventPaymentRejected)).Return(nil).Once()

	out, err := f.service.VerifyTransaction(context.Background(), f.adminID, &usecase.VerifyTransactionInput{
		TransactionID: "REJ-001",
		Status:        entity.PaymentTransactionRejected,
		Note:          "no such transaction on statement",
	})

	require.NoError(t, err)
	assert.Equal(t, "Transaction rejected", out.Message)
	assert.Equal(t, 0, f.store.grants)

	shop, err := f.store.FindShopByID(context.Background(), f.shop.ID)
	require.NoError(t, err)
	assert.False(t, shop.IsPro)
	assert.Nil(t, shop.ProExpiry)

	assert.Equal(t, entity.SubscriptionRequestRejected, f.store.requestFor(txn.ID).Status)
	require.Len(t, f.store.notifications, 1)
	assert.Equal(t, entity.NotificationPaymentRejected, f.store.notifications[0].Type)
}

func TestSubscriptionService_VerifyTransaction_SecondDecisionIsRefused(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.store.addPendingTransaction(f.shop, f.pro, "TWICE-1")

	f.publisher.EXPECT().Publish(mock.Anything, eventOfType(constants.EventPaymentVerified)).Return(nil).Once()

	_, err := f.service.VerifyTransaction(context.Background(), f.adminID, &usecase.VerifyTransactionInput{
		TransactionID: "TWICE-1",
		Status:        entity.PaymentTransactionVerified,
	})
	require.NoError(t, err)

	_, err = f.service.VerifyTransaction(context.Background(), uuid.New(), &usecase.VerifyTransactionInput{
		TransactionID: "TWICE-1",
		Status:        entity.PaymentTransactionRejected,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyProcessed))
	assert.Equal(t, 1, f.store.grants)
	assert.Len(t, f.store.notifications, 1)
}

func TestSubscriptionService_VerifyTransaction_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.VerifyTransactionInput
		wantErr error
	}{
		{
			name:    "pending is not a decision",
			input:   &usecase.VerifyTransactionInput{TransactionID: "X1", Status: entity.PaymentTransactionPending},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "blank transaction id",
			input:   &usecase.VerifyTransactionInput{TransactionID: "  ", Status: entity.PaymentTransactionVerified},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown transaction",
			input:   &usecase.VerifyTransactionInput{TransactionID: "NOPE", Status: entity.PaymentTransactionVerified},
			wantErr: domainerrors.ErrPaymentTransactionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubscriptionFixture(t)

			out, err := f.service.VerifyTransaction(context.Background(), f.adminID, tt.input)

			assert.Nil(t, out)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Empty(t, f.store.notifications)
		})
	}
}

func TestSubscriptionService_VerifyTransaction_PublishFailureKeepsDecision(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.store.addPendingTransaction(f.shop, f.pro, "PUB-FAIL")

	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker unavailable")).Once()

	out, err := f.service.VerifyTransaction(context.Background(), f.adminID, &usecase.VerifyTransactionInput{
		TransactionID: "PUB-FAIL",
		Status:        entity.PaymentTransactionVerified,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentTransactionVerified, out.Transaction.Status)
	assert.Equal(t, 1, f.store.grants)
}

func TestSubscriptionService_VerifyTransaction_FailureAfterStatusChangeRollsBack(t *testing.T) {
	tests := []struct {
		name   string
		status entity.PaymentTransactionStatus
		inject func(store *fakeStore)
	}{
		{
			name:   "pro grant fails",
			status: entity.PaymentTransactionVerified,
			inject: func(store *fakeStore) { store.grantErr = errors.New("shop row update failed") },
		},
		{
			name:   "request resolution fails",
			status: entity.PaymentTransactionVerified,
			inject: func(store *fakeStore) { store.resolveErr = errors.New("request row update failed") },
		},
		{
			name:   "notification insert fails",
			status: entity.PaymentTransactionVerified,
			inject: func(store *fakeStore) { store.notifyErr = errors.New("notifications table unavailable") },
		},
		{
			name:   "notification insert fails on reject",
			status: entity.PaymentTransactionRejected,
			inject: func(store *fakeStore) { store.notifyErr = errors.New("notifications table unavailable") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubscriptionFixture(t)
			txn := f.store.addPendingTransaction(f.shop, f.pro, "ROLLBACK-1")
			tt.inject(f.store)

			out, err := f.service.VerifyTransaction(context.Background(), f.adminID, &usecase.VerifyTransactionInput{
				TransactionID: "ROLLBACK-1",
				Status:        tt.status,
			})

			require.Error(t, err)
			assert.Nil(t, out)
			assert.False(t, errors.Is(err, domainerrors.ErrAlreadyProcessed))
			f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)

			stored, findErr := f.store.FindByTransactionID(context.Background(), "ROLLBACK-1")
			require.NoError(t, findErr)
			assert.Equal(t, entity.PaymentTransactionPending, stored.Status)
			assert.Nil(t, stored.VerifiedBy)

			shop, findErr := f.store.FindShopByID(context.Background(), f.shop.ID)
			require.NoError(t, findErr)
			assert.False(t, shop.IsPro)
			assert.Nil(t, shop.ProExpiry)
			assert.Equal(t, 0, f.store.grants)

			assert.Equal(t, entity.SubscriptionRequestPending, f.store.requestFor(txn.ID).Status)
			assert.Empty(t, f.store.notifications)
		})
	}
}

func TestSubscriptionService_VerifyTransaction_RetryAfterRollback(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.store.addPendingTransaction(f.shop, f.pro, "RETRY-1")
	f.store.grantErr = errors.New("shop row update failed")

	input := &usecase.VerifyTransactionInput{TransactionID: "RETRY-1", Status: entity.PaymentTransactionVerified}
	_, err := f.service.VerifyTransaction(context.Background(), f.adminID, input)
	require.Error(t, err)

	f.store.grantErr = nil
	f.publisher.EXPECT().Publish(mock.Anything, eventOfType(constants.EventPaymentVerified)).Return(nil).Once()

	out, err := f.service.VerifyTransaction(context.Background(), f.adminID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentTransactionVerified, out.Transaction.Status)
	assert.Equal(t, 1, f.store.grants)
}

func TestSubscriptionService_VerifyTransaction_ConcurrentAdminsSingleWinner(t *testing.T) {
	const admins = 8

	f := newSubscriptionFixture(t)
	f.store.addPendingTransaction(f.shop, f.pro, "RACE-42")

	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	var (
		wg        sync.WaitGroup
		winners   atomic.Int32
		refused   atomic.Int32
		verdicts  sync.Map
		startLine = make(chan struct{})
	)
	for i := 0; i < admins; i++ {
		status := entity.PaymentTransactionVerified
		if i%2 == 1 {
			status = entity.PaymentTransactionRejected
		}

		wg.Add(1)
		go func(worker int, status entity.PaymentTransactionStatus) {
			defer wg.Done()
			<-startLine

			ctx := context.WithValue(context.Background(), workerContextKey, worker)
			out, err := f.service.VerifyTransaction(ctx, uuid.New(), &usecase.VerifyTransactionInput{
				TransactionID: "RACE-42",
				Status:        status,
			})
			switch {
			case err == nil:
				winners.Add(1)
				verdicts.Store("winner", out.Transaction.Status)
			case errors.Is(err, domainerrors.ErrAlreadyProcessed):
				refused.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i, status)
	}
	close(startLine)
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
	assert.Equal(t, int32(admins-1), refused.Load())
	assert.Len(t, f.store.notifications, 1)

	winner, ok := verdicts.Load("winner")
	require.True(t, ok)
	if winner == entity.PaymentTransactionVerified {
		assert.Equal(t, 1, f.store.grants)
	} else {
		assert.Equal(t, 0, f.store.grants)
	}
}

func TestSubscriptionService_SubmitSubscriptionRequest(t *testing.T) {
	validInput := func(planID uuid.UUID, transactionID string) *usecase.SubmitSubscriptionInput {
		return &usecase.SubmitSubscriptionInput{
			PlanID:        planID,
			TransactionID: transactionID,
			Amount:        499,
			PaymentMethod: entity.MobilePaymentBkash,
			SenderNumber:  "01711000000",
		}
	}

	t.Run("records pending transaction and request", func(t *testing.T) {
		f := newSubscriptionFixture(t)

		out, err := f.service.SubmitSubscriptionRequest(context.Background(), f.shop.UserID, validInput(f.pro.ID, " BK123 "))

		require.NoError(t, err)
		assert.Equal(t, "BK123", out.Transaction.TransactionID)
		assert.Equal(t, entity.PaymentTransactionPending, out.Transaction.Status)
		assert.Equal(t, entity.SubscriptionRequestPending, out.Request.Status)
		assert.Equal(t, out.Transaction.ID, out.Request.PaymentTransactionID)
		assert.Equal(t, "pro", out.Request.Plan.Slug)
		assert.Equal(t, 1, f.store.lockCalls)
	})

	t.Run("one pending request per shop", func(t *testing.T) {
		f := newSubscriptionFixture(t)
		f.store.addPendingTransaction(f.shop, f.pro, "FIRST")

		_, err := f.service.SubmitSubscriptionRequest(context.Background(), f.shop.UserID, validInput(f.pro.ID, "SECOND"))

		assert.True(t, errors.Is(err, domainerrors.ErrPendingRequestExists))
	})

	t.Run("transaction id reused by another shop", func(t *testing.T) {
		f := newSubscriptionFixture(t)
		other := f.store.addShop(&entity.ShopProfile{ShopName: "Other"})
		f.store.addPendingTransaction(other, f.pro, "SHARED")

		_, err := f.service.SubmitSubscriptionRequest(context.Background(), f.shop.UserID, validInput(f.pro.ID, "SHARED"))

		assert.True(t, errors.Is(err, domainerrors.ErrTransactionDuplicate))
	})

	t.Run("inactive plan", func(t *testing.T) {
		f := newSubscriptionFixture(t)
		retired := f.store.addPlan(&entity.SubscriptionPlan{Slug: "legacy"})
		retired.IsActive = false

		_, err := f.service.SubmitSubscriptionRequest(context.Background(), f.shop.UserID, validInput(retired.ID, "BK9"))

		assert.True(t, errors.Is(err, domainerrors.ErrPlanNotFound))
	})

	t.Run("validation", func(t *testing.T) {
		f := newSubscriptionFixture(t)

		input := validInput(f.pro.ID, "BK1")
		input.Amount = 0
		_, err := f.service.SubmitSubscriptionRequest(context.Background(), f.shop.UserID, input)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		input = validInput(f.pro.ID, "BK1")
		input.PaymentMethod = "paypal"
		_, err = f.service.SubmitSubscriptionRequest(context.Background(), f.shop.UserID, input)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		assert.Empty(t, f.store.txns)
	})
}

func TestSubscriptionService_ListPlans_ServedFromCache(t *testing.T) {
	repos := mockRepo.NewMockRepositoryFactory(t)
	planRepo := mockRepo.NewMockPlanRepository(t)
	plans := []*entity.SubscriptionPlan{{ID: uuid.New(), Slug: "free"}, {ID: uuid.New(), Slug: "pro"}}

	repos.EXPECT().PlanRepo().Return(planRepo).Once()
	planRepo.EXPECT().ListActivePlans(mock.Anything).Return(plans, nil).Once()

	srv := NewSubscriptionService(SubscriptionServiceParams{
		Repos:  repos,
		Cache:  cache.NewMemoryCache(64, time.Minute),
		Logger: newDiscardLogger(),
	})

	first, err := srv.ListPlans(context.Background())
	require.NoError(t, err)
	second, err := srv.ListPlans(context.Background())
	require.NoError(t, err)

	require.Len(t, second, 2)
	assert.Equal(t, first[1].Slug, second[1].Slug)
	assert.Equal(t, plans[0].ID, second[0].ID)
}
