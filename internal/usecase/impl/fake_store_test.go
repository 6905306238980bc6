package impl

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTxManager struct {
	mu       sync.Mutex
	factory  repository.RepositoryFactory
	txStates map[context.Context]*fakeTxState
}

type fakeTxState struct {
	unlocks []func()
	undos   []func()
}

type fakeContextKey string

const workerContextKey fakeContextKey = "worker-index"

func newFakeTxManager() *fakeTxManager {
	return &fakeTxManager{txStates: make(map[context.Context]*fakeTxState)}
}

func (tm *fakeTxManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	state := &fakeTxState{}

	tm.mu.Lock()
	tm.txStates[ctx] = state
	tm.mu.Unlock()

	defer func() {
		tm.mu.Lock()
		delete(tm.txStates, ctx)
		tm.mu.Unlock()

		// Row locks are held until commit or rollback.
		for i := len(state.unlocks) - 1; i >= 0; i-- {
			state.unlocks[i]()
		}
	}()

	err := fn(tm.factory)
	if err != nil {
		for i := len(state.undos) - 1; i >= 0; i-- {
			state.undos[i]()
		}
	}

	return err
}

// recordUndo registers how to revert a write made inside the transaction bound
// to ctx. Writes outside a transaction are not recorded.
func (tm *fakeTxManager) recordUndo(ctx context.Context, undo func()) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if state, ok := tm.txStates[ctx]; ok {
		state.undos = append(state.undos, undo)
	}
}

func (tm *fakeTxManager) registerUnlock(ctx context.Context, unlockFn func()) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	state, ok := tm.txStates[ctx]
	if !ok {
		return errors.New("transaction state not found for context")
	}

	state.unlocks = append(state.unlocks, unlockFn)

	return nil
}

type rowLockManager struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (m *rowLockManager) lock(id uuid.UUID) func() {
	m.mu.Lock()
	lock, ok := m.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[id] = lock
	}
	m.mu.Unlock()

	lock.Lock()

	return lock.Unlock
}

// fakeStore is an in-memory stand-in for the quota and payment verification
// tables. Repositories it does not implement are left nil and panic if called.
type fakeStore struct {
	repository.UserRepository
	repository.AdminRepository
	repository.CustomerRepository
	repository.InvoiceRepository
	repository.PaymentRepository
	repository.PaymentMethodRepository

	mu            sync.Mutex
	txManager     *fakeTxManager
	rowLocks      *rowLockManager
	shops         map[uuid.UUID]*entity.ShopProfile
	plans         map[uuid.UUID]*entity.SubscriptionPlan
	defaultPlan   *entity.SubscriptionPlan
	requests      []*entity.SubscriptionRequest
	txns          map[uuid.UUID]*entity.PaymentTransaction
	categories    map[uuid.UUID]int64
	products      map[uuid.UUID]int64
	orders        map[uuid.UUID][]time.Time
	notifications []*entity.Notification
	grants        int
	lockCalls     int
	orderClock    func() time.Time

	// Injected write failures.
	grantErr   error
	resolveErr error
	notifyErr  error
}

func newFakeStore() (*fakeStore, *fakeTxManager) {
	tm := newFakeTxManager()
	store := &fakeStore{
		txManager:  tm,
		rowLocks:   &rowLockManager{locks: make(map[uuid.UUID]*sync.Mutex)},
		shops:      make(map[uuid.UUID]*entity.ShopProfile),
		plans:      make(map[uuid.UUID]*entity.SubscriptionPlan),
		txns:       make(map[uuid.UUID]*entity.PaymentTransaction),
		categories: make(map[uuid.UUID]int64),
		products:   make(map[uuid.UUID]int64),
		orders:     make(map[uuid.UUID][]time.Time),
		orderClock: time.Now,
	}
	tm.factory = store

	return store, tm
}

func (s *fakeStore) addShop(shop *entity.ShopProfile) *entity.ShopProfile {
	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}
	if shop.UserID == uuid.Nil {
		shop.UserID = uuid.New()
	}
	s.shops[shop.ID] = shop

	return shop
}

func (s *fakeStore) addPlan(plan *entity.SubscriptionPlan) *entity.SubscriptionPlan {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	plan.IsActive = true
	s.plans[plan.ID] = plan
	if plan.IsDefault {
		s.defaultPlan = plan
	}

	return plan
}

func (s *fakeStore) addPendingTransaction(shop *entity.ShopProfile, plan *entity.SubscriptionPlan, transactionID string) *entity.PaymentTransaction {
	txn := &entity.PaymentTransaction{
		ID:            uuid.New(),
		TransactionID: transactionID,
		ProfileID:     shop.ID,
		PlanID:        plan.ID,
		Amount:        plan.Price,
		PaymentMethod: entity.MobilePaymentBkash,
		Status:        entity.PaymentTransactionPending,
	}
	s.txns[txn.ID] = txn
	s.requests = append(s.requests, &entity.SubscriptionRequest{
		ID:                   uuid.New(),
		ProfileID:            shop.ID,
		PlanID:               plan.ID,
		PaymentTransactionID: txn.ID,
		Status:               entity.SubscriptionRequestPending,
	})

	return txn
}

func (s *fakeStore) requestFor(txnID uuid.UUID) *entity.SubscriptionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, request := range s.requests {
		if request.PaymentTransactionID == txnID {
			copied := *request

			return &copied
		}
	}

	return nil
}

func (s *fakeStore) SubscriptionRequestRepo() repository.SubscriptionRequestRepository {
	return s
}

func (s *fakeStore) PaymentTransactionRepo() repository.PaymentTransactionRepository {
	return s
}

func (s *fakeStore) UserRepo() repository.UserRepository                   { return s }
func (s *fakeStore) AdminRepo() repository.AdminRepository                 { return s }
func (s *fakeStore) ShopRepo() repository.ShopRepository                   { return s }
func (s *fakeStore) PlanRepo() repository.PlanRepository                   { return s }
func (s *fakeStore) CategoryRepo() repository.CategoryRepository           { return s }
func (s *fakeStore) ProductRepo() repository.ProductRepository             { return s }
func (s *fakeStore) CustomerRepo() repository.CustomerRepository           { return s }
func (s *fakeStore) OrderRepo() repository.OrderRepository                 { return s }
func (s *fakeStore) InvoiceRepo() repository.InvoiceRepository             { return s }
func (s *fakeStore) PaymentRepo() repository.PaymentRepository             { return s }
func (s *fakeStore) PaymentMethodRepo() repository.PaymentMethodRepository { return s }
func (s *fakeStore) NotificationRepo() repository.NotificationRepository   { return s }

// Shops

func (s *fakeStore) CreateShop(_ context.Context, _ *entity.ShopProfile) error {
	panic("not implemented")
}

func (s *fakeStore) FindShopByID(_ context.Context, id uuid.UUID) (*entity.ShopProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.shops[id]
	if !ok {
		return nil, repository.ErrShopNotFound
	}
	copied := *shop

	return &copied, nil
}

func (s *fakeStore) FindShopByUserID(_ context.Context, userID uuid.UUID) (*entity.ShopProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, shop := range s.shops {
		if shop.UserID == userID {
			copied := *shop

			return &copied, nil
		}
	}

	return nil, repository.ErrShopNotFound
}

func (s *fakeStore) FindShopBySlug(_ context.Context, _ string) (*entity.ShopProfile, error) {
	panic("not implemented")
}

func (s *fakeStore) ExistsShopSlug(_ context.Context, _ string, _ uuid.UUID) (bool, error) {
	panic("not implemented")
}

func (s *fakeStore) UpdateShop(_ context.Context, _ *entity.ShopProfile) error {
	panic("not implemented")
}

func (s *fakeStore) LockShopByID(ctx context.Context, id uuid.UUID) (*entity.ShopProfile, error) {
	if _, err := s.FindShopByID(ctx, id); err != nil {
		return nil, err
	}

	unlock := s.rowLocks.lock(id)
	if err := s.txManager.registerUnlock(ctx, unlock); err != nil {
		unlock()

		return nil, err
	}

	s.mu.Lock()
	s.lockCalls++
	s.mu.Unlock()

	return s.FindShopByID(ctx, id)
}

func (s *fakeStore) GrantPro(ctx context.Context, id uuid.UUID, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grantErr != nil {
		return s.grantErr
	}

	shop, ok := s.shops[id]
	if !ok {
		return repository.ErrShopNotFound
	}
	wasPro, previousExpiry := shop.IsPro, shop.ProExpiry
	shop.IsPro = true
	shop.ProExpiry = &expiry
	s.grants++

	s.txManager.recordUndo(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		shop.IsPro = wasPro
		shop.ProExpiry = previousExpiry
		s.grants--
	})

	return nil
}

// Plans

func (s *fakeStore) FindPlanByID(_ context.Context, id uuid.UUID) (*entity.SubscriptionPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, ok := s.plans[id]
	if !ok {
		return nil, repository.ErrPlanNotFound
	}

	return plan, nil
}

func (s *fakeStore) FindDefaultPlan(_ context.Context) (*entity.SubscriptionPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.defaultPlan == nil {
		return nil, repository.ErrPlanNotFound
	}

	return s.defaultPlan, nil
}

func (s *fakeStore) ListActivePlans(_ context.Context) ([]*entity.SubscriptionPlan, error) {
	panic("not implemented")
}

func (s *fakeStore) UpsertPlan(_ context.Context, _ *entity.SubscriptionPlan) error {
	panic("not implemented")
}

// Subscription requests

func (s *fakeStore) CreateSubscriptionRequest(_ context.Context, request *entity.SubscriptionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request.ID = uuid.New()
	s.requests = append(s.requests, request)

	return nil
}

func (s *fakeStore) FindLatestApprovedRequest(_ context.Context, profileID uuid.UUID) (*entity.SubscriptionRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.requests) - 1; i >= 0; i-- {
		request := s.requests[i]
		if request.ProfileID == profileID && request.Status == entity.SubscriptionRequestApproved {
			copied := *request
			copied.Plan = s.plans[request.PlanID]

			return &copied, nil
		}
	}

	return nil, repository.ErrSubscriptionRequestNotFound
}

func (s *fakeStore) FindRequestByPaymentTransaction(_ context.Context, paymentTransactionID uuid.UUID) (*entity.SubscriptionRequest, error) {
	if request := s.requestFor(paymentTransactionID); request != nil {
		return request, nil
	}

	return nil, repository.ErrSubscriptionRequestNotFound
}

func (s *fakeStore) CountPendingRequests(_ context.Context, profileID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, request := range s.requests {
		if request.ProfileID == profileID && request.Status == entity.SubscriptionRequestPending {
			count++
		}
	}

	return count, nil
}

func (s *fakeStore) ResolveRequest(ctx context.Context, id uuid.UUID, status entity.SubscriptionRequestStatus, adminID uuid.UUID, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolveErr != nil {
		return 0, s.resolveErr
	}

	for _, request := range s.requests {
		if request.ID == id && request.Status == entity.SubscriptionRequestPending {
			request.Status = status
			request.ResolvedBy = &adminID
			request.ResolvedAt = &at

			s.txManager.recordUndo(ctx, func() {
				s.mu.Lock()
				defer s.mu.Unlock()

				request.Status = entity.SubscriptionRequestPending
				request.ResolvedBy = nil
				request.ResolvedAt = nil
			})

			return 1, nil
		}
	}

	return 0, nil
}

func (s *fakeStore) ListRequests(_ context.Context, _ repository.SubscriptionRequestFilter) ([]*entity.SubscriptionRequest, int64, error) {
	panic("not implemented")
}

// Payment transactions

func (s *fakeStore) CreatePaymentTransaction(_ context.Context, txn *entity.PaymentTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.txns {
		if existing.TransactionID == txn.TransactionID {
			return repository.ErrDuplicateTransactionID
		}
	}
	txn.ID = uuid.New()
	copied := *txn
	s.txns[txn.ID] = &copied

	return nil
}

func (s *fakeStore) FindByTransactionID(_ context.Context, transactionID string) (*entity.PaymentTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, txn := range s.txns {
		if txn.TransactionID == transactionID {
			copied := *txn

			return &copied, nil
		}
	}

	return nil, repository.ErrPaymentTransactionNotFound
}

func (s *fakeStore) CompareAndSetStatus(ctx context.Context, id uuid.UUID, status entity.PaymentTransactionStatus, note string, adminID uuid.UUID, at time.Time) (int64, error) {
	runtime.Gosched()

	s.mu.Lock()
	defer s.mu.Unlock()

	txn, ok := s.txns[id]
	if !ok || txn.Status != entity.PaymentTransactionPending {
		return 0, nil
	}
	previous := *txn
	s.txManager.recordUndo(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		*txn = previous
	})
	txn.Status = status
	txn.Note = note
	txn.VerifiedBy = &adminID
	txn.VerifiedAt = &at

	return 1, nil
}

func (s *fakeStore) ListTransactions(_ context.Context, _ repository.PaymentTransactionFilter) ([]*entity.PaymentTransaction, int64, error) {
	panic("not implemented")
}

// Catalogue

func (s *fakeStore) CreateCategory(_ context.Context, category *entity.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = uuid.New()
	s.categories[category.ProfileID]++

	return nil
}

func (s *fakeStore) FindCategoryByID(_ context.Context, _, _ uuid.UUID) (*entity.Category, error) {
	panic("not implemented")
}

func (s *fakeStore) ListCategories(_ context.Context, _ uuid.UUID) ([]*entity.Category, error) {
	panic("not implemented")
}

func (s *fakeStore) UpdateCategory(_ context.Context, _ *entity.Category) error {
	panic("not implemented")
}

func (s *fakeStore) DeleteCategory(_ context.Context, _, _ uuid.UUID) error {
	panic("not implemented")
}

func (s *fakeStore) CountCategories(_ context.Context, profileID uuid.UUID) (int64, error) {
	s.mu.Lock()
	count := s.categories[profileID]
	s.mu.Unlock()

	// Widen the window between the count and the insert.
	runtime.Gosched()

	return count, nil
}

func (s *fakeStore) AdjustProductCount(_ context.Context, _ uuid.UUID, _ int) error {
	return nil
}

func (s *fakeStore) CreateProduct(_ context.Context, _ *entity.Product) error {
	panic("not implemented")
}

func (s *fakeStore) FindProductByID(_ context.Context, _, _ uuid.UUID) (*entity.Product, error) {
	panic("not implemented")
}

func (s *fakeStore) FindProductsByIDs(_ context.Context, _ uuid.UUID, _ []uuid.UUID) ([]*entity.Product, error) {
	return nil, nil
}

func (s *fakeStore) ListProducts(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, int64, error) {
	panic("not implemented")
}

func (s *fakeStore) UpdateProduct(_ context.Context, _ *entity.Product) error {
	panic("not implemented")
}

func (s *fakeStore) DeleteProduct(_ context.Context, _, _ uuid.UUID) error {
	panic("not implemented")
}

func (s *fakeStore) CountProducts(_ context.Context, profileID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.products[profileID], nil
}

// Orders

func (s *fakeStore) CreateOrder(_ context.Context, order *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = uuid.New()
	order.CreatedAt = s.orderClock()
	s.orders[order.ProfileID] = append(s.orders[order.ProfileID], order.CreatedAt)

	return nil
}

func (s *fakeStore) FindOrderByID(_ context.Context, _, _ uuid.UUID) (*entity.Order, error) {
	panic("not implemented")
}

func (s *fakeStore) ListOrders(_ context.Context, _ repository.OrderFilter) ([]*entity.Order, int64, error) {
	panic("not implemented")
}

func (s *fakeStore) UpdateOrderStatus(_ context.Context, _, _ uuid.UUID, _ entity.OrderStatus) error {
	panic("not implemented")
}

func (s *fakeStore) DeleteOrder(_ context.Context, _, _ uuid.UUID) error {
	panic("not implemented")
}

func (s *fakeStore) CountOrdersBetween(_ context.Context, profileID uuid.UUID, from, to time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, createdAt := range s.orders[profileID] {
		if !createdAt.Before(from) && createdAt.Before(to) {
			count++
		}
	}

	return count, nil
}

// Notifications

func (s *fakeStore) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.notifyErr != nil {
		return s.notifyErr
	}

	notification.ID = uuid.New()
	s.notifications = append(s.notifications, notification)

	s.txManager.recordUndo(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.notifications = s.notifications[:len(s.notifications)-1]
	})

	return nil
}

func (s *fakeStore) ListNotifications(_ context.Context, _ uuid.UUID, _ bool, _ entity.Page) ([]*entity.Notification, int64, error) {
	panic("not implemented")
}

func (s *fakeStore) CountUnread(_ context.Context, _ uuid.UUID) (int64, error) {
	panic("not implemented")
}

func (s *fakeStore) MarkRead(_ context.Context, _, _ uuid.UUID) error {
	panic("not implemented")
}

func (s *fakeStore) MarkAllRead(_ context.Context, _ uuid.UUID) (int64, error) {
	panic("not implemented")
}

func (s *fakeStore) DeleteNotification(_ context.Context, _, _ uuid.UUID) error {
	panic("not implemented")
}
