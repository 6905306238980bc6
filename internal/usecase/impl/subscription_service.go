package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cashmemo/config"
	deliverycontext "cashmemo/internal/delivery/context"
	"cashmemo/internal/domain/constants"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/domain/service"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const planCatalogueCacheKey = "plans:active"

type subscriptionService struct {
	txManager repository.TransactionManager
	repos     repository.RepositoryFactory
	publisher service.EventPublisher
	plans     *cachedLoader
	logger    *slog.Logger
	now       func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Repos     repository.RepositoryFactory
	Publisher service.EventPublisher
	Cache     service.ReferenceCache
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager: params.TxManager,
		repos:     params.Repos,
		publisher: params.Publisher,
		plans:     newCachedLoader(params.Cache, cacheTTL(params.Config), params.Logger),
		logger:    params.Logger,
		now:       time.Now,
	}
}

func cacheTTL(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.Cache == nil || cfg.Cache.TTL <= 0 {
		return 5 * time.Minute
	}

	return cfg.Cache.TTL
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPlans returns the active plan catalogue
func (srv *subscriptionService) ListPlans(ctx context.Context) ([]*entity.SubscriptionPlan, error) {
	return loadCached(ctx, srv.plans, planCatalogueCacheKey, func(ctx context.Context) ([]*entity.SubscriptionPlan, error) {
		plans, err := srv.repos.PlanRepo().ListActivePlans(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list active plans")
		}

		return plans, nil
	})
}

// SubmitSubscriptionRequest records the reported payment and the upgrade request together
func (srv *subscriptionService) SubmitSubscriptionRequest(ctx context.Context, userID uuid.UUID, input *usecase.SubmitSubscriptionInput) (*usecase.SubmitSubscriptionOutput, error) {
	transactionID := strings.TrimSpace(input.TransactionID)
	if err := validateSubmission(transactionID, input); err != nil {
		return nil, err
	}

	output := &usecase.SubmitSubscriptionOutput{}
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shop, err := resolveShop(ctx, repos, userID)
		if err != nil {
			return err
		}

		// One pending request per shop; the row lock serialises concurrent submits.
		if _, err := repos.ShopRepo().LockShopByID(ctx, shop.ID); err != nil {
			return errors.Wrap(err, "failed to lock shop profile")
		}

		plan, err := repos.PlanRepo().FindPlanByID(ctx, input.PlanID)
		if err != nil {
			return mapRepoErr(err, repository.ErrPlanNotFound, domainerrors.ErrPlanNotFound, "failed to find plan")
		}
		if !plan.IsActive {
			return domainerrors.ErrPlanNotFound
		}

		pending, err := repos.SubscriptionRequestRepo().CountPendingRequests(ctx, shop.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count pending requests")
		}
		if pending > 0 {
			return domainerrors.ErrPendingRequestExists
		}

		txn := &entity.PaymentTransaction{
			TransactionID: transactionID,
			ProfileID:     shop.ID,
			PlanID:        plan.ID,
			Amount:        input.Amount,
			PaymentMethod: input.PaymentMethod,
			SenderNumber:  strings.TrimSpace(input.SenderNumber),
			Status:        entity.PaymentTransactionPending,
		}
		if err := repos.PaymentTransactionRepo().CreatePaymentTransaction(ctx, txn); err != nil {
			return mapRepoErr(err, repository.ErrDuplicateTransactionID, domainerrors.ErrTransactionDuplicate, "failed to create payment transaction")
		}

		request := &entity.SubscriptionRequest{
			ProfileID:            shop.ID,
			PlanID:               plan.ID,
			PaymentTransactionID: txn.ID,
			Status:               entity.SubscriptionRequestPending,
		}
		if err := repos.SubscriptionRequestRepo().CreateSubscriptionRequest(ctx, request); err != nil {
			return errors.Wrap(err, "failed to create subscription request")
		}
		request.Plan = plan

		output.Request = request
		output.Transaction = txn

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Subscription request submitted",
		slog.String("requestID", output.Request.ID.String()),
		slog.String("transactionID", output.Transaction.TransactionID),
		slog.String("plan", output.Request.Plan.Slug),
	)

	return output, nil
}

func validateSubmission(transactionID string, input *usecase.SubmitSubscriptionInput) error {
	if transactionID == "" {
		return domainerrors.NewValidationError("transaction_id is required")
	}
	if input.Amount <= 0 {
		return domainerrors.NewValidationError("amount must be greater than 0")
	}

	switch input.PaymentMethod {
	case entity.MobilePaymentBkash, entity.MobilePaymentNagad, entity.MobilePaymentRocket, entity.MobilePaymentBank:
		return nil
	default:
		return domainerrors.NewValidationError("payment_method must be one of bkash, nagad, rocket, bank")
	}
}

func (srv *subscriptionService) ListMySubscriptionRequests(ctx context.Context, userID uuid.UUID, input *usecase.ListSubscriptionRequestsInput) (*entity.PagedResult[*entity.SubscriptionRequest], error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	return srv.listRequests(ctx, &shop.ID, input)
}

func (srv *subscriptionService) ListSubscriptionRequests(ctx context.Context, input *usecase.ListSubscriptionRequestsInput) (*entity.PagedResult[*entity.SubscriptionRequest], error) {
	return srv.listRequests(ctx, nil, input)
}

func (srv *subscriptionService) listRequests(ctx context.Context, profileID *uuid.UUID, input *usecase.ListSubscriptionRequestsInput) (*entity.PagedResult[*entity.SubscriptionRequest], error) {
	page := normalizePage(input.Page)
	requests, total, err := srv.repos.SubscriptionRequestRepo().ListRequests(ctx, repository.SubscriptionRequestFilter{
		ProfileID: profileID,
		Status:    input.Status,
		Page:      page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscription requests")
	}

	return newPagedResult(requests, total, page), nil
}

func (srv *subscriptionService) ListMyTransactions(ctx context.Context, userID uuid.UUID, input *usecase.ListTransactionsInput) (*entity.PagedResult[*entity.PaymentTransaction], error) {
	shop, err := resolveShop(ctx, srv.repos, userID)
	if err != nil {
		return nil, err
	}

	return srv.listTransactions(ctx, &shop.ID, input)
}

func (srv *subscriptionService) ListTransactions(ctx context.Context, input *usecase.ListTransactionsInput) (*entity.PagedResult[*entity.PaymentTransaction], error) {
	return srv.listTransactions(ctx, nil, input)
}

func (srv *subscriptionService) listTransactions(ctx context.Context, profileID *uuid.UUID, input *usecase.ListTransactionsInput) (*entity.PagedResult[*entity.PaymentTransaction], error) {
	page := normalizePage(input.Page)
	txns, total, err := srv.repos.PaymentTransactionRepo().ListTransactions(ctx, repository.PaymentTransactionFilter{
		ProfileID: profileID,
		Status:    input.Status,
		Page:      page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment transactions")
	}

	return newPagedResult(txns, total, page), nil
}

// verificationResult carries what the transaction decided out to the post-commit steps.
type verificationResult struct {
	txn    *entity.PaymentTransaction
	shop   *entity.ShopProfile
	expiry *time.Time
}

// VerifyTransaction decides a pending payment. The conditional status update
// guarantees a single winner among concurrent admins; the Pro grant, the
// request resolution and the in-app notification commit with it or not at all.
func (srv *subscriptionService) VerifyTransaction(ctx context.Context, adminID uuid.UUID, input *usecase.VerifyTransactionInput) (*usecase.VerifyTransactionOutput, error) {
	if input.Status != entity.PaymentTransactionVerified && input.Status != entity.PaymentTransactionRejected {
		return nil, domainerrors.NewValidationError("status must be verified or rejected")
	}

	transactionID := strings.TrimSpace(input.TransactionID)
	if transactionID == "" {
		return nil, domainerrors.NewValidationError("transaction_id is required")
	}

	result := &verificationResult{}
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return srv.decide(ctx, repos, adminID, transactionID, input, result)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyProcessed) {
			srv.log(ctx).Warn("Transaction already processed",
				slog.String("transactionID", transactionID),
				slog.String("adminID", adminID.String()),
			)
		}

		return nil, err
	}

	srv.log(ctx).Info("Transaction decided",
		slog.String("transactionID", transactionID),
		slog.String("status", string(input.Status)),
		slog.String("profileID", result.txn.ProfileID.String()),
		slog.String("adminID", adminID.String()),
	)

	srv.publishDecision(ctx, result)

	return &usecase.VerifyTransactionOutput{
		Transaction: result.txn,
		Message:     decisionMessage(input.Status),
	}, nil
}

func (srv *subscriptionService) decide(
	ctx context.Context,
	repos repository.RepositoryFactory,
	adminID uuid.UUID,
	transactionID string,
	input *usecase.VerifyTransactionInput,
	result *verificationResult,
) error {
	txn, err := repos.PaymentTransactionRepo().FindByTransactionID(ctx, transactionID)
	if err != nil {
		return mapRepoErr(err, repository.ErrPaymentTransactionNotFound, domainerrors.ErrPaymentTransactionNotFound, "failed to find payment transaction")
	}
	if txn.Status != entity.PaymentTransactionPending {
		return domainerrors.ErrAlreadyProcessed
	}

	now := srv.now()
	changed, err := repos.PaymentTransactionRepo().CompareAndSetStatus(ctx, txn.ID, input.Status, input.Note, adminID, now)
	if err != nil {
		return errors.Wrap(err, "failed to update transaction status")
	}
	if changed == 0 {
		return domainerrors.ErrAlreadyProcessed
	}

	shop, err := repos.ShopRepo().FindShopByID(ctx, txn.ProfileID)
	if err != nil {
		return mapRepoErr(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to find shop for transaction")
	}

	requestStatus := entity.SubscriptionRequestRejected
	if input.Status == entity.PaymentTransactionVerified {
		expiry := entity.AddCalendarMonth(now)
		if err := repos.ShopRepo().GrantPro(ctx, shop.ID, expiry); err != nil {
			return errors.Wrap(err, "failed to grant pro")
		}
		shop.IsPro = true
		shop.ProExpiry = &expiry
		result.expiry = &expiry
		requestStatus = entity.SubscriptionRequestApproved
	}

	if err := srv.resolveLinkedRequest(ctx, repos, txn.ID, requestStatus, adminID, now); err != nil {
		return err
	}

	if err := repos.NotificationRepo().CreateNotification(ctx, decisionNotification(shop.UserID, input.Status, transactionID, result.expiry)); err != nil {
		return errors.Wrap(err, "failed to create decision notification")
	}

	txn.Status = input.Status
	txn.Note = input.Note
	txn.VerifiedAt = &now
	txn.VerifiedBy = &adminID
	txn.UpdatedAt = now
	result.txn = txn
	result.shop = shop

	return nil
}

func (srv *subscriptionService) resolveLinkedRequest(
	ctx context.Context,
	repos repository.RepositoryFactory,
	paymentTransactionID uuid.UUID,
	status entity.SubscriptionRequestStatus,
	adminID uuid.UUID,
	at time.Time,
) error {
	request, err := repos.SubscriptionRequestRepo().FindRequestByPaymentTransaction(ctx, paymentTransactionID)
	if errors.Is(err, repository.ErrSubscriptionRequestNotFound) {
		srv.log(ctx).Warn("Payment transaction has no linked subscription request", slog.String("paymentTransactionID", paymentTransactionID.String()))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find linked subscription request")
	}

	if _, err := repos.SubscriptionRequestRepo().ResolveRequest(ctx, request.ID, status, adminID, at); err != nil {
		return errors.Wrap(err, "failed to resolve subscription request")
	}

	return nil
}

func decisionNotification(userID uuid.UUID, status entity.PaymentTransactionStatus, transactionID string, expiry *time.Time) *entity.Notification {
	if status == entity.PaymentTransactionVerified {
		message := fmt.Sprintf("Payment %s was verified. Your Pro plan is active", transactionID)
		if expiry != nil {
			message += " until " + expiry.Format("02 Jan 2006")
		}

		return &entity.Notification{
			UserID:  userID,
			Type:    entity.NotificationPaymentVerified,
			Title:   "Payment verified",
			Message: message + ".",
		}
	}

	return &entity.Notification{
		UserID:  userID,
		Type:    entity.NotificationPaymentRejected,
		Title:   "Payment rejected",
		Message: fmt.Sprintf("Payment %s could not be verified. Please check the transaction ID and try again.", transactionID),
	}
}

func decisionMessage(status entity.PaymentTransactionStatus) string {
	if status == entity.PaymentTransactionVerified {
		return "Transaction verified and Pro plan activated"
	}

	return "Transaction rejected"
}

// publishDecision runs after commit. A failed publish never undoes the decision.
func (srv *subscriptionService) publishDecision(ctx context.Context, result *verificationResult) {
	eventType := constants.EventPaymentRejected
	if result.txn.Status == entity.PaymentTransactionVerified {
		eventType = constants.EventPaymentVerified
	}

	note := decisionNotification(result.shop.UserID, result.txn.Status, result.txn.TransactionID, result.expiry)
	event := &service.DomainEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    result.shop.UserID.String(),
		Title:     note.Title,
		Body:      note.Message,
		Data: map[string]string{
			"transaction_id": result.txn.TransactionID,
			"status":         string(result.txn.Status),
		},
	}

	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish payment decision",
			slog.String("transactionID", result.txn.TransactionID),
			slog.String("eventType", eventType),
			slog.Any("error", err),
		)
	}
}
