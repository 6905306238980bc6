package postgres

import (
	"context"
	"time"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// subscriptionRequestRepository implements the repository.SubscriptionRequestRepository interface.
type subscriptionRequestRepository struct {
	db *gorm.DB
}

// NewSubscriptionRequestRepository is the constructor for subscriptionRequestRepository.
func NewSubscriptionRequestRepository(db *gorm.DB) repository.SubscriptionRequestRepository {
	return &subscriptionRequestRepository{db: db}
}

func (repo *subscriptionRequestRepository) CreateSubscriptionRequest(ctx context.Context, request *entity.SubscriptionRequest) error {
	requestM := &model.SubscriptionRequestModel{
		ID:                   request.ID,
		ProfileID:            request.ProfileID,
		PlanID:               request.PlanID,
		PaymentTransactionID: request.PaymentTransactionID,
		Status:               string(request.Status),
	}

	if err := repo.db.WithContext(ctx).Omit("Plan").Create(requestM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindLatestApprovedRequest returns the newest approved request with its plan.
func (repo *subscriptionRequestRepository) FindLatestApprovedRequest(ctx context.Context, profileID uuid.UUID) (*entity.SubscriptionRequest, error) {
	var requestM model.SubscriptionRequestModel

	if err := repo.db.WithContext(ctx).
		Preload("Plan").
		Where("profile_id = ? AND status = ?", profileID, string(entity.SubscriptionRequestApproved)).
		Order("resolved_at DESC NULLS LAST, created_at DESC").
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest approved request")
	}

	return toSubscriptionRequestDomain(&requestM), nil
}

func (repo *subscriptionRequestRepository) FindRequestByPaymentTransaction(ctx context.Context, paymentTransactionID uuid.UUID) (*entity.SubscriptionRequest, error) {
	var requestM model.SubscriptionRequestModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("payment_transaction_id = ?", paymentTransactionID).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription request by transaction")
	}

	return toSubscriptionRequestDomain(&requestM), nil
}

func (repo *subscriptionRequestRepository) CountPendingRequests(ctx context.Context, profileID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionRequestModel{}).
		Where("profile_id = ? AND status = ?", profileID, string(entity.SubscriptionRequestPending)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pending requests")
	}

	return count, nil
}

// ResolveRequest only moves requests that are still pending.
func (repo *subscriptionRequestRepository) ResolveRequest(ctx context.Context, id uuid.UUID, status entity.SubscriptionRequestStatus, adminID uuid.UUID, at time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionRequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.SubscriptionRequestPending)).
		Updates(map[string]any{
			"status":      string(status),
			"resolved_at": at,
			"resolved_by": adminID,
		})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to resolve subscription request")
	}

	return result.RowsAffected, nil
}

func (repo *subscriptionRequestRepository) ListRequests(ctx context.Context, filter repository.SubscriptionRequestFilter) ([]*entity.SubscriptionRequest, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.SubscriptionRequestModel{})
	if filter.ProfileID != nil {
		query = query.Where("profile_id = ?", *filter.ProfileID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count subscription requests")
	}

	var requestModels []*model.SubscriptionRequestModel
	if err := query.
		Preload("Plan").
		Order("created_at DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&requestModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list subscription requests")
	}

	requests := make([]*entity.SubscriptionRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toSubscriptionRequestDomain(requestM))
	}

	return requests, total, nil
}

// paymentTransactionRepository implements the repository.PaymentTransactionRepository interface.
type paymentTransactionRepository struct {
	db *gorm.DB
}

// NewPaymentTransactionRepository is the constructor for paymentTransactionRepository.
func NewPaymentTransactionRepository(db *gorm.DB) repository.PaymentTransactionRepository {
	return &paymentTransactionRepository{db: db}
}

func (repo *paymentTransactionRepository) CreatePaymentTransaction(ctx context.Context, txn *entity.PaymentTransaction) error {
	txnM := fromPaymentTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTransactionID
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment transaction")
	}

	txn.ID = txnM.ID
	txn.CreatedAt = txnM.CreatedAt
	txn.UpdatedAt = txnM.UpdatedAt

	return nil
}

// FindByTransactionID always reads from the primary so a replica lag cannot hide a resolved status.
func (repo *paymentTransactionRepository) FindByTransactionID(ctx context.Context, transactionID string) (*entity.PaymentTransaction, error) {
	var txnM model.PaymentTransactionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("transaction_id = ?", transactionID).
		First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment transaction")
	}

	return toPaymentTransactionDomain(&txnM), nil
}

// CompareAndSetStatus is the single writer of a transaction's terminal status.
func (repo *paymentTransactionRepository) CompareAndSetStatus(
	ctx context.Context,
	id uuid.UUID,
	status entity.PaymentTransactionStatus,
	note string,
	adminID uuid.UUID,
	at time.Time,
) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentTransactionModel{}).
		Where("id = ? AND status = ?", id, string(entity.PaymentTransactionPending)).
		Updates(map[string]any{
			"status":      string(status),
			"note":        note,
			"verified_at": at,
			"verified_by": adminID,
		})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment transaction status")
	}

	return result.RowsAffected, nil
}

func (repo *paymentTransactionRepository) ListTransactions(ctx context.Context, filter repository.PaymentTransactionFilter) ([]*entity.PaymentTransaction, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PaymentTransactionModel{})
	if filter.ProfileID != nil {
		query = query.Where("profile_id = ?", *filter.ProfileID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count payment transactions")
	}

	var txnModels []*model.PaymentTransactionModel
	if err := query.
		Order("created_at DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&txnModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list payment transactions")
	}

	txns := make([]*entity.PaymentTransaction, 0, len(txnModels))
	for _, txnM := range txnModels {
		txns = append(txns, toPaymentTransactionDomain(txnM))
	}

	return txns, total, nil
}

// --- Mapper Functions ---

func toSubscriptionRequestDomain(data *model.SubscriptionRequestModel) *entity.SubscriptionRequest {
	if data == nil {
		return nil
	}

	return &entity.SubscriptionRequest{
		ID:                   data.ID,
		ProfileID:            data.ProfileID,
		PlanID:               data.PlanID,
		PaymentTransactionID: data.PaymentTransactionID,
		Status:               entity.SubscriptionRequestStatus(data.Status),
		ResolvedAt:           data.ResolvedAt,
		ResolvedBy:           data.ResolvedBy,
		Plan:                 toPlanDomain(data.Plan),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func toPaymentTransactionDomain(data *model.PaymentTransactionModel) *entity.PaymentTransaction {
	if data == nil {
		return nil
	}

	return &entity.PaymentTransaction{
		ID:            data.ID,
		TransactionID: data.TransactionID,
		ProfileID:     data.ProfileID,
		PlanID:        data.PlanID,
		Amount:        data.Amount,
		PaymentMethod: entity.MobilePaymentMethod(data.PaymentMethod),
		SenderNumber:  data.SenderNumber,
		Status:        entity.PaymentTransactionStatus(data.Status),
		Note:          data.Note,
		VerifiedAt:    data.VerifiedAt,
		VerifiedBy:    data.VerifiedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPaymentTransactionDomain(data *entity.PaymentTransaction) *model.PaymentTransactionModel {
	if data == nil {
		return nil
	}

	return &model.PaymentTransactionModel{
		ID:            data.ID,
		TransactionID: data.TransactionID,
		ProfileID:     data.ProfileID,
		PlanID:        data.PlanID,
		Amount:        data.Amount,
		PaymentMethod: string(data.PaymentMethod),
		SenderNumber:  data.SenderNumber,
		Status:        string(data.Status),
		Note:          data.Note,
		VerifiedAt:    data.VerifiedAt,
		VerifiedBy:    data.VerifiedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
