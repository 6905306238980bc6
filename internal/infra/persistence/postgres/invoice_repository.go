package postgres

import (
	"context"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// invoiceRepository implements the repository.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (repo *invoiceRepository) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	invoiceM := fromInvoiceDomain(invoice)

	if err := repo.db.WithContext(ctx).Create(invoiceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("invoice number already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	invoice.ID = invoiceM.ID
	invoice.CreatedAt = invoiceM.CreatedAt
	invoice.UpdatedAt = invoiceM.UpdatedAt

	return nil
}

func (repo *invoiceRepository) FindInvoiceByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Invoice, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ? AND profile_id = ?", id, profileID)
}

func (repo *invoiceRepository) FindInvoiceByToken(ctx context.Context, token string) (*entity.Invoice, error) {
	return repo.findOne(repo.db.WithContext(ctx), "public_token = ?", token)
}

// LockInvoiceByID serialises payment writes on one invoice.
func (repo *invoiceRepository) LockInvoiceByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Invoice, error) {
	db := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Clauses(clause.Locking{Strength: "UPDATE"})

	return repo.findOne(db, "id = ? AND profile_id = ?", id, profileID)
}

func (repo *invoiceRepository) findOne(db *gorm.DB, query string, args ...any) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := db.Where(query, args...).First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice")
	}

	return toInvoiceDomain(&invoiceM), nil
}

func (repo *invoiceRepository) ListInvoices(ctx context.Context, profileID uuid.UUID, status entity.InvoiceStatus, page entity.Page) ([]*entity.Invoice, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("profile_id = ?", profileID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count invoices")
	}

	var invoiceModels []*model.InvoiceModel
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&invoiceModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list invoices")
	}

	invoices := make([]*entity.Invoice, 0, len(invoiceModels))
	for _, invoiceM := range invoiceModels {
		invoices = append(invoices, toInvoiceDomain(invoiceM))
	}

	return invoices, total, nil
}

func (repo *invoiceRepository) UpdateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ? AND profile_id = ?", invoice.ID, invoice.ProfileID).
		Updates(map[string]any{
			"due_date": invoice.DueDate,
			"note":     invoice.Note,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update invoice")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNotFound
	}

	return nil
}

// DeleteInvoice removes the invoice and its payments.
func (repo *invoiceRepository) DeleteInvoice(ctx context.Context, profileID, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND profile_id = ?", id, profileID).Delete(&model.InvoiceModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete invoice")
		}

		if result.RowsAffected == 0 {
			return repository.ErrInvoiceNotFound
		}

		if err := tx.Where("invoice_id = ?", id).Delete(&model.PaymentModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete invoice payments")
		}

		return nil
	})
}

func (repo *invoiceRepository) UpdatePaidAmount(ctx context.Context, id uuid.UUID, paidAmount float64, status entity.InvoiceStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"paid_amount": paidAmount,
			"status":      string(status),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update invoice paid amount")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNotFound
	}

	return nil
}

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		ID:        payment.ID,
		InvoiceID: payment.InvoiceID,
		ProfileID: payment.ProfileID,
		Amount:    payment.Amount,
		Method:    payment.Method,
		Reference: payment.Reference,
		PaidAt:    payment.PaidAt,
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

func (repo *paymentRepository) FindPaymentByID(ctx context.Context, invoiceID, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND invoice_id = ?", id, invoiceID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toPaymentDomain(&paymentM), nil
}

func (repo *paymentRepository) ListPaymentsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("paid_at ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

func (repo *paymentRepository) DeletePayment(ctx context.Context, invoiceID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND invoice_id = ?", id, invoiceID).
		Delete(&model.PaymentModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	if data == nil {
		return nil
	}

	items := make([]entity.InvoiceLine, 0, len(data.Items))
	for _, line := range data.Items {
		items = append(items, entity.InvoiceLine(line))
	}

	return &entity.Invoice{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		OrderID:       data.OrderID,
		CustomerID:    data.CustomerID,
		InvoiceNumber: data.InvoiceNumber,
		PublicToken:   data.PublicToken,
		CustomerName:  data.CustomerName,
		CustomerPhone: data.CustomerPhone,
		Items:         items,
		Subtotal:      data.Subtotal,
		Discount:      data.Discount,
		Total:         data.Total,
		PaidAmount:    data.PaidAmount,
		Status:        entity.InvoiceStatus(data.Status),
		DueDate:       data.DueDate,
		Note:          data.Note,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromInvoiceDomain(data *entity.Invoice) *model.InvoiceModel {
	if data == nil {
		return nil
	}

	items := make([]model.InvoiceLine, 0, len(data.Items))
	for _, line := range data.Items {
		items = append(items, model.InvoiceLine(line))
	}

	return &model.InvoiceModel{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		OrderID:       data.OrderID,
		CustomerID:    data.CustomerID,
		InvoiceNumber: data.InvoiceNumber,
		PublicToken:   data.PublicToken,
		CustomerName:  data.CustomerName,
		CustomerPhone: data.CustomerPhone,
		Items:         datatypes.NewJSONSlice(items),
		Subtotal:      data.Subtotal,
		Discount:      data.Discount,
		Total:         data.Total,
		PaidAmount:    data.PaidAmount,
		Status:        string(data.Status),
		DueDate:       data.DueDate,
		Note:          data.Note,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:        data.ID,
		InvoiceID: data.InvoiceID,
		ProfileID: data.ProfileID,
		Amount:    data.Amount,
		Method:    data.Method,
		Reference: data.Reference,
		PaidAt:    data.PaidAt,
		CreatedAt: data.CreatedAt,
	}
}
