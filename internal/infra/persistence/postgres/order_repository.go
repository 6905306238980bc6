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
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order and its items in one statement batch.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Customer").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		if i < len(order.Items) {
			order.Items[i].ID = orderM.Items[i].ID
			order.Items[i].OrderID = orderM.ID
		}
	}

	return nil
}

func (repo *orderRepository) FindOrderByID(ctx context.Context, profileID, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		Where("id = ? AND profile_id = ?", id, profileID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("profile_id = ?", filter.ProfileID)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Preload("Items").
		Preload("Customer").
		Order("created_at DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, profileID, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// DeleteOrder removes the order. Items go with it through ON DELETE CASCADE.
func (repo *orderRepository) DeleteOrder(ctx context.Context, profileID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("order is referenced by an invoice")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// CountOrdersBetween counts orders of every status created in [from, to).
func (repo *orderRepository) CountOrdersBetween(ctx context.Context, profileID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("profile_id = ? AND created_at >= ? AND created_at < ?", profileID, from, to).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		ProfileID:       data.ProfileID,
		CustomerID:      data.CustomerID,
		OrderNumber:     data.OrderNumber,
		Status:          entity.OrderStatus(data.Status),
		Source:          entity.OrderSource(data.Source),
		Items:           items,
		Subtotal:        data.Subtotal,
		DeliveryCharge:  data.DeliveryCharge,
		Discount:        data.Discount,
		Total:           data.Total,
		Note:            data.Note,
		DeliveryName:    data.DeliveryName,
		DeliveryMobile:  data.DeliveryMobile,
		DeliveryAddress: data.DeliveryAddress,
		Customer:        toCustomerDomain(data.Customer),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		ProfileID:       data.ProfileID,
		CustomerID:      data.CustomerID,
		OrderNumber:     data.OrderNumber,
		Status:          string(data.Status),
		Source:          string(data.Source),
		Subtotal:        data.Subtotal,
		DeliveryCharge:  data.DeliveryCharge,
		Discount:        data.Discount,
		Total:           data.Total,
		Note:            data.Note,
		DeliveryName:    data.DeliveryName,
		DeliveryMobile:  data.DeliveryMobile,
		DeliveryAddress: data.DeliveryAddress,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Items:           items,
	}
}
