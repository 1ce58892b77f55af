package repository

import (
	"context"
	"errors"

	"shopline/internal/app/shop/entity"
	"shopline/pkg/metrics"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository создает новый репозиторий заказов
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// GetBasket получает корзину пользователя с позициями
func (r *orderRepository) GetBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	result := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.ProductInfo").
		Preload("Items.ProductInfo.Product").
		First(&order, "user_id = ? AND status = ?", userID, entity.OrderStatusBasket)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBasketNotFound
		}
		metrics.DbErrors.WithLabelValues("select").Inc()
		return nil, result.Error
	}

	return &order, nil
}

// GetOrCreateBasket получает корзину пользователя, создавая её при отсутствии
func (r *orderRepository) GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		First(&order, "user_id = ? AND status = ?", userID, entity.OrderStatusBasket).Error
	if err == nil {
		return &order, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		metrics.DbErrors.WithLabelValues("select").Inc()
		return nil, err
	}

	order = entity.Order{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.OrderStatusBasket,
	}
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		metrics.DbErrors.WithLabelValues("insert").Inc()
		return nil, err
	}

	return &order, nil
}

// GetItem получает позицию корзины по паре (order, product_info)
func (r *orderRepository) GetItem(ctx context.Context, orderID, productInfoID uuid.UUID) (*entity.OrderItem, error) {
	var item entity.OrderItem
	result := r.db.WithContext(ctx).
		First(&item, "order_id = ? AND product_info_id = ?", orderID, productInfoID)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOrderItemNotFound
		}
		metrics.DbErrors.WithLabelValues("select").Inc()
		return nil, result.Error
	}

	return &item, nil
}

// CreateItem создает позицию корзины.
// Уникальный индекс (order_id, product_info_id) защищает от гонки
// двух одновременных добавлений одного предложения.
func (r *orderRepository) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(item)
	if result.Error != nil {
		metrics.DbErrors.WithLabelValues("insert").Inc()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

// UpdateItemQuantity обновляет количество в позиции корзины
func (r *orderRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&entity.OrderItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)

	if result.Error != nil {
		metrics.DbErrors.WithLabelValues("update").Inc()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderItemNotFound
	}

	return nil
}

// DeleteItem удаляет позицию корзины
func (r *orderRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&entity.OrderItem{}, "id = ?", itemID)

	if result.Error != nil {
		metrics.DbErrors.WithLabelValues("delete").Inc()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderItemNotFound
	}

	return nil
}

// Update сохраняет статус и контакт заказа
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := r.db.WithContext(ctx).Model(order).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":     order.Status,
			"contact_id": order.ContactID,
		})

	if result.Error != nil {
		metrics.DbErrors.WithLabelValues("update").Inc()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBasketNotFound
	}

	return nil
}

// ListByUser получает заказы пользователя, исключая корзину
func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND status <> ?", userID, entity.OrderStatusBasket).
		Order("created_at DESC").
		Find(&orders)

	if result.Error != nil {
		metrics.DbErrors.WithLabelValues("select").Inc()
		return nil, result.Error
	}

	return orders, nil
}
