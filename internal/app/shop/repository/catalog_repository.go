package repository

import (
	"context"
	"errors"

	"shopline/internal/app/shop/entity"
	"shopline/pkg/metrics"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository создает новый репозиторий каталога
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// GetOffers получает предложения с товаром и категорией.
// При непустом categoryName фильтрует по имени категории товара.
func (r *catalogRepository) GetOffers(ctx context.Context, categoryName string) ([]entity.ProductInfo, error) {
	query := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Preload("Shop").
		Order("created_at DESC")

	if categoryName != "" {
		query = query.
			Joins("JOIN products ON products.id = product_infos.product_id").
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.name = ?", categoryName)
	}

	var offers []entity.ProductInfo
	if err := query.Find(&offers).Error; err != nil {
		metrics.DbErrors.WithLabelValues("select").Inc()
		return nil, err
	}

	return offers, nil
}

// GetOfferByID получает предложение по ID
func (r *catalogRepository) GetOfferByID(ctx context.Context, id uuid.UUID) (*entity.ProductInfo, error) {
	var offer entity.ProductInfo
	result := r.db.WithContext(ctx).Preload("Product").First(&offer, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		metrics.DbErrors.WithLabelValues("select").Inc()
		return nil, result.Error
	}

	return &offer, nil
}

// GetCategories получает все категории
func (r *catalogRepository) GetCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	result := r.db.WithContext(ctx).Order("id ASC").Find(&categories)

	if result.Error != nil {
		metrics.DbErrors.WithLabelValues("select").Inc()
		return nil, result.Error
	}

	return categories, nil
}
