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

type importRepository struct {
	db *gorm.DB
}

// NewImportRepository создает репозиторий-единицу работы для импорта каталога
func NewImportRepository(db *gorm.DB) ImportRepository {
	return &importRepository{db: db}
}

// RunInTransaction выполняет fn в одной транзакции PostgreSQL.
// Ошибка fn откатывает все записи, сделанные через ImportTx.
func (r *importRepository) RunInTransaction(ctx context.Context, fn func(tx ImportTx) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&importTx{db: tx})
	})
	if err != nil {
		metrics.DbErrors.WithLabelValues("transaction").Inc()
	}
	return err
}

// importTx реализует операции согласования поверх открытой транзакции
type importTx struct {
	db *gorm.DB
}

// GetOrCreateShop возвращает магазин по (name, userID), создавая его при отсутствии.
// URL источника записывается только при создании.
func (t *importTx) GetOrCreateShop(name string, userID uuid.UUID, sourceURL string) (*entity.Shop, bool, error) {
	var shop entity.Shop
	err := t.db.First(&shop, "name = ? AND user_id = ?", name, userID).Error
	if err == nil {
		return &shop, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	shop = entity.Shop{
		ID:     uuid.New(),
		Name:   name,
		URL:    sourceURL,
		UserID: userID,
	}

	result := t.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&shop)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		// Конкурентный импорт успел создать магазин первым
		if err := t.db.First(&shop, "name = ? AND user_id = ?", name, userID).Error; err != nil {
			return nil, false, err
		}
		return &shop, false, nil
	}

	return &shop, true, nil
}

// GetOrCreateCategory возвращает категорию по id поставщика.
// Имя записывается только при создании: первое увиденное имя выигрывает,
// повторный импорт с другим именем ничего не меняет.
func (t *importTx) GetOrCreateCategory(id int, name string) (*entity.Category, bool, error) {
	var category entity.Category
	err := t.db.First(&category, "id = ?", id).Error
	if err == nil {
		return &category, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	category = entity.Category{ID: id, Name: name}

	result := t.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&category)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		if err := t.db.First(&category, "id = ?", id).Error; err != nil {
			return nil, false, err
		}
		return &category, false, nil
	}

	return &category, true, nil
}

// LinkCategoryShop связывает категорию с магазином.
// Повторная связка той же пары - no-op благодаря ON CONFLICT DO NOTHING.
func (t *importTx) LinkCategoryShop(categoryID int, shopID uuid.UUID) error {
	link := entity.CategoryShop{
		CategoryID: categoryID,
		ShopID:     shopID,
	}
	return t.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// GetOrCreateProduct возвращает товар по глобально уникальному имени.
// Ссылка на категорию фиксируется при создании: у существующего товара
// категория не обновляется, даже если запись импорта указывает другую.
func (t *importTx) GetOrCreateProduct(name string, categoryID int) (*entity.Product, bool, error) {
	var product entity.Product
	err := t.db.First(&product, "name = ?", name).Error
	if err == nil {
		return &product, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	product = entity.Product{
		ID:         uuid.New(),
		Name:       name,
		CategoryID: categoryID,
	}

	result := t.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&product)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		if err := t.db.First(&product, "name = ?", name).Error; err != nil {
			return nil, false, err
		}
		return &product, false, nil
	}

	return &product, true, nil
}

// CreateProductInfo создает новую строку предложения.
// Всегда вставка: предложения append-only, по снимку на каждый импорт.
func (t *importTx) CreateProductInfo(info *entity.ProductInfo) error {
	return t.db.Create(info).Error
}

// GetOrCreateParameter возвращает параметр по имени из глобального словаря
func (t *importTx) GetOrCreateParameter(name string) (*entity.Parameter, bool, error) {
	var parameter entity.Parameter
	err := t.db.First(&parameter, "name = ?", name).Error
	if err == nil {
		return &parameter, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	parameter = entity.Parameter{ID: uuid.New(), Name: name}

	result := t.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&parameter)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		if err := t.db.First(&parameter, "name = ?", name).Error; err != nil {
			return nil, false, err
		}
		return &parameter, false, nil
	}

	return &parameter, true, nil
}

// CreateProductParameter создает новую строку значения атрибута (append-only)
func (t *importTx) CreateProductParameter(pp *entity.ProductParameter) error {
	return t.db.Create(pp).Error
}
