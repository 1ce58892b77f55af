package repository

import (
	"context"
	"errors"
	"time"

	"shopline/internal/app/shop/entity"

	"github.com/google/uuid"
)

var (
	// Стандартные ошибки репозиториев для обработки в service layer
	ErrUserNotFound      = errors.New("user not found")
	ErrTokenNotFound     = errors.New("token not found")
	ErrOfferNotFound     = errors.New("offer not found")
	ErrBasketNotFound    = errors.New("basket not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrContactNotFound   = errors.New("contact not found")
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, token string) (uuid.UUID, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteUserRefreshTokens(ctx context.Context, userID uuid.UUID) error
	AddToBlacklist(ctx context.Context, token string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

type CatalogRepository interface {
	GetOffers(ctx context.Context, categoryName string) ([]entity.ProductInfo, error)
	GetOfferByID(ctx context.Context, id uuid.UUID) (*entity.ProductInfo, error)
	GetCategories(ctx context.Context) ([]entity.Category, error)
}

type OrderRepository interface {
	GetBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error)
	GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error)
	GetItem(ctx context.Context, orderID, productInfoID uuid.UUID) (*entity.OrderItem, error)
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	Update(ctx context.Context, order *entity.Order) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)
}

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Contact, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// ImportTx - операции согласования сущностей внутри одной транзакции.
// Все get-or-create устойчивы к конкурентным создателям одного имени.
type ImportTx interface {
	// GetOrCreateShop возвращает магазин по (name, userID); при создании
	// устанавливает sourceURL, у существующего магазина URL не трогается
	GetOrCreateShop(name string, userID uuid.UUID, sourceURL string) (*entity.Shop, bool, error)
	// GetOrCreateCategory возвращает категорию по id поставщика;
	// имя фиксируется при первом появлении и не перезаписывается
	GetOrCreateCategory(id int, name string) (*entity.Category, bool, error)
	// LinkCategoryShop связывает категорию с магазином; повтор - no-op
	LinkCategoryShop(categoryID int, shopID uuid.UUID) error
	// GetOrCreateProduct возвращает товар по имени; ссылка на категорию
	// фиксируется при создании и не обновляется
	GetOrCreateProduct(name string, categoryID int) (*entity.Product, bool, error)
	CreateProductInfo(info *entity.ProductInfo) error
	GetOrCreateParameter(name string) (*entity.Parameter, bool, error)
	CreateProductParameter(pp *entity.ProductParameter) error
}

// ImportRepository предоставляет единицу работы для импорта каталога:
// все операции fn выполняются в одной транзакции, ошибка откатывает всё
type ImportRepository interface {
	RunInTransaction(ctx context.Context, fn func(tx ImportTx) error) error
}

// ImportLogRepository ведёт append-only журнал импортов
type ImportLogRepository interface {
	Append(ctx context.Context, log *entity.ImportLog) error
}
