package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserType представляет тип учётной записи
type UserType string

const (
	UserTypeBuyer UserType = "buyer" // Покупатель
	UserTypeShop  UserType = "shop"  // Магазин (поставщик)
)

// User представляет пользователя системы
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	Type         UserType  `json:"type" gorm:"type:varchar(20);not null;default:'buyer'"`
	IsSuperuser  bool      `json:"is_superuser" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// Contact представляет контакт доставки пользователя
type Contact struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	City   string    `json:"city" gorm:"type:varchar(100);not null"`
	Street string    `json:"street" gorm:"type:varchar(255);not null"`
	House  string    `json:"house" gorm:"type:varchar(50)"`
	Phone  string    `json:"phone" gorm:"type:varchar(30);not null"`
}

// TableName указывает имя таблицы для GORM
func (Contact) TableName() string {
	return "contacts"
}

// Shop представляет магазин поставщика
// Идентичность - пара (name, user_id), повторный импорт не создаёт дубликат
type Shop struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_shops_name_user"`
	URL       string    `json:"url" gorm:"type:varchar(1024)"` // Источник каталога, пустая строка при импорте из файла
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_shops_name_user"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы для GORM
func (Shop) TableName() string {
	return "shops"
}

// Category представляет категорию товаров
// ID назначается поставщиком и является источником истины,
// имя фиксируется при первом появлении и не перезаписывается
type Category struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

// TableName указывает имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CategoryShop связывает категорию с магазином (many-to-many)
type CategoryShop struct {
	CategoryID int       `json:"category_id" gorm:"primaryKey;autoIncrement:false"`
	ShopID     uuid.UUID `json:"shop_id" gorm:"type:uuid;primaryKey"`
}

// TableName указывает имя таблицы для GORM
func (CategoryShop) TableName() string {
	return "category_shops"
}

// Product представляет товар
// Имя глобально уникально, категория фиксируется при создании
type Product struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
	CategoryID int       `json:"category_id" gorm:"not null"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы для GORM
func (Product) TableName() string {
	return "products"
}

// ProductInfo представляет предложение товара конкретным магазином
// Строки append-only: каждый импорт создаёт новый снимок предложения
type ProductInfo struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	ShopID    uuid.UUID `json:"shop_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"type:varchar(255)"` // Модель из каталога поставщика
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:decimal(12,2);not null"`
	PriceRRC  float64   `json:"price_rrc" gorm:"type:decimal(12,2)"` // Рекомендованная розничная цена
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Shop      *Shop     `json:"shop,omitempty" gorm:"foreignKey:ShopID"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы для GORM
func (ProductInfo) TableName() string {
	return "product_infos"
}

// Parameter представляет имя атрибута товара (глобальный словарь: color, weight и т.п.)
type Parameter struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName указывает имя таблицы для GORM
func (Parameter) TableName() string {
	return "parameters"
}

// ProductParameter представляет значение атрибута для одного предложения
// Строки append-only, никогда не обновляются
type ProductParameter struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ProductInfoID uuid.UUID  `json:"product_info_id" gorm:"type:uuid;not null;index"`
	ParameterID   uuid.UUID  `json:"parameter_id" gorm:"type:uuid;not null"`
	Value         string     `json:"value" gorm:"type:varchar(255);not null"`
	Parameter     *Parameter `json:"parameter,omitempty" gorm:"foreignKey:ParameterID"`
}

// TableName указывает имя таблицы для GORM
func (ProductParameter) TableName() string {
	return "product_parameters"
}

// OrderStatus представляет статусы заказа
type OrderStatus string

const (
	OrderStatusBasket    OrderStatus = "basket"    // Корзина (изменяемая)
	OrderStatusConfirmed OrderStatus = "confirmed" // Подтверждён
)

// Order представляет заказ в системе
type Order struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'basket'"`
	ContactID *uuid.UUID  `json:"contact_id,omitempty" gorm:"type:uuid"` // Заполняется при подтверждении
	CreatedAt time.Time   `json:"created_at" gorm:"autoCreateTime"`
	Items     []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName указывает имя таблицы для GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem представляет позицию в заказе
// Для пары (order, product_info) существует не более одной строки
type OrderItem struct {
	ID            uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID    `json:"order_id" gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_offer"`
	ProductInfoID uuid.UUID    `json:"product_info_id" gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_offer"`
	Quantity      int          `json:"quantity" gorm:"not null;check:quantity > 0"`
	ProductInfo   *ProductInfo `json:"product_info,omitempty" gorm:"foreignKey:ProductInfoID"`
}

// TableName указывает имя таблицы для GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// Principal представляет аутентифицированного пользователя запроса
type Principal struct {
	UserID    uuid.UUID
	Email     string
	Type      UserType
	Superuser bool
}

// CanImport сообщает, разрешён ли пользователю импорт каталога
func (p Principal) CanImport() bool {
	return p.Superuser || p.Type == UserTypeShop
}

// ImportLog представляет запись журнала импортов в MongoDB
type ImportLog struct {
	UserID     string    `bson:"user_id"`
	ShopName   string    `bson:"shop_name"`
	SourceURL  string    `bson:"source_url"`
	Success    bool      `bson:"success"`
	Error      string    `bson:"error,omitempty"`
	Categories int       `bson:"categories"`
	Products   int       `bson:"products"`
	Offers     int       `bson:"offers"`
	CreatedAt  time.Time `bson:"created_at"`
}

// ImportEvent представляет событие импорта каталога для Kafka
type ImportEvent struct {
	EventType string    `json:"event_type"` // CATALOG_IMPORTED
	UserID    uuid.UUID `json:"user_id"`
	ShopID    uuid.UUID `json:"shop_id"`
	ShopName  string    `json:"shop_name"`
	Offers    int       `json:"offers"`
	Timestamp time.Time `json:"timestamp"`
}
