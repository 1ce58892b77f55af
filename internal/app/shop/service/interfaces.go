package service

import (
	"context"
	"time"

	"shopline/internal/app/shop/entity"
	"shopline/internal/app/shop/util"

	"github.com/google/uuid"
)

// DocumentFetcher загружает каталог поставщика по URL
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// MessagePublisher отправляет доменные события
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
}

// CategoryCache кеширует список категорий
type CategoryCache interface {
	GetCategories(ctx context.Context) ([]entity.Category, error)
	SetCategories(ctx context.Context, categories []entity.Category, ttl time.Duration) error
	DeleteCategories(ctx context.Context) error
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req *entity.RegisterRequest) (*entity.AuthResponse, error)
	Login(ctx context.Context, req *entity.LoginRequest) (*entity.AuthResponse, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID, accessToken string) error
	ValidateToken(ctx context.Context, token string) (*util.JWTClaims, error)
}

type ImportServiceInterface interface {
	Import(ctx context.Context, principal entity.Principal, url string, file []byte) (*entity.ImportSummary, error)
}

type CatalogServiceInterface interface {
	GetOffers(ctx context.Context, categoryName string) ([]entity.ProductInfo, error)
	GetCategories(ctx context.Context) ([]entity.Category, error)
}

type CartServiceInterface interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Order, error)
	AddItem(ctx context.Context, userID, productInfoID uuid.UUID, quantity int) (*entity.Order, error)
	RemoveItem(ctx context.Context, userID, productInfoID uuid.UUID) (*entity.Order, error)
	ConfirmOrder(ctx context.Context, userID, contactID uuid.UUID, email string) (*entity.Order, string, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)
	CreateContact(ctx context.Context, userID uuid.UUID, req *entity.ContactRequest) (*entity.Contact, error)
	ListContacts(ctx context.Context, userID uuid.UUID) ([]entity.Contact, error)
	UpdateContact(ctx context.Context, userID, contactID uuid.UUID, req *entity.ContactRequest) (*entity.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error
}
