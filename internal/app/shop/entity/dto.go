package entity

import "github.com/google/uuid"

type RegisterRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	Name     string   `json:"name" validate:"required,min=2,max=255"`
	Type     UserType `json:"type" validate:"omitempty,oneof=buyer shop"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	User        User      `json:"user"`
	Tokens      TokenPair `json:"tokens"`
	EmailStatus string    `json:"email_status,omitempty"`
}

type CartAddRequest struct {
	ProductInfoID uuid.UUID `json:"product_info_id" validate:"required"`
	Quantity      int       `json:"quantity" validate:"required,gt=0"`
}

type CartRemoveRequest struct {
	ProductInfoID uuid.UUID `json:"product_info_id" validate:"required"`
}

type ConfirmOrderRequest struct {
	ContactID uuid.UUID `json:"contact_id" validate:"required"`
}

type ConfirmOrderResponse struct {
	Status      string    `json:"status"`
	OrderID     uuid.UUID `json:"order_id"`
	EmailStatus string    `json:"email_status"`
}

type ContactRequest struct {
	City   string `json:"city" validate:"required,min=2,max=100"`
	Street string `json:"street" validate:"required,min=2,max=255"`
	House  string `json:"house" validate:"omitempty,max=50"`
	Phone  string `json:"phone" validate:"required,min=5,max=30"`
}

// ImportSummary содержит счётчики сущностей, затронутых одним импортом
type ImportSummary struct {
	ShopID     uuid.UUID `json:"shop_id"`
	ShopName   string    `json:"shop_name"`
	Categories int       `json:"categories"`
	Products   int       `json:"products"`
	Offers     int       `json:"offers"`
	Parameters int       `json:"parameters"`
}

// ImportResponse - форма ответа импорта: {status, message} при успехе,
// {status, error} при ошибке
type ImportResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
	Summary *ImportSummary `json:"summary,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type OfferListResponse struct {
	Offers []ProductInfo `json:"offers"`
	Total  int           `json:"total"`
}

type CategoryListResponse struct {
	Categories []Category `json:"categories"`
	Total      int        `json:"total"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

type ContactListResponse struct {
	Contacts []Contact `json:"contacts"`
	Total    int       `json:"total"`
}
