package service

import "errors"

var (
	// Ошибки импорта каталога
	ErrForbidden       = errors.New("access denied: only shops can import products")
	ErrSourceRequired  = errors.New("url or file is required")
	ErrInvalidURL      = errors.New("invalid url")
	ErrFetchFailed     = errors.New("failed to fetch the file from url")
	ErrInvalidDocument = errors.New("invalid catalog document")
	ErrImportFailed    = errors.New("import failed")

	// Ошибки аутентификации
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUserNotFound        = errors.New("user not found")

	// Ошибки корзины и заказов
	ErrBasketNotFound  = errors.New("basket not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrItemNotFound    = errors.New("order item not found")
	ErrContactNotFound = errors.New("contact not found")
)
