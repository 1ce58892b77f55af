package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopline/internal/app/shop/entity"
	"shopline/internal/app/shop/repository"
	"shopline/internal/app/shop/repository/mocks"
	"shopline/internal/app/shop/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Хелперы для создания тестовых данных
func newTestJWTManager() *util.JWTManager {
	return util.NewJWTManager("test-secret-key", 15*time.Minute, 7*24*time.Hour)
}

func newTestUser() *entity.User {
	hash, _ := util.HashPassword("password123")
	return &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: hash,
		Name:         "Test User",
		Type:         entity.UserTypeBuyer,
		CreatedAt:    time.Now(),
	}
}

func newAuthService() (*AuthService, *mocks.MockUserRepository, *mocks.MockTokenRepository, *MockMailer) {
	userRepo := new(mocks.MockUserRepository)
	tokenRepo := new(mocks.MockTokenRepository)
	mailer := new(MockMailer)
	service := NewAuthService(userRepo, tokenRepo, newTestJWTManager(), mailer)
	return service, userRepo, tokenRepo, mailer
}

// ==================== Register Tests ====================

func TestAuthService_Register_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, userRepo, tokenRepo, mailer := newAuthService()

	userRepo.On("GetByEmail", ctx, "newuser@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	tokenRepo.On("SaveRefreshToken", ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
	mailer.On("Send", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), "newuser@example.com").Return(nil)

	req := &entity.RegisterRequest{
		Email:    "newuser@example.com",
		Password: "password123",
		Name:     "New User",
	}

	// Act
	response, err := service.Register(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "newuser@example.com", response.User.Email)
	assert.Equal(t, entity.UserTypeBuyer, response.User.Type)
	assert.NotEmpty(t, response.Tokens.AccessToken)
	assert.NotEmpty(t, response.Tokens.RefreshToken)
	assert.Equal(t, "Email sent successfully", response.EmailStatus)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_ShopType(t *testing.T) {
	ctx := context.Background()
	service, userRepo, tokenRepo, mailer := newAuthService()

	userRepo.On("GetByEmail", ctx, "shop@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Type == entity.UserTypeShop
	})).Return(nil)
	tokenRepo.On("SaveRefreshToken", ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
	mailer.On("Send", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), "shop@example.com").Return(nil)

	req := &entity.RegisterRequest{
		Email:    "shop@example.com",
		Password: "password123",
		Name:     "Acme",
		Type:     entity.UserTypeShop,
	}

	// Act
	response, err := service.Register(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeShop, response.User.Type)
}

func TestAuthService_Register_UserExists(t *testing.T) {
	ctx := context.Background()
	service, userRepo, _, _ := newAuthService()

	existing := newTestUser()
	userRepo.On("GetByEmail", ctx, existing.Email).Return(existing, nil)

	req := &entity.RegisterRequest{Email: existing.Email, Password: "password123"}

	// Act
	response, err := service.Register(ctx, req)

	// Assert
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Nil(t, response)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_EmailFailureDoesNotFailRegistration(t *testing.T) {
	ctx := context.Background()
	service, userRepo, tokenRepo, mailer := newAuthService()

	userRepo.On("GetByEmail", ctx, "newuser@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	tokenRepo.On("SaveRefreshToken", ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
	mailer.On("Send", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), "newuser@example.com").
		Return(errors.New("smtp unavailable"))

	req := &entity.RegisterRequest{Email: "newuser@example.com", Password: "password123"}

	// Act
	response, err := service.Register(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, response.EmailStatus, "Registration successful, but failed to send email")
}

// ==================== Login Tests ====================

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	service, userRepo, tokenRepo, _ := newAuthService()

	user := newTestUser()
	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)
	tokenRepo.On("SaveRefreshToken", ctx, user.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	req := &entity.LoginRequest{Email: user.Email, Password: "password123"}

	// Act
	response, err := service.Login(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, user.Email, response.User.Email)
	assert.NotEmpty(t, response.Tokens.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	service, userRepo, _, _ := newAuthService()

	user := newTestUser()
	userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

	req := &entity.LoginRequest{Email: user.Email, Password: "wrong-password"}

	// Act
	response, err := service.Login(ctx, req)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, response)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctx := context.Background()
	service, userRepo, _, _ := newAuthService()

	userRepo.On("GetByEmail", ctx, "missing@example.com").Return(nil, repository.ErrUserNotFound)

	req := &entity.LoginRequest{Email: "missing@example.com", Password: "password123"}

	// Act
	response, err := service.Login(ctx, req)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, response)
}

// ==================== RefreshTokens Tests ====================

func TestAuthService_RefreshTokens_Success(t *testing.T) {
	ctx := context.Background()
	service, userRepo, tokenRepo, _ := newAuthService()

	user := newTestUser()
	tokenRepo.On("GetRefreshToken", ctx, "valid-refresh-token").Return(user.ID, nil)
	tokenRepo.On("DeleteRefreshToken", ctx, "valid-refresh-token").Return(nil)
	userRepo.On("GetByID", ctx, user.ID).Return(user, nil)
	tokenRepo.On("SaveRefreshToken", ctx, user.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	// Act
	tokens, err := service.RefreshTokens(ctx, "valid-refresh-token")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEqual(t, "valid-refresh-token", tokens.RefreshToken)
	// Старый refresh токен одноразовый и удаляется
	tokenRepo.AssertCalled(t, "DeleteRefreshToken", ctx, "valid-refresh-token")
}

func TestAuthService_RefreshTokens_InvalidToken(t *testing.T) {
	ctx := context.Background()
	service, _, tokenRepo, _ := newAuthService()

	tokenRepo.On("GetRefreshToken", ctx, "unknown-token").Return(uuid.Nil, repository.ErrTokenNotFound)

	// Act
	tokens, err := service.RefreshTokens(ctx, "unknown-token")

	// Assert
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	assert.Nil(t, tokens)
}

// ==================== Logout / ValidateToken Tests ====================

func TestAuthService_Logout_BlacklistsToken(t *testing.T) {
	ctx := context.Background()
	service, _, tokenRepo, _ := newAuthService()

	user := newTestUser()
	accessToken, err := newTestJWTManager().GenerateAccessToken(user)
	require.NoError(t, err)

	tokenRepo.On("AddToBlacklist", ctx, accessToken, mock.AnythingOfType("time.Time")).Return(nil)
	tokenRepo.On("DeleteUserRefreshTokens", ctx, user.ID).Return(nil)

	// Act
	err = service.Logout(ctx, user.ID, accessToken)

	// Assert
	require.NoError(t, err)
	tokenRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Blacklisted(t *testing.T) {
	ctx := context.Background()
	service, _, tokenRepo, _ := newAuthService()

	user := newTestUser()
	accessToken, err := newTestJWTManager().GenerateAccessToken(user)
	require.NoError(t, err)

	tokenRepo.On("IsBlacklisted", ctx, accessToken).Return(true, nil)

	// Act
	claims, err := service.ValidateToken(ctx, accessToken)

	// Assert
	assert.ErrorIs(t, err, util.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestAuthService_ValidateToken_Success(t *testing.T) {
	ctx := context.Background()
	service, _, tokenRepo, _ := newAuthService()

	user := newTestUser()
	accessToken, err := newTestJWTManager().GenerateAccessToken(user)
	require.NoError(t, err)

	tokenRepo.On("IsBlacklisted", ctx, accessToken).Return(false, nil)

	// Act
	claims, err := service.ValidateToken(ctx, accessToken)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}
