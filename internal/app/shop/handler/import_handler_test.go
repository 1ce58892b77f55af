package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopline/internal/app/shop/entity"
	"shopline/internal/app/shop/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockImportService мок для ImportServiceInterface
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Import(ctx context.Context, principal entity.Principal, url string, file []byte) (*entity.ImportSummary, error) {
	args := m.Called(ctx, principal, url, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ImportSummary), args.Error(1)
}

func setupImportRouter(importService *MockImportService, principal *entity.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	importHandler := NewImportHandler(importService)
	router.POST("/import", func(c *gin.Context) {
		if principal != nil {
			c.Set(principalKey, *principal)
		}
		importHandler.ImportProducts(c)
	})
	return router
}

// newImportRequest собирает multipart запрос с полями url и/или file
func newImportRequest(t *testing.T, url string, file []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if url != "" {
		require.NoError(t, writer.WriteField("url", url))
	}
	if file != nil {
		part, err := writer.CreateFormFile("file", "catalog.yaml")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImportHandler_Success(t *testing.T) {
	// Arrange
	importService := new(MockImportService)
	principal := entity.Principal{UserID: uuid.New(), Type: entity.UserTypeShop}
	router := setupImportRouter(importService, &principal)

	summary := &entity.ImportSummary{ShopID: uuid.New(), ShopName: "Acme Wholesale", Categories: 2, Products: 2, Offers: 2}
	importService.On("Import", mock.Anything, principal, "", mock.Anything).Return(summary, nil)

	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, newImportRequest(t, "", []byte("shop: Acme Wholesale\n")))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var response entity.ImportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Status)
	assert.Equal(t, "Products imported successfully.", response.Message)
	require.NotNil(t, response.Summary)
	assert.Equal(t, "Acme Wholesale", response.Summary.ShopName)
}

func TestImportHandler_URLPassedToService(t *testing.T) {
	importService := new(MockImportService)
	principal := entity.Principal{UserID: uuid.New(), Type: entity.UserTypeShop}
	router := setupImportRouter(importService, &principal)

	sourceURL := "https://supplier.example.com/catalog.yaml"
	summary := &entity.ImportSummary{ShopName: "Acme Wholesale"}
	importService.On("Import", mock.Anything, principal, sourceURL, mock.Anything).Return(summary, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newImportRequest(t, sourceURL, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	importService.AssertExpectations(t)
}

func TestImportHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "Access denied. Only shops can import products."},
		{"source required", service.ErrSourceRequired, http.StatusBadRequest, "URL or file is required."},
		{"invalid url", service.ErrInvalidURL, http.StatusBadRequest, "Invalid URL."},
		{"fetch failed", service.ErrFetchFailed, http.StatusBadRequest, "Failed to fetch the file from URL."},
		{"invalid document", service.ErrInvalidDocument, http.StatusBadRequest, "Invalid YAML file."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			importService := new(MockImportService)
			principal := entity.Principal{UserID: uuid.New(), Type: entity.UserTypeShop}
			router := setupImportRouter(importService, &principal)

			importService.On("Import", mock.Anything, principal, mock.Anything, mock.Anything).Return(nil, tc.err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newImportRequest(t, "", []byte("shop: Acme\n")))

			assert.Equal(t, tc.wantStatus, w.Code)

			var response entity.ImportResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.False(t, response.Status)
			assert.Equal(t, tc.wantError, response.Error)
		})
	}
}

func TestImportHandler_ReconcileErrorIsServerError(t *testing.T) {
	importService := new(MockImportService)
	principal := entity.Principal{UserID: uuid.New(), Type: entity.UserTypeShop}
	router := setupImportRouter(importService, &principal)

	importService.On("Import", mock.Anything, principal, mock.Anything, mock.Anything).
		Return(nil, service.ErrImportFailed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newImportRequest(t, "", []byte("shop: Acme\n")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response entity.ImportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Status)
	assert.NotEmpty(t, response.Error)
}

func TestImportHandler_NoPrincipal(t *testing.T) {
	importService := new(MockImportService)
	router := setupImportRouter(importService, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newImportRequest(t, "", []byte("shop: Acme\n")))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	importService.AssertNotCalled(t, "Import", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
