package handler

import (
	"net/http"

	"shopline/internal/app/shop/entity"
	"shopline/internal/app/shop/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler обрабатывает HTTP запросы просмотра каталога
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler создает новый обработчик каталога
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetOffers обрабатывает GET /products?category=<name>
func (h *CatalogHandler) GetOffers(c *gin.Context) {
	categoryName := c.Query("category")

	offers, err := h.catalogService.GetOffers(c.Request.Context(), categoryName)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get products")
		return
	}

	c.JSON(http.StatusOK, entity.OfferListResponse{
		Offers: offers,
		Total:  len(offers),
	})
}

// GetCategories обрабатывает GET /categories (с кешированием)
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to get categories")
		return
	}

	c.JSON(http.StatusOK, entity.CategoryListResponse{
		Categories: categories,
		Total:      len(categories),
	})
}
