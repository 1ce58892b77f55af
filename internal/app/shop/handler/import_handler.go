package handler

import (
	"errors"
	"io"
	"net/http"

	"shopline/internal/app/shop/entity"
	"shopline/internal/app/shop/service"

	"github.com/gin-gonic/gin"
)

// ImportHandler обрабатывает импорт каталога поставщика.
// Запрос multipart/form-data с полем url либо file.
type ImportHandler struct {
	importService service.ImportServiceInterface
}

// NewImportHandler создает новый обработчик импорта
func NewImportHandler(importService service.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// ImportProducts обрабатывает POST /import
func (h *ImportHandler) ImportProducts(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, entity.ImportResponse{
			Status: false,
			Error:  "Unauthorized",
		})
		return
	}

	sourceURL := c.PostForm("url")

	var fileContent []byte
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, entity.ImportResponse{
				Status: false,
				Error:  "Failed to read uploaded file.",
			})
			return
		}
		defer file.Close()

		fileContent, err = io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, entity.ImportResponse{
				Status: false,
				Error:  "Failed to read uploaded file.",
			})
			return
		}
	}

	summary, err := h.importService.Import(c.Request.Context(), principal, sourceURL, fileContent)
	if err != nil {
		status, message := importErrorResponse(err)
		c.JSON(status, entity.ImportResponse{
			Status: false,
			Error:  message,
		})
		return
	}

	c.JSON(http.StatusOK, entity.ImportResponse{
		Status:  true,
		Message: "Products imported successfully.",
		Summary: summary,
	})
}

// importErrorResponse переводит ошибку импорта в HTTP статус и описание.
// Ошибки согласования - серверные (500): вход к этому моменту
// синтаксически валиден, значит проблема в данных или схеме.
func importErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "Access denied. Only shops can import products."
	case errors.Is(err, service.ErrSourceRequired):
		return http.StatusBadRequest, "URL or file is required."
	case errors.Is(err, service.ErrInvalidURL):
		return http.StatusBadRequest, "Invalid URL."
	case errors.Is(err, service.ErrFetchFailed):
		return http.StatusBadRequest, "Failed to fetch the file from URL."
	case errors.Is(err, service.ErrInvalidDocument):
		return http.StatusBadRequest, "Invalid YAML file."
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
