package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/presupuestador/backend/internal/domain"
)

// Quoter produces a priced quote for a list of requested items.
type Quoter interface {
	Quote(ctx context.Context, items []domain.RequestedItem) (*domain.Quote, error)
}

// ListExtractor turns raw uploads (plain text or photos) into requested items.
type ListExtractor interface {
	ExtractItems(ctx context.Context, rawText string) ([]domain.RequestedItem, error)
	ExtractItemsFromImage(ctx context.Context, mimeType string, data []byte) ([]domain.RequestedItem, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	quoter    Quoter
	extractor ListExtractor
	catalog   *domain.CatalogView
	maxUpload int64
}

// NewHandler creates a new HTTP handler
func NewHandler(quoter Quoter, extractor ListExtractor, catalog *domain.CatalogView, maxUploadMB int) *Handler {
	return &Handler{
		quoter:    quoter,
		extractor: extractor,
		catalog:   catalog,
		maxUpload: int64(maxUploadMB) << 20,
	}
}

// quoteRequest is the JSON body for the already-itemized quote endpoint.
type quoteRequest struct {
	Items []domain.RequestedItem `json:"items" binding:"required"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  "presupuestador-backend",
		"version":  "1.0.0",
		"products": h.catalog.Len(),
	})
}

// GetCatalog returns the full product catalog
func (h *Handler) GetCatalog(c *gin.Context) {
	products := h.catalog.Products()
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

// QuoteFromItems prices an already-itemized list sent as JSON.
func (h *Handler) QuoteFromItems(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid request body: expected {\"items\": [{\"item\": ..., \"quantity\": ...}]}",
		})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "la lista está vacía",
		})
		return
	}

	h.quote(c, req.Items)
}

// QuoteFromUpload extracts items from an uploaded list (text file or photo)
// and prices them. The file goes in the multipart field "lista".
func (h *Handler) QuoteFromUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("lista")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "falta el archivo: enviá la lista en el campo \"lista\"",
		})
		return
	}
	defer file.Close()

	if header.Size > h.maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"success": false,
			"error":   fmt.Sprintf("el archivo supera el límite de %dMB", h.maxUpload>>20),
		})
		return
	}

	items, err := h.extractUpload(c.Request.Context(), file, header)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "no se pudo leer ningún ítem de la lista",
		})
		return
	}

	h.quote(c, items)
}

func (h *Handler) quote(c *gin.Context, items []domain.RequestedItem) {
	quote, err := h.quoter.Quote(c.Request.Context(), items)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"summary": quote.Summary,
		"items":   quote.Items,
	})
}

// extractUpload routes the upload to the right extractor based on its content
// type. PDFs and office documents are rejected: the store front end converts
// those to images before uploading.
func (h *Handler) extractUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader) ([]domain.RequestedItem, error) {
	contentType := strings.ToLower(header.Header.Get("Content-Type"))

	switch {
	case strings.HasPrefix(contentType, "text/plain"), contentType == "":
		data, err := io.ReadAll(io.LimitReader(file, h.maxUpload))
		if err != nil {
			return nil, fmt.Errorf("reading upload: %w", err)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return nil, domain.ErrEmptyList
		}
		return h.extractor.ExtractItems(ctx, text)

	case contentType == "image/jpeg", contentType == "image/png",
		contentType == "image/webp", contentType == "image/gif":
		data, err := io.ReadAll(io.LimitReader(file, h.maxUpload))
		if err != nil {
			return nil, fmt.Errorf("reading upload: %w", err)
		}
		return h.extractor.ExtractItemsFromImage(ctx, contentType, data)

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, contentType)
	}
}

// writeError maps domain errors to HTTP statuses. Matcher outages surface as
// 503 so clients know to retry; garbled matcher output is a 502.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{
			"success": false,
			"error":   "formato no soportado: enviá un archivo de texto o una imagen (JPG, PNG, WebP)",
		})
	case errors.Is(err, domain.ErrEmptyList), errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "no se pudo leer la lista",
		})
	case errors.Is(err, domain.ErrMatcherUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "el servicio de cotización no está disponible, probá de nuevo en unos minutos",
		})
	case errors.Is(err, domain.ErrMatcherParse):
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "no se pudieron interpretar los resultados, probá de nuevo",
		})
	default:
		log.Printf("[HTTP] unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "error interno del servidor",
		})
	}
}
