package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/service/catalog"
)

// CatalogHandler exposes the auxiliary studio collections.
type CatalogHandler struct {
	svc    *catalog.Service
	logger *zap.Logger
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(svc *catalog.Service, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{svc: svc, logger: logger}
}

func (h *CatalogHandler) ListToDos(c *gin.Context) {
	respondList(c, h.logger, "todos", h.svc.ListToDos)
}

func (h *CatalogHandler) AddToDo(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.AddToDo(c.Request.Context(), req.Text)
	respondCreated(c, h.logger, "todo", item, err)
}

func (h *CatalogHandler) ToggleToDo(c *gin.Context) {
	item, err := h.svc.ToggleToDo(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "failed toggling todo", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) DeleteToDo(c *gin.Context) {
	respondDeleted(c, h.logger, "todo", h.svc.DeleteToDo)
}

func (h *CatalogHandler) ListEquipment(c *gin.Context) {
	respondList(c, h.logger, "equipment", h.svc.ListEquipment)
}

func (h *CatalogHandler) AddEquipment(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Category string `json:"category"`
	}
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.AddEquipment(c.Request.Context(), req.Name, req.Category)
	respondCreated(c, h.logger, "equipment", item, err)
}

func (h *CatalogHandler) DeleteEquipment(c *gin.Context) {
	respondDeleted(c, h.logger, "equipment", h.svc.DeleteEquipment)
}

func (h *CatalogHandler) ListSubscriptions(c *gin.Context) {
	respondList(c, h.logger, "subscriptions", h.svc.ListSubscriptions)
}

// AddSubscription accepts the price as a JSON number or a decimal string.
func (h *CatalogHandler) AddSubscription(c *gin.Context) {
	var req struct {
		Name     string              `json:"name" binding:"required"`
		Price    decimal.Decimal     `json:"price"`
		Currency models.Currency     `json:"currency"`
		Cycle    models.BillingCycle `json:"cycle"`
	}
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.AddSubscription(c.Request.Context(), req.Name, req.Price, req.Currency, req.Cycle)
	respondCreated(c, h.logger, "subscription", item, err)
}

func (h *CatalogHandler) DeleteSubscription(c *gin.Context) {
	respondDeleted(c, h.logger, "subscription", h.svc.DeleteSubscription)
}

func (h *CatalogHandler) ListGallery(c *gin.Context) {
	respondList(c, h.logger, "gallery", h.svc.ListGallery)
}

func (h *CatalogHandler) AddGalleryItem(c *gin.Context) {
	var req imageRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.AddGalleryItem(c.Request.Context(), req.ImageURL)
	respondCreated(c, h.logger, "gallery item", item, err)
}

func (h *CatalogHandler) ToggleGalleryItem(c *gin.Context) {
	item, err := h.svc.ToggleGalleryItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "failed toggling gallery item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) DeleteGalleryItem(c *gin.Context) {
	respondDeleted(c, h.logger, "gallery item", h.svc.DeleteGalleryItem)
}

func (h *CatalogHandler) ListLifestyle(c *gin.Context) {
	respondList(c, h.logger, "lifestyle", h.svc.ListLifestyle)
}

func (h *CatalogHandler) AddLifestyleItem(c *gin.Context) {
	var req imageRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.AddLifestyleItem(c.Request.Context(), req.ImageURL)
	respondCreated(c, h.logger, "lifestyle item", item, err)
}

func (h *CatalogHandler) DeleteLifestyleItem(c *gin.Context) {
	respondDeleted(c, h.logger, "lifestyle item", h.svc.DeleteLifestyleItem)
}

func (h *CatalogHandler) ListDocuments(c *gin.Context) {
	respondList(c, h.logger, "documents", h.svc.ListDocuments)
}

func (h *CatalogHandler) AddDocument(c *gin.Context) {
	var req struct {
		Name     string                  `json:"name" binding:"required"`
		Category string                  `json:"category"`
		FileURL  string                  `json:"file_url" binding:"required"`
		FileType models.DocumentFileType `json:"file_type"`
	}
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.svc.AddDocument(c.Request.Context(), req.Name, req.Category, req.FileURL, req.FileType)
	respondCreated(c, h.logger, "document", item, err)
}

func (h *CatalogHandler) DeleteDocument(c *gin.Context) {
	respondDeleted(c, h.logger, "document", h.svc.DeleteDocument)
}

type imageRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

func respondList[T any](c *gin.Context, logger *zap.Logger, what string, list func(context.Context) ([]T, error)) {
	items, err := list(c.Request.Context())
	if err != nil {
		respondError(c, logger, "failed listing "+what, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func respondCreated[T any](c *gin.Context, logger *zap.Logger, what string, item T, err error) {
	if err != nil {
		respondError(c, logger, "failed adding "+what, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func respondDeleted(c *gin.Context, logger *zap.Logger, what string, remove func(context.Context, string) error) {
	if err := remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, "failed deleting "+what, err)
		return
	}
	c.Status(http.StatusNoContent)
}
