package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/service/production"
)

// ProductionService is the production record workflow used by the handler.
type ProductionService interface {
	Create(ctx context.Context, in production.Input) (models.ProductionRecord, error)
	Update(ctx context.Context, id string, in production.Input) (models.ProductionRecord, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (models.ProductionRecord, error)
	List(ctx context.Context) ([]models.ProductionRecord, error)
	ToggleComplete(ctx context.Context, id string) (models.ProductionRecord, error)
	ToggleInvoiced(ctx context.Context, id string) (models.ProductionRecord, error)
	ToggleProductStatus(ctx context.Context, id string) (models.ProductionRecord, error)
	TogglePinned(ctx context.Context, id string) (models.ProductionRecord, error)
	ChangeStatus(ctx context.Context, id string, status models.VideoStatus) (models.ProductionRecord, error)
}

type productionRequest struct {
	Date          string               `json:"date" binding:"required"`
	Title         string               `json:"title" binding:"required"`
	Quantity      int                  `json:"quantity"`
	Type          models.VideoType     `json:"type" binding:"required"`
	Status        models.VideoStatus   `json:"status"`
	ProductStatus models.ProductStatus `json:"product_status"`
	Notes         string               `json:"notes"`
}

func (r productionRequest) input() (production.Input, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return production.Input{}, err
	}
	return production.Input{
		Date:          date,
		Title:         r.Title,
		Quantity:      r.Quantity,
		Type:          r.Type,
		Status:        r.Status,
		ProductStatus: r.ProductStatus,
		Notes:         r.Notes,
	}, nil
}

// ProductionHandler exposes CRUD and flag toggles for production records.
type ProductionHandler struct {
	svc    ProductionService
	logger *zap.Logger
}

// NewProductionHandler constructs the handler.
func NewProductionHandler(svc ProductionService, logger *zap.Logger) *ProductionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductionHandler{svc: svc, logger: logger}
}

func (h *ProductionHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "failed listing productions", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *ProductionHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "failed loading production", err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ProductionHandler) Create(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}

	record, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, "failed creating production", err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *ProductionHandler) Update(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}

	record, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, h.logger, "failed updating production", err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ProductionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, "failed deleting production", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductionHandler) ToggleComplete(c *gin.Context) {
	h.toggle(c, "complete", h.svc.ToggleComplete)
}

func (h *ProductionHandler) ToggleInvoiced(c *gin.Context) {
	h.toggle(c, "invoice", h.svc.ToggleInvoiced)
}

func (h *ProductionHandler) ToggleProductStatus(c *gin.Context) {
	h.toggle(c, "product", h.svc.ToggleProductStatus)
}

func (h *ProductionHandler) TogglePinned(c *gin.Context) {
	h.toggle(c, "pin", h.svc.TogglePinned)
}

// ChangeStatus sets the workflow status from a {"status": "..."} body.
func (h *ProductionHandler) ChangeStatus(c *gin.Context) {
	var req struct {
		Status models.VideoStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, h.logger, "failed changing status", err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ProductionHandler) toggle(c *gin.Context, action string, fn func(context.Context, string) (models.ProductionRecord, error)) {
	record, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "failed toggling "+action, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *ProductionHandler) bind(c *gin.Context) (production.Input, bool) {
	var req productionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid production payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return production.Input{}, false
	}

	in, err := req.input()
	if err != nil {
		respondError(c, h.logger, "invalid production payload", err)
		return production.Input{}, false
	}
	return in, true
}
