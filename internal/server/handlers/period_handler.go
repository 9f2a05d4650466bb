package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/service/catalog"
)

type periodResponse struct {
	models.Period
	Label string `json:"label"`
}

func newPeriodResponse(p models.Period) periodResponse {
	return periodResponse{Period: p, Label: p.Label()}
}

// PeriodHandler reads and moves the dashboard's active period.
type PeriodHandler struct {
	svc    *catalog.PeriodService
	logger *zap.Logger
}

// NewPeriodHandler constructs the handler.
func NewPeriodHandler(svc *catalog.PeriodService, logger *zap.Logger) *PeriodHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PeriodHandler{svc: svc, logger: logger}
}

func (h *PeriodHandler) Get(c *gin.Context) {
	period, err := h.svc.ActivePeriod(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "failed loading active period", err)
		return
	}
	c.JSON(http.StatusOK, newPeriodResponse(period))
}

// Set stores a {"year": 2024, "month": 6} body; month -1 selects the whole year.
func (h *PeriodHandler) Set(c *gin.Context) {
	var req models.Period
	if !bindJSON(c, &req) {
		return
	}

	period, err := h.svc.SetActivePeriod(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "failed setting active period", err)
		return
	}
	c.JSON(http.StatusOK, newPeriodResponse(period))
}

// Shift moves the period by {"delta": n, "unit": "month"|"year"}; unit defaults to month.
func (h *PeriodHandler) Shift(c *gin.Context) {
	var req struct {
		Delta int    `json:"delta" binding:"required"`
		Unit  string `json:"unit"`
	}
	if !bindJSON(c, &req) {
		return
	}

	var (
		period models.Period
		err    error
	)
	switch req.Unit {
	case "", "month":
		period, err = h.svc.ShiftMonth(c.Request.Context(), req.Delta)
	case "year":
		period, err = h.svc.ShiftYear(c.Request.Context(), req.Delta)
	default:
		err = errBadRequestf("unit %q", req.Unit)
	}
	if err != nil {
		respondError(c, h.logger, "failed shifting active period", err)
		return
	}
	c.JSON(http.StatusOK, newPeriodResponse(period))
}

// Complete closes the active month and moves to the next one.
func (h *PeriodHandler) Complete(c *gin.Context) {
	period, err := h.svc.CompleteMonth(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "failed completing month", err)
		return
	}
	c.JSON(http.StatusOK, newPeriodResponse(period))
}
