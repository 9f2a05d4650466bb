package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// ReportingService serves the derived dashboard views.
type ReportingService interface {
	Dashboard(ctx context.Context, filter models.FilterSpec) (*models.Dashboard, error)
	WeekInvoice(ctx context.Context, date time.Time) (models.WeekInvoice, error)
	WeekMissing(ctx context.Context, date time.Time) (models.MissingProducts, error)
	Calendar(ctx context.Context, year int, month time.Month) (models.CalendarMonth, error)
}

// PeriodReader returns the period selected in the dashboard.
type PeriodReader interface {
	ActivePeriod(ctx context.Context) (models.Period, error)
}

// InvoiceExporter archives a weekly invoice.
type InvoiceExporter interface {
	Export(ctx context.Context, invoice models.WeekInvoice) error
}

// DashboardHandler exposes the aggregated views.
type DashboardHandler struct {
	reporting ReportingService
	periods   PeriodReader
	exporter  InvoiceExporter
	location  *time.Location
	now       func() time.Time
	logger    *zap.Logger
}

// NewDashboardHandler builds the handler. exporter may be nil when the invoice sheet is not configured.
func NewDashboardHandler(reporting ReportingService, periods PeriodReader, exporter InvoiceExporter, location *time.Location, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	return &DashboardHandler{
		reporting: reporting,
		periods:   periods,
		exporter:  exporter,
		location:  location,
		now:       time.Now,
		logger:    logger,
	}
}

// Dashboard returns the filtered records, weekly groups, stats, totals and charts.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	active, err := h.periods.ActivePeriod(ctx)
	if err != nil {
		respondError(c, h.logger, "failed loading active period", err)
		return
	}

	filter, err := filterFromQuery(c, active)
	if err != nil {
		respondError(c, h.logger, "invalid dashboard filter", err)
		return
	}

	dashboard, err := h.reporting.Dashboard(ctx, filter)
	if err != nil {
		respondError(c, h.logger, "failed computing dashboard", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// WeekInvoice returns the billing breakdown of the week containing date.
func (h *DashboardHandler) WeekInvoice(c *gin.Context) {
	date, err := dateFromQuery(c, h.location, h.now())
	if err != nil {
		respondError(c, h.logger, "invalid date", err)
		return
	}

	invoice, err := h.reporting.WeekInvoice(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, "failed computing week invoice", err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// ExportWeekInvoice appends the week's invoice to the configured spreadsheet.
func (h *DashboardHandler) ExportWeekInvoice(c *gin.Context) {
	if h.exporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "invoice export is not configured"})
		return
	}

	date, err := dateFromQuery(c, h.location, h.now())
	if err != nil {
		respondError(c, h.logger, "invalid date", err)
		return
	}

	ctx := c.Request.Context()
	invoice, err := h.reporting.WeekInvoice(ctx, date)
	if err != nil {
		respondError(c, h.logger, "failed computing week invoice", err)
		return
	}

	if err := h.exporter.Export(ctx, invoice); err != nil {
		h.logger.Error("failed exporting week invoice", zap.Error(err), zap.String("week", invoice.Label))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to export invoice"})
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// WeekMissing lists the records of the week still waiting for their product.
func (h *DashboardHandler) WeekMissing(c *gin.Context) {
	date, err := dateFromQuery(c, h.location, h.now())
	if err != nil {
		respondError(c, h.logger, "invalid date", err)
		return
	}

	missing, err := h.reporting.WeekMissing(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, "failed computing missing products", err)
		return
	}

	c.JSON(http.StatusOK, missing)
}

// Calendar returns the month grid. Missing year or month fall back to the active period,
// and a whole-year period falls back to the current month.
func (h *DashboardHandler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	active, err := h.periods.ActivePeriod(ctx)
	if err != nil {
		respondError(c, h.logger, "failed loading active period", err)
		return
	}
	if active.IsWholeYear() {
		active.Month = int(h.now().In(h.location).Month())
	}

	year, month := active.Year, active.Month
	if raw := c.Query("year"); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil {
			respondError(c, h.logger, "invalid year", errBadRequestf("year %q", raw))
			return
		}
	}
	if raw := c.Query("month"); raw != "" {
		if month, err = parseMonth(raw); err != nil || month == models.AllMonths {
			respondError(c, h.logger, "invalid month", errBadRequestf("month %q", raw))
			return
		}
	}

	grid, err := h.reporting.Calendar(ctx, year, time.Month(month))
	if err != nil {
		respondError(c, h.logger, "failed computing calendar", err)
		return
	}

	c.JSON(http.StatusOK, grid)
}
