package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/1005Studio/1005ManagmentV02/internal/config"
	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

// RowAppender appends rows to a spreadsheet range.
type RowAppender interface {
	AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error
}

// GoogleSheetRepository implements RowAppender with the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendRows appends the provided rows below the data in sheetRange.
func (r *GoogleSheetRepository) AppendRows(ctx context.Context, sheetRange string, rows [][]interface{}) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}
	if len(rows) == 0 {
		return nil
	}

	payload := &sheetsapi.ValueRange{Values: rows}
	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append rows into range %s: %w", sheetRange, err)
	}

	r.logger.Debug("rows appended to sheet", zap.String("range", sheetRange), zap.Int("rows", len(rows)))
	return nil
}

// InvoiceExporter writes weekly invoice breakdowns to a spreadsheet.
type InvoiceExporter struct {
	appender   RowAppender
	sheetRange string
	logger     *zap.Logger
}

// NewInvoiceExporter creates an exporter appending into sheetRange.
func NewInvoiceExporter(appender RowAppender, sheetRange string, logger *zap.Logger) *InvoiceExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceExporter{appender: appender, sheetRange: sheetRange, logger: logger}
}

// Export appends one row per invoice line followed by a total row.
func (e *InvoiceExporter) Export(ctx context.Context, invoice models.WeekInvoice) error {
	rows := InvoiceRows(invoice)
	if err := e.appender.AppendRows(ctx, e.sheetRange, rows); err != nil {
		return fmt.Errorf("export invoice %q: %w", invoice.Label, err)
	}
	e.logger.Info("invoice exported",
		zap.String("week", invoice.Label),
		zap.Int("lines", len(invoice.Lines)),
		zap.String("total", invoice.TotalAmount.String()),
	)
	return nil
}

// InvoiceRows lays an invoice out as spreadsheet rows: week, date, title, type, quantity, amount.
func InvoiceRows(invoice models.WeekInvoice) [][]interface{} {
	rows := make([][]interface{}, 0, len(invoice.Lines)+1)
	for _, line := range invoice.Lines {
		rows = append(rows, []interface{}{
			invoice.Label,
			line.Date.Format("2006-01-02"),
			line.Title,
			string(line.Type),
			line.Quantity,
			line.Amount.StringFixed(2),
		})
	}
	rows = append(rows, []interface{}{
		invoice.Label, "", "TOPLAM", "", invoice.TotalQuantity, invoice.TotalAmount.StringFixed(2),
	})
	return rows
}
