package sheets

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

type recordingAppender struct {
	sheetRange string
	rows       [][]interface{}
	err        error
}

func (r *recordingAppender) AppendRows(_ context.Context, sheetRange string, rows [][]interface{}) error {
	r.sheetRange = sheetRange
	r.rows = rows
	return r.err
}

func sampleInvoice() models.WeekInvoice {
	return models.WeekInvoice{
		Label: "3 HAZIRAN - 9 HAZIRAN HAFTASI",
		Lines: []models.InvoiceLine{{
			Date:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			Title:     "Lansman",
			Type:      models.TypeVideo,
			Quantity:  2,
			UnitPrice: decimal.NewFromInt(30000),
			Amount:    decimal.NewFromInt(60000),
		}},
		TotalQuantity: 2,
		TotalAmount:   decimal.NewFromInt(60000),
	}
}

func TestInvoiceRows(t *testing.T) {
	rows := InvoiceRows(sampleInvoice())
	require.Len(t, rows, 2)
	assert.Equal(t, []interface{}{"3 HAZIRAN - 9 HAZIRAN HAFTASI", "2024-06-03", "Lansman", "Video", 2, "60000.00"}, rows[0])
	assert.Equal(t, "TOPLAM", rows[1][2])
	assert.Equal(t, "60000.00", rows[1][5])
}

func TestInvoiceExporterExport(t *testing.T) {
	appender := &recordingAppender{}
	exporter := NewInvoiceExporter(appender, "Faturalar!A:F", nil)

	require.NoError(t, exporter.Export(context.Background(), sampleInvoice()))
	assert.Equal(t, "Faturalar!A:F", appender.sheetRange)
	assert.Len(t, appender.rows, 2)

	appender.err = errors.New("quota exceeded")
	err := exporter.Export(context.Background(), sampleInvoice())
	assert.ErrorContains(t, err, "quota exceeded")
}
