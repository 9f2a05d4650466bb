package commands

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

type stubReporting struct {
	filter    models.FilterSpec
	weekDate  time.Time
	dashboard *models.Dashboard
}

func (s *stubReporting) Dashboard(_ context.Context, filter models.FilterSpec) (*models.Dashboard, error) {
	s.filter = filter
	return s.dashboard, nil
}

func (s *stubReporting) Week(_ context.Context, date time.Time) (models.WeeklyGroup, error) {
	s.weekDate = date
	return models.WeeklyGroup{
		Label: "3 HAZIRAN - 9 HAZIRAN HAFTASI",
		Items: []models.ProductionRecord{{
			Date: date, Title: "Lansman", Quantity: 1, Type: models.TypeVideo, Status: models.StatusPlanned,
		}},
		Summary: "1 Video",
	}, nil
}

func (s *stubReporting) WeekMissing(_ context.Context, date time.Time) (models.MissingProducts, error) {
	s.weekDate = date
	return models.MissingProducts{Label: "3 HAZIRAN - 9 HAZIRAN HAFTASI"}, nil
}

type fixedPeriod models.Period

func (p fixedPeriod) ActivePeriod(context.Context) (models.Period, error) {
	return models.Period(p), nil
}

func newDispatcher() (*Service, *stubReporting) {
	rep := &stubReporting{dashboard: &models.Dashboard{
		Stats: models.Stats{PendingInvoiceCount: 2, TypeCounts: map[models.VideoType]int{}},
		Totals: models.Totals{
			TotalInvoiceAmount:      decimal.NewFromInt(60000),
			MonthlySubscriptionCost: decimal.Zero,
			NetProfit:               decimal.NewFromInt(60000),
		},
	}}
	svc := NewService(rep, fixedPeriod{Year: 2024, Month: 6}, time.UTC, nil)
	svc.now = func() time.Time { return time.Date(2024, 6, 5, 18, 45, 0, 0, time.UTC) }
	return svc, rep
}

func TestHandleReport(t *testing.T) {
	svc, rep := newDispatcher()

	reply, err := svc.HandleCommand(context.Background(), models.ParseCommand("rapor"), "905551112233")
	require.NoError(t, err)

	assert.Equal(t, models.FilterSpec{Year: 2024, Month: 6, Arrival: models.ArrivalAll}, rep.filter)
	assert.Contains(t, reply.Message, "*HAZIRAN 2024*")
	assert.Contains(t, reply.Message, "Fatura bekleyen: 2")
}

func TestHandleWeekDefaultsToToday(t *testing.T) {
	svc, rep := newDispatcher()

	reply, err := svc.HandleCommand(context.Background(), models.ParseCommand("/week"), "x")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), rep.weekDate)
	assert.Contains(t, reply.Message, "Lansman")
}

func TestHandleMissingWithDate(t *testing.T) {
	svc, rep := newDispatcher()

	reply, err := svc.HandleCommand(context.Background(), models.ParseCommand("eksik 2024-06-04"), "x")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), rep.weekDate)
	assert.Contains(t, reply.Message, "Eksik ürün yok")

	_, err = svc.HandleCommand(context.Background(), models.ParseCommand("eksik dün"), "x")
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestHandleInvoice(t *testing.T) {
	svc, _ := newDispatcher()

	reply, err := svc.HandleCommand(context.Background(), models.ParseCommand("FATURA"), "x")
	require.NoError(t, err)
	assert.Equal(t, "Fatura durumu: Haziran 2024", reply.Title)
	assert.Contains(t, reply.Message, "Fatura bekleyen: 2")
}

func TestHandleUnknownAndHelp(t *testing.T) {
	svc, _ := newDispatcher()

	_, err := svc.HandleCommand(context.Background(), models.ParseCommand("eggs 12"), "x")
	assert.ErrorIs(t, err, ErrUnsupportedCommand)

	reply, err := svc.HandleCommand(context.Background(), models.ParseCommand("yardım"), "x")
	require.NoError(t, err)
	assert.Contains(t, reply.Message, "rapor")
}
