package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/repository"
	"github.com/1005Studio/1005ManagmentV02/internal/service/catalog"
	"github.com/1005Studio/1005ManagmentV02/internal/service/production"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func TestFilterFromQuery(t *testing.T) {
	active := models.Period{Year: 2024, Month: 6}

	tests := []struct {
		name  string
		query string
		want  models.FilterSpec
	}{
		{
			name:  "defaults to active period",
			query: "",
			want:  models.FilterSpec{Year: 2024, Month: 6, Arrival: models.ArrivalAll},
		},
		{
			name:  "explicit values",
			query: "year=2023&month=2&search=Lansman&type=Altbant&arrival=arrived",
			want: models.FilterSpec{
				Year: 2023, Month: 2, Search: "Lansman",
				Type: models.TypeLowerThird, Arrival: models.ArrivalArrived,
			},
		},
		{
			name:  "whole year",
			query: "month=all",
			want:  models.FilterSpec{Year: 2024, Month: models.AllMonths, Arrival: models.ArrivalAll},
		},
		{
			name:  "whole year as number",
			query: "month=-1",
			want:  models.FilterSpec{Year: 2024, Month: models.AllMonths, Arrival: models.ArrivalAll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filterFromQuery(contextWithQuery(tt.query), active)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterFromQueryErrors(t *testing.T) {
	for _, query := range []string{"year=twenty", "month=0", "month=13", "type=Reels", "arrival=maybe"} {
		t.Run(query, func(t *testing.T) {
			_, err := filterFromQuery(contextWithQuery(query), models.Period{Year: 2024, Month: 6})
			assert.ErrorIs(t, err, errBadRequest)
		})
	}
}

func TestDateFromQuery(t *testing.T) {
	istanbul, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)
	now := time.Date(2024, 6, 9, 22, 0, 0, 0, time.UTC)

	got, err := dateFromQuery(contextWithQuery(""), istanbul, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)

	got, err = dateFromQuery(contextWithQuery("date=2024-01-31"), istanbul, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = dateFromQuery(contextWithQuery("date=31/01/2024"), istanbul, now)
	assert.ErrorIs(t, err, errBadRequest)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("get productions/x: %w", repository.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("create: %w", production.ErrInvalidRecord), http.StatusBadRequest},
		{catalog.ErrInvalidItem, http.StatusBadRequest},
		{catalog.ErrWholeYearPeriod, http.StatusBadRequest},
		{errBadRequestf("year %q", "x"), http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}
