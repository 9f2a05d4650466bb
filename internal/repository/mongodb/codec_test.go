package mongodb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
)

func TestDecimalRoundTrip(t *testing.T) {
	reg := NewRegistry()
	sub := models.Subscription{
		ID:       "adobe",
		Name:     "Adobe CC",
		Price:    decimal.RequireFromString("1234.56"),
		Currency: models.CurrencyUSD,
		Cycle:    models.CycleYearly,
	}

	raw, err := bson.MarshalWithRegistry(reg, sub)
	require.NoError(t, err)

	var stored bson.M
	require.NoError(t, bson.Unmarshal(raw, &stored))
	assert.Equal(t, "1234.56", stored["price"])

	var decoded models.Subscription
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &decoded))
	assert.True(t, sub.Price.Equal(decoded.Price))
	assert.Equal(t, sub.Currency, decoded.Currency)
}

func TestDecimalDecodesNumericTypes(t *testing.T) {
	reg := NewRegistry()
	d128, err := primitive.ParseDecimal128("19.99")
	require.NoError(t, err)

	tests := []struct {
		name  string
		price any
		want  string
	}{
		{name: "int32", price: int32(50), want: "50"},
		{name: "int64", price: int64(100), want: "100"},
		{name: "double", price: 12.5, want: "12.5"},
		{name: "decimal128", price: d128, want: "19.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.D{{Key: "_id", Value: "x"}, {Key: "price", Value: tt.price}})
			require.NoError(t, err)

			var decoded models.Subscription
			require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &decoded))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(decoded.Price), decoded.Price.String())
		})
	}
}
