package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency enumerates the currencies a subscription can be billed in.
type Currency string

const (
	CurrencyTRY Currency = "TL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// BaseCurrency is the currency every financial total is reported in.
const BaseCurrency = CurrencyTRY

var conversionRates = map[Currency]decimal.Decimal{
	CurrencyTRY: decimal.NewFromInt(1),
	CurrencyUSD: decimal.NewFromInt(34),
	CurrencyEUR: decimal.NewFromInt(36),
}

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	_, ok := conversionRates[c]
	return ok
}

// ToBase converts an amount in currency c to the base currency using the fixed rate table.
func ToBase(amount decimal.Decimal, c Currency) decimal.Decimal {
	rate, ok := conversionRates[c]
	if !ok {
		return amount
	}
	return amount.Mul(rate)
}

// BillingCycle is how often a subscription is charged.
type BillingCycle string

const (
	CycleMonthly BillingCycle = "Aylık"
	CycleYearly  BillingCycle = "Yıllık"
)

// Valid reports whether b is a supported billing cycle.
func (b BillingCycle) Valid() bool {
	return b == CycleMonthly || b == CycleYearly
}

var monthsPerYear = decimal.NewFromInt(12)

// Subscription is a recurring software or service expense.
type Subscription struct {
	ID        string          `bson:"_id" json:"id"`
	Name      string          `bson:"name" json:"name"`
	Price     decimal.Decimal `bson:"price" json:"price"`
	Currency  Currency        `bson:"currency" json:"currency"`
	Cycle     BillingCycle    `bson:"cycle" json:"cycle"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
}

// Key returns the storage identifier.
// Key implements repository.Document.
func (s Subscription) Key() string { return s.ID }

// WithKey returns a copy carrying the given storage identifier.
func (s Subscription) WithKey(id string) Subscription {
	s.ID = id
	return s
}

// MonthlyCost normalises the subscription to a monthly amount in the base currency.
func (s Subscription) MonthlyCost() decimal.Decimal {
	cost := ToBase(s.Price, s.Currency)
	if s.Cycle == CycleYearly {
		cost = cost.Div(monthsPerYear)
	}
	return cost
}
