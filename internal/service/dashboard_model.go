package service

import (
	"github.com/shopspring/decimal"
)

// RevenuePoint is one month of the revenue chart.
type RevenuePoint struct {
	Month string `json:"month"`
	Value int64  `json:"value"`
}

// RevenueSeries is the revenue chart plus the period comparison above it.
type RevenueSeries struct {
	Current    int64          `json:"current"`
	Previous   int64          `json:"previous"`
	Percentage float64        `json:"percentage"`
	Data       []RevenuePoint `json:"data"`
}

// AccountDetails is the account card content. AccountNumber is kept as a
// string so leading zeros survive.
type AccountDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	Balance       int64  `json:"balance"`
}

// DashboardStats is the payload of GetDashboardStats.
type DashboardStats struct {
	Revenue        RevenueSeries  `json:"revenue"`
	AccountDetails AccountDetails `json:"accountDetails"`
}

// PercentageChange returns (current-previous)/previous*100 rounded to two
// places, or 0 when previous is 0.
func PercentageChange(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}

	change := decimal.NewFromInt(current - previous).
		Div(decimal.NewFromInt(previous)).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	f, _ := change.Float64()
	return f
}

// FormatAmount renders minor units as a fixed two-place major-unit string.
func FormatAmount(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
