package dashboard

import (
	"github.com/carson-networks/fundr-dashboard/internal/service"
)

// RevenuePoint is one month of the revenue chart.
type RevenuePoint struct {
	Month string `json:"month" doc:"Short month name"`
	Value int64  `json:"value" doc:"Revenue for the month in minor units"`
}

// Revenue is the API response model for the revenue series.
type Revenue struct {
	Current    int64          `json:"current" doc:"Revenue for the last six months in minor units"`
	Previous   int64          `json:"previous" doc:"Revenue for the six months before that in minor units"`
	Percentage float64        `json:"percentage" doc:"Change from previous to current in percent, 0 when previous is 0"`
	Data       []RevenuePoint `json:"data" doc:"Monthly points, oldest first"`
}

// AccountDetails is the API response model for the account card.
type AccountDetails struct {
	BankName      string `json:"bankName" doc:"Bank name"`
	AccountNumber string `json:"accountNumber" doc:"Account number, always a string"`
	Balance       int64  `json:"balance" doc:"Balance in minor units"`
	BalanceText   string `json:"balanceText" doc:"Balance in major units with two decimals"`
}

// Stats is the data of the dashboard stats envelope.
type Stats struct {
	Revenue        Revenue        `json:"revenue"`
	AccountDetails AccountDetails `json:"accountDetails"`
}

func statsFromService(stats service.DashboardStats) *Stats {
	points := make([]RevenuePoint, len(stats.Revenue.Data))
	for i, p := range stats.Revenue.Data {
		points[i] = RevenuePoint{Month: p.Month, Value: p.Value}
	}

	return &Stats{
		Revenue: Revenue{
			Current:    stats.Revenue.Current,
			Previous:   stats.Revenue.Previous,
			Percentage: stats.Revenue.Percentage,
			Data:       points,
		},
		AccountDetails: AccountDetails{
			BankName:      stats.AccountDetails.BankName,
			AccountNumber: stats.AccountDetails.AccountNumber,
			Balance:       stats.AccountDetails.Balance,
			BalanceText:   service.FormatAmount(stats.AccountDetails.Balance),
		},
	}
}
