package view

import (
	"html/template"
	"io"

	"github.com/carson-networks/fundr-dashboard/internal/service"
	"github.com/carson-networks/fundr-dashboard/internal/state"
)

// RenderDashboard writes the dashboard page for a state snapshot.
func RenderDashboard(w io.Writer, snap state.AppState, copyLabel string) error {
	props := AccountCardProps{
		Loading:   snap.Dashboard.Loading,
		CopyLabel: copyLabel,
	}
	if snap.Dashboard.Stats != nil {
		details := snap.Dashboard.Stats.AccountDetails
		props.AccountDetails = &details
	}

	card, err := renderAccountCardHTML(props)
	if err != nil {
		return err
	}

	return dashboardTemplate.Execute(w, struct {
		AccountCard      template.HTML
		Stats            *service.DashboardStats
		DashboardLoading bool
		Transactions     []service.Transaction
		Page             int
		TotalPages       int
		Total            int
	}{
		AccountCard:      card,
		Stats:            snap.Dashboard.Stats,
		DashboardLoading: snap.Dashboard.Loading,
		Transactions:     snap.Transactions.Items,
		Page:             snap.Transactions.Page,
		TotalPages:       snap.Transactions.TotalPages,
		Total:            snap.Transactions.Total,
	})
}
