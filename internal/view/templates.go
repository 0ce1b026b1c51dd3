package view

import (
	"html/template"

	"github.com/carson-networks/fundr-dashboard/internal/service"
)

var funcs = template.FuncMap{
	"amount": service.FormatAmount,
}

var accountCardTemplate = template.Must(template.New("accountCard").Funcs(funcs).Parse(`
{{- if .Details -}}
<section class="account-card">
  <h3>ACCOUNT DETAILS</h3>
  <p class="bank-name">{{ .Details.BankName }}</p>
  <p class="account-number">{{ .Details.AccountNumber }}</p>
  <button type="button" class="copy" data-copy="{{ .Details.AccountNumber }}">{{ .CopyLabel }}</button>
</section>
{{- else if .Loading -}}
<section class="account-card skeleton" aria-busy="true">
  <div class="skeleton-line"></div>
  <div class="skeleton-line"></div>
  <div class="skeleton-line"></div>
</section>
{{- end -}}
`))

var dashboardTemplate = template.Must(template.New("dashboard").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Dashboard</title>
</head>
<body>
<main>
  {{ .AccountCard }}
  {{- with .Stats }}
  <section class="revenue">
    <h3>Revenue</h3>
    <p class="current">{{ amount .Revenue.Current }}</p>
    <p class="change">{{ printf "%.2f" .Revenue.Percentage }}% vs previous period</p>
    <ol class="chart">
      {{- range .Revenue.Data }}
      <li data-month="{{ .Month }}">{{ amount .Value }}</li>
      {{- end }}
    </ol>
  </section>
  {{- else }}{{ if .DashboardLoading }}
  <section class="revenue skeleton" aria-busy="true"></section>
  {{- end }}{{ end }}
  <section class="transactions">
    <table>
      <thead>
        <tr><th>Amount</th><th>Type</th><th>Date</th><th>Time</th><th>Status</th><th>Reference</th></tr>
      </thead>
      <tbody>
        {{- range .Transactions }}
        <tr data-id="{{ .ID }}">
          <td>{{ amount .Amount }}</td><td>{{ .Type }}</td><td>{{ .Date }}</td><td>{{ .Time }}</td><td class="status">{{ .Status }}</td><td>{{ .TransactionID }}</td>
        </tr>
        {{- end }}
      </tbody>
    </table>
    {{- if .TotalPages }}
    <p class="pagination">Page {{ .Page }} of {{ .TotalPages }} ({{ .Total }} transactions)</p>
    {{- end }}
  </section>
</main>
</body>
</html>
`))
