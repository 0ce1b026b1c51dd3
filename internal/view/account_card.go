package view

import (
	"bytes"
	"html/template"
	"io"

	"github.com/carson-networks/fundr-dashboard/internal/service"
)

// AccountCardProps mirrors what the dashboard holds for the card: nil details
// until loaded, plus the loading flag.
type AccountCardProps struct {
	AccountDetails *service.AccountDetails
	Loading        bool
	// CopyLabel defaults to CopyLabel.
	CopyLabel string
}

// RenderAccountCard writes the card. With details it shows them verbatim;
// without details it writes a skeleton while loading and nothing otherwise.
func RenderAccountCard(w io.Writer, props AccountCardProps) error {
	label := props.CopyLabel
	if label == "" {
		label = CopyLabel
	}

	return accountCardTemplate.Execute(w, struct {
		Details   *service.AccountDetails
		Loading   bool
		CopyLabel string
	}{props.AccountDetails, props.Loading, label})
}

func renderAccountCardHTML(props AccountCardProps) (template.HTML, error) {
	var buf bytes.Buffer
	if err := RenderAccountCard(&buf, props); err != nil {
		return "", err
	}
	// Produced by html/template, already escaped.
	return template.HTML(buf.String()), nil
}
