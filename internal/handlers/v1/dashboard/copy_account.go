package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fundr-dashboard/internal/logging"
	"github.com/carson-networks/fundr-dashboard/internal/state"
)

// CopyAccountResponseBody reports the copy button after the attempt.
type CopyAccountResponseBody struct {
	Copied bool   `json:"copied" doc:"Whether the clipboard write succeeded"`
	Label  string `json:"label" doc:"Current button label, Copied during the acknowledgment window"`
}

// CopyAccountOutput is the Huma output for copying the account number.
type CopyAccountOutput struct {
	Body CopyAccountResponseBody
}

type copier interface {
	Copy(ctx context.Context, text string) bool
	Label() string
}

type snapshotter interface {
	Snapshot() state.AppState
}

// CopyAccountHandler handles POST /v1/dashboard/account/copy. The button writes
// to whichever clipboard the server was configured with; the default in-memory
// clipboard acknowledges without touching the host.
type CopyAccountHandler struct {
	Button copier
	Store  snapshotter
}

func NewCopyAccountHandler(button copier, store snapshotter) *CopyAccountHandler {
	return &CopyAccountHandler{Button: button, Store: store}
}

func (h *CopyAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "copy-account-number",
		Method:      http.MethodPost,
		Path:        "/v1/dashboard/account/copy",
		Summary:     "Copy account number",
		Description: "Copies the loaded account number to the clipboard. A failed copy is logged and reported as copied=false.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *CopyAccountHandler) handle(ctx context.Context, input *struct{}) (*CopyAccountOutput, error) {
	snap := h.Store.Snapshot()
	if snap.Dashboard.Stats == nil {
		return nil, huma.NewError(http.StatusConflict, "account details not loaded")
	}

	copied := h.Button.Copy(ctx, snap.Dashboard.Stats.AccountDetails.AccountNumber)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("copied", copied)
	}

	return &CopyAccountOutput{Body: CopyAccountResponseBody{
		Copied: copied,
		Label:  h.Button.Label(),
	}}, nil
}
