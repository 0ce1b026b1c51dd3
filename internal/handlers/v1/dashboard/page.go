package dashboard

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/carson-networks/fundr-dashboard/internal/logging"
	"github.com/carson-networks/fundr-dashboard/internal/view"
)

type labeler interface {
	Label() string
}

// PageHandler serves the HTML dashboard for the current state.
type PageHandler struct {
	Store  snapshotter
	Button labeler
}

func NewPageHandler(store snapshotter, button labeler) PageHandler {
	return PageHandler{Store: store, Button: button}
}

func (h *PageHandler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return errors.New("dashboard: method not GET")
	}

	var buf bytes.Buffer
	stopTimer := logData.AddTiming("renderMs")
	err := view.RenderDashboard(&buf, h.Store.Snapshot(), h.Button.Label())
	stopTimer()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(buf.Bytes())
	return err
}
