package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/fundr-dashboard/internal/logging"
)

// Handler answers liveness probes. The dashboard is live once it is serving.
type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	logData.AddData("method", req.Method)
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
