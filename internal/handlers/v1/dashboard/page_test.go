package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fundr-dashboard/internal/logging"
	"github.com/carson-networks/fundr-dashboard/internal/state"
	"github.com/carson-networks/fundr-dashboard/internal/view"
)

type fixedLabel string

func (l fixedLabel) Label() string { return string(l) }

func newLogData() *logging.LogData {
	logger, _ := test.NewNullLogger()
	return logging.NewLogData(logger)
}

func TestPageHandler_RendersState(t *testing.T) {
	store := state.NewStore()
	stats := sampleStats()
	store.Update(func(s *state.AppState) {
		s.Dashboard.Stats = &stats
	})
	h := NewPageHandler(store, fixedLabel(view.CopiedLabel))

	w := httptest.NewRecorder()
	err := h.Handler(w, httptest.NewRequest(http.MethodGet, "/", nil), newLogData())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "STERLING BANK")
	assert.Contains(t, w.Body.String(), ">Copied<")
}

func TestPageHandler_BadMethod(t *testing.T) {
	h := NewPageHandler(state.NewStore(), fixedLabel(view.CopyLabel))

	w := httptest.NewRecorder()
	err := h.Handler(w, httptest.NewRequest(http.MethodPost, "/", nil), newLogData())

	assert.Error(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
