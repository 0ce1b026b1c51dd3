package appstate

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fundr-dashboard/internal/logging"
	"github.com/carson-networks/fundr-dashboard/internal/operator"
	"github.com/carson-networks/fundr-dashboard/internal/operator/actions"
	"github.com/carson-networks/fundr-dashboard/internal/state"
)

// StateOutput is the Huma output of every state endpoint: the snapshot after
// the request was handled.
type StateOutput struct {
	Body state.AppState
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
	Store() *state.Store
}

// process runs action on the operator queue and returns the resulting snapshot.
// Envelope errors end up in the snapshot; only queue failures become HTTP errors.
func process(ctx context.Context, op actionProcessor, name string, action actions.IAction) (*StateOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		logData.AddData("action", name)
		stopTimer = logData.AddTiming("processActionMs")
	}
	err := op.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}

	if err != nil {
		if errors.Is(err, operator.ErrStopped) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, huma.NewError(http.StatusServiceUnavailable, "action not processed", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "action failed", err)
	}

	return &StateOutput{Body: op.Store().Snapshot()}, nil
}
