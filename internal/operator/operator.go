package operator

import (
	"context"

	"github.com/carson-networks/fundr-dashboard/internal/operator/actions"
	"github.com/carson-networks/fundr-dashboard/internal/state"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	store *state.Store
	api   actions.MockAPI
	queue chan ActionItem
}

func NewOperator(store *state.Store, api actions.MockAPI, queue chan ActionItem) *Operator {
	return &Operator{
		store: store,
		api:   api,
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller already gave up; skip so its action leaves no trace.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx, o.store, o.api)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
