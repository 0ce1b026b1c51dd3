package service

import (
	"errors"
)

// ErrSimulatedFailure is reported when failure injection trips a call.
var ErrSimulatedFailure = errors.New("simulated network error")

// EnvelopeStatus tells callers whether Data is usable.
type EnvelopeStatus string

const (
	EnvelopeSuccess EnvelopeStatus = "success"
	EnvelopeError   EnvelopeStatus = "error"
)

// Envelope wraps every mock API result. The mock API never returns a Go error
// for data calls; callers branch on Status.
type Envelope[T any] struct {
	Status  EnvelopeStatus `json:"status"`
	Data    T              `json:"data"`
	Message string         `json:"message,omitempty"`
}

// OK reports whether the envelope carries data.
func (e Envelope[T]) OK() bool {
	return e.Status == EnvelopeSuccess
}

func success[T any](data T) Envelope[T] {
	return Envelope[T]{Status: EnvelopeSuccess, Data: data}
}

func failure[T any](err error) Envelope[T] {
	return Envelope[T]{Status: EnvelopeError, Message: err.Error()}
}
