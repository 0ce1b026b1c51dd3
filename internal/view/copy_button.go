package view

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fundr-dashboard/internal/clipboard"
)

const (
	CopyLabel   = "Copy"
	CopiedLabel = "Copied"

	DefaultCopyAckTimeout = 1500 * time.Millisecond
)

// CopyButtonOption customises a CopyButton.
type CopyButtonOption func(*CopyButton)

// WithAfterFunc replaces time.AfterFunc for the acknowledgment revert. The
// returned func stops the pending revert.
func WithAfterFunc(afterFunc func(d time.Duration, f func()) (stop func() bool)) CopyButtonOption {
	return func(b *CopyButton) {
		b.afterFunc = afterFunc
	}
}

// CopyButton copies a value to the clipboard and shows CopiedLabel for the
// acknowledgment timeout after each successful copy.
type CopyButton struct {
	clipboard clipboard.Clipboard
	timeout   time.Duration
	logger    *logrus.Logger
	afterFunc func(d time.Duration, f func()) (stop func() bool)

	mu         sync.Mutex
	copied     bool
	generation uint64
	stopRevert func() bool
}

func NewCopyButton(cb clipboard.Clipboard, timeout time.Duration, logger *logrus.Logger, opts ...CopyButtonOption) *CopyButton {
	if timeout <= 0 {
		timeout = DefaultCopyAckTimeout
	}
	b := &CopyButton{
		clipboard: cb,
		timeout:   timeout,
		logger:    logger,
		afterFunc: func(d time.Duration, f func()) func() bool {
			return time.AfterFunc(d, f).Stop
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Copy writes text to the clipboard. A failed write is logged and leaves the
// label unchanged; it is never reported to the caller as an error.
func (b *CopyButton) Copy(ctx context.Context, text string) bool {
	if err := b.clipboard.WriteText(ctx, text); err != nil {
		b.logger.WithError(err).Error("Failed to copy")
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopRevert != nil {
		b.stopRevert()
	}
	b.copied = true
	b.generation++
	generation := b.generation
	b.stopRevert = b.afterFunc(b.timeout, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		// A later copy restarted the acknowledgment.
		if b.generation == generation {
			b.copied = false
		}
	})
	return true
}

// Label is CopiedLabel during the acknowledgment window and CopyLabel otherwise.
func (b *CopyButton) Label() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.copied {
		return CopiedLabel
	}
	return CopyLabel
}
