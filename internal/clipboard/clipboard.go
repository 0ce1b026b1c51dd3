package clipboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard receives text copied from the dashboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// New returns the clipboard named by kind: "memory" or "system".
func New(kind string) (Clipboard, error) {
	switch kind {
	case "memory":
		return NewMemory(), nil
	case "system":
		return System{}, nil
	default:
		return nil, fmt.Errorf("clipboard: unknown kind %q", kind)
	}
}

// System writes to the host clipboard.
type System struct{}

func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return clipboard.WriteAll(text)
}

// Memory keeps the last written value. Setting Err makes every write fail.
type Memory struct {
	mu     sync.Mutex
	last   string
	writes int
	Err    error
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.last = text
	m.writes++
	return nil
}

// Text returns the last successfully written value.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Writes counts successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Fail sets the error returned by subsequent writes; nil restores them.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}
