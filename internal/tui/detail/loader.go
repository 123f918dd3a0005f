package detail

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Status is the lifecycle of one Loader.
type Status int

const (
	// StatusIdle means nothing has been requested, or the loader was closed.
	StatusIdle Status = iota
	// StatusLoading means a fetch is in flight.
	StatusLoading
	// StatusLoaded means the last fetch succeeded.
	StatusLoaded
	// StatusFailed means the last fetch returned an error.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchFunc performs one fetch bound to ctx.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// ResultMsg carries the outcome of a fetch back into Update.
type ResultMsg[T any] struct {
	owner *Loader[T]
	id    uint64
	Value T
	Err   error
}

// Loader runs one cancellable fetch at a time and accepts only the result of
// the latest one.
type Loader[T any] struct {
	status Status
	id     uint64
	cancel context.CancelFunc
	value  T
	err    error
}

// Start cancels any fetch in flight and returns a command running fetch
// under a child of parent.
func (l *Loader[T]) Start(parent context.Context, fetch FetchFunc[T]) tea.Cmd {
	l.release()

	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	l.id++
	l.status = StatusLoading
	l.err = nil

	id := l.id
	return func() tea.Msg {
		v, err := fetch(ctx)
		return ResultMsg[T]{owner: l, id: id, Value: v, Err: err}
	}
}

// Handle applies msg if it answers this loader's fetch in flight and
// reports whether it did.
func (l *Loader[T]) Handle(msg ResultMsg[T]) bool {
	if l.status != StatusLoading || msg.owner != l || msg.id != l.id {
		return false
	}
	l.release()

	if msg.Err != nil {
		l.status = StatusFailed
		l.err = msg.Err
		return true
	}
	l.status = StatusLoaded
	l.value = msg.Value
	return true
}

// Close cancels the fetch in flight. Its result will be ignored.
func (l *Loader[T]) Close() {
	if l.status == StatusLoading {
		l.status = StatusIdle
	}
	l.release()
}

// Status returns the current lifecycle state.
func (l *Loader[T]) Status() Status {
	return l.status
}

// Value returns the last loaded value.
func (l *Loader[T]) Value() T {
	return l.value
}

// Err returns the error of the last failed fetch.
func (l *Loader[T]) Err() error {
	return l.err
}

func (l *Loader[T]) release() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
