package pagination

import "errors"

// Window validation errors.
var (
	ErrInvalidLimit  = errors.New("limit must be >= 0")
	ErrInvalidOffset = errors.New("offset must be non-negative")
)

// Window selects Limit rows starting at Offset. A zero Limit means no limit.
type Window struct {
	Limit  int
	Offset int
}

// Validate checks the window bounds.
func (w Window) Validate() error {
	if w.Limit < 0 {
		return ErrInvalidLimit
	}
	if w.Offset < 0 {
		return ErrInvalidOffset
	}
	return nil
}

// Apply returns the part of items inside the window.
func Apply[T any](items []T, w Window) []T {
	if w.Offset >= len(items) {
		return items[:0]
	}
	items = items[w.Offset:]
	if w.Limit > 0 && w.Limit < len(items) {
		items = items[:w.Limit]
	}
	return items
}
