// Package listview provides a windowed list for Bubble Tea views.
//
// Only the rows inside the viewport are rendered, so the list stays cheap to
// redraw as pages accumulate. The list supports keyboard navigation
// (up/down, j/k, pgup/pgdn, home/end), replacing its items while keeping the
// selection, and reports when the cursor sits on the last row so callers can
// offer to load more.
package listview
