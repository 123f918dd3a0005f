// Package detail implements the single-record view of the browser.
//
// The record is fetched when the view is created. While the fetch runs the
// view shows a spinner; a failure is logged and rendered as "Pokémon not
// found". There is no retry: navigating back and opening the record again
// starts a fresh fetch. Tearing the view down cancels whatever it still has
// in flight, and results addressed to an earlier fetch are dropped.
package detail
