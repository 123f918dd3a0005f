// Package pagination provides the output shaping shared by list-style
// commands: sorting by a named field and cutting an offset/limit window out
// of the result.
package pagination
