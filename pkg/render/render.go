// Package render turns style transitions into concrete terminal output, under
// one of two strategies: fixed ANSI escape codes, or sequences looked up in a
// terminal capability database.
package render

import "awesome-dragon.science/go/tagstyle/pkg/style"

// Renderer renders one transition between two active style states.
type Renderer interface {
	Render(t style.Transition) string
}

// Source supplies terminal capability sequences by their terminfo names,
// expanded with the given parameters. A Source that does not know a
// capability returns false; callers degrade rather than fail.
type Source interface {
	Lookup(name string, params ...int) (string, bool)
}
