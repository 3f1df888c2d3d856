package companion

import (
	"fmt"
	"strings"
)

// DefaultWindowSize is the number of turn pairs kept as short-term
// conversational context.
const DefaultWindowSize = 4

// Turn is one user input paired with the assistant response it produced.
type Turn struct {
	UserInput string
	Response  string
}

// Window is a bounded FIFO of the most recent turns. It lives for the
// session only and is mutated exclusively by the Companion after each
// completed turn; it is not safe for concurrent use.
type Window struct {
	turns []Turn
	size  int
}

// NewWindow creates a window holding at most size turn pairs.
func NewWindow(size int) *Window {
	if size <= 0 {
		size = DefaultWindowSize
	}
	return &Window{size: size}
}

// Append adds a completed turn, evicting the oldest beyond capacity.
func (w *Window) Append(t Turn) {
	w.turns = append(w.turns, t)
	if len(w.turns) > w.size {
		w.turns = w.turns[1:]
	}
}

// Turns returns a copy of the buffered turns, oldest first.
func (w *Window) Turns() []Turn {
	out := make([]Turn, len(w.turns))
	copy(out, w.turns)
	return out
}

// Len returns the number of buffered turns.
func (w *Window) Len() int {
	return len(w.turns)
}

// Format serializes the window for the persona template's chat history
// slot, one speaker-prefixed line per message.
func (w *Window) Format(userName string) string {
	var b strings.Builder
	for _, t := range w.turns {
		fmt.Fprintf(&b, "%s: %s\n%s: %s\n", userName, t.UserInput, assistantName, t.Response)
	}
	return strings.TrimRight(b.String(), "\n")
}
