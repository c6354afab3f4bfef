// Package typestate demonstrates compile-time protocol enforcement with a
// phantom type parameter: a file-like handle whose open/closed distinction
// lives in the type, so reading a closed handle or closing one twice is a
// compile error rather than a runtime check.
//
// The state marker never appears in the struct body — it only pins the
// type. Operations are free functions accepting the exact instantiation
// they are legal on:
//
//	h := typestate.Open("notes", lines)      // Handle[Opened]
//	h, line := typestate.ReadLine(h)         // only Handle[Opened]
//	closed := typestate.Close(h)             // Handle[Closed]
//	typestate.ReadLine(closed)               // does not compile
//
// Handles are immutable values: ReadLine returns the advanced handle
// instead of mutating the receiver, matching the rest of this repository.
package typestate

import "github.com/k70suK3-k06a7ash1/monadic-go/maybe"

// Opened and Closed are the phantom state markers.
type Opened struct{}

type Closed struct{}

// HandleState restricts the phantom parameter to the two protocol states.
type HandleState interface {
	Opened | Closed
}

// Handle is a read-only view over in-memory lines, tagged with its protocol
// state S.
type Handle[S HandleState] struct {
	name  string
	lines []string
	pos   int
}

// Open creates a handle in the Opened state positioned at the first line.
func Open(name string, lines []string) Handle[Opened] {
	return Handle[Opened]{name: name, lines: lines}
}

// ReadLine yields the current line and the handle advanced past it. An
// exhausted handle yields None and advances nothing.
func ReadLine(h Handle[Opened]) (Handle[Opened], maybe.Maybe[string]) {
	if h.pos >= len(h.lines) {
		return h, maybe.NoneOf[string]()
	}
	line := h.lines[h.pos]
	h.pos++
	return h, maybe.JustOf(line)
}

// ReadAll drains the handle, returning every remaining line and the
// exhausted handle.
func ReadAll(h Handle[Opened]) (Handle[Opened], []string) {
	var lines []string
	for {
		next, line := ReadLine(h)
		v, ok := line.Get()
		if !ok {
			return next, lines
		}
		h = next
		lines = append(lines, v)
	}
}

// Close transitions the handle to the Closed state. The Opened value passed
// in is dead after this call as far as the protocol is concerned; only the
// returned Handle[Closed] remains.
func Close(h Handle[Opened]) Handle[Closed] {
	return Handle[Closed]{name: h.name, lines: h.lines, pos: h.pos}
}

// Reopen transitions a closed handle back to Opened, rewound to the start.
func Reopen(h Handle[Closed]) Handle[Opened] {
	return Handle[Opened]{name: h.name, lines: h.lines}
}

// Name is state-independent metadata, available in either protocol state.
func (h Handle[S]) Name() string {
	return h.name
}
