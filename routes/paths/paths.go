// Package paths provides a small value type to represent routes between
// airports as sequences of airport codes.
package paths

import (
	"strings"
)

// Path is a sequence of airport codes describing a route. The first code is
// the route's origin and the last code its destination. A path with a single
// code is a route from an airport to itself. The zero value is the empty path
// and represents the absence of a route.
type Path []string

// New returns a path visiting the given airports in order.
func New(codes ...string) Path {
	if len(codes) == 0 {
		return nil
	}
	p := make(Path, len(codes))
	copy(p, codes)
	return p
}

// Length returns the length of the path in terms of airports.
func (p Path) Length() int {
	return len(p)
}

// Hops returns the number of direct flights in the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Node returns the airport at position pos starting from 0 (the origin) and
// ending at Length()-1 (the destination).
func (p Path) Node(pos int) string {
	return p[pos]
}

// Origin returns the first airport of the path or "" if the path is empty.
func (p Path) Origin() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Destination returns the last airport of the path or "" if the path is empty.
func (p Path) Destination() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Append returns a new path made of p followed by the given airports. The
// receiver is left untouched.
func (p Path) Append(codes ...string) Path {
	np := make(Path, 0, len(p)+len(codes))
	np = append(np, p...)
	return append(np, codes...)
}

// String returns a string representation of the path as a sequence of airports
// separated by " -> ". For example: "JFK -> ORD -> SFO".
func (p Path) String() string {
	return strings.Join(p, " -> ")
}
