// Package routes builds weighted airport graphs and answers route queries over
// them: shortest distances from an airport, shortest duration between two
// airports, the nth airport in a direction and the longest direct route.
package routes

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDirection is returned when a direction other than "left" or
	// "right" is requested.
	ErrInvalidDirection = errors.New("routes: direction must be left or right")

	// ErrInvalidSteps is returned when a directional walk is requested with a
	// non-positive number of steps.
	ErrInvalidSteps = errors.New("routes: number of steps must be at least 1")
)

// Airport is a node of the directed airport tree. Each airport links to at most
// one left and one right airport. A distance is only meaningful when the
// matching child is set, and a zero distance means that no distance is known.
type Airport struct {
	Code          string
	Left          *Airport
	Right         *Airport
	LeftDistance  float64
	RightDistance float64
}

// Child returns the airport linked in the given direction together with the
// distance to it. The returned airport is nil if there is no such link.
func (a *Airport) Child(dir Direction) (*Airport, float64) {
	if dir == Right {
		return a.Right, a.RightDistance
	}
	return a.Left, a.LeftDistance
}

func (a *Airport) String() string {
	return a.Code
}

// Direction selects one of the two links of an airport.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

// ParseDirection returns the direction named by s. Leading and trailing spaces
// and letter case are ignored.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Left, Right:
		return d, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidDirection, s)
	}
}

// NormalizeCode returns the canonical form of an airport code, which is the
// upper-cased code without surrounding spaces.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
