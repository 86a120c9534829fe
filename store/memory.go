// Package store keeps airport records in memory and hands out consistent
// snapshots of them to route queries.
package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/albertthomas2205/flights-routes-system/routes"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrAirportNotFound is returned when an operation refers to an airport
	// that is not in the store.
	ErrAirportNotFound = errors.New("store: airport not found")

	// ErrInvalidInput is returned when the fields of an input fail validation.
	ErrInvalidInput = errors.New("store: invalid input")
)

// AirportInput describes an airport to create or replace. Linked airports are
// referred to by code; an empty code means no link.
type AirportInput struct {
	Code          string  `json:"code" validate:"required,max=10"`
	Left          string  `json:"left" validate:"omitempty,max=10"`
	Right         string  `json:"right" validate:"omitempty,max=10"`
	LeftDistance  float64 `json:"left_distance" validate:"finite,gte=0"`
	RightDistance float64 `json:"right_distance" validate:"finite,gte=0"`
}

// NextAirport describes a link to add from an existing parent airport to a
// child airport, which is created if needed.
type NextAirport struct {
	Parent    string  `json:"parent_code" validate:"required,max=10"`
	Direction string  `json:"direction" validate:"required,oneof=left right"`
	Child     string  `json:"child_code" validate:"required,max=10"`
	Distance  float64 `json:"distance" validate:"finite,gt=0"`
}

type record struct {
	code          string
	left          string
	right         string
	leftDistance  float64
	rightDistance float64
}

// Memory is an in-memory airport store safe for concurrent use. Airports are
// listed in the order in which they were first created.
type Memory struct {
	mu      sync.RWMutex
	codes   []string
	records map[string]*record

	validate *validator.Validate
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	v := validator.New()
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(err)
	}
	return &Memory{
		records:  map[string]*record{},
		validate: v,
	}
}

// isFinite rejects NaN and infinite distances, which gte alone lets through.
func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Len returns the number of airports in the store.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.codes)
}

// ListAirports returns a snapshot of all the airports of the store. The
// returned airports are linked to each other and are not shared with the
// store or with other snapshots.
func (m *Memory) ListAirports(ctx context.Context) ([]*routes.Airport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot(), nil
}

// Search returns the airports whose code contains q, ignoring letter case. An
// empty q matches all airports.
func (m *Memory) Search(ctx context.Context, q string) ([]*routes.Airport, error) {
	airports, err := m.ListAirports(ctx)
	if err != nil {
		return nil, err
	}
	q = routes.NormalizeCode(q)
	if q == "" {
		return airports, nil
	}
	matches := []*routes.Airport{}
	for _, a := range airports {
		if strings.Contains(a.Code, q) {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

// Put creates the airport described by in or replaces it if it already exists.
// Linked airports that do not exist yet are created without links.
func (m *Memory) Put(in AirportInput) error {
	in, err := m.checkInput(in)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(in)
	return nil
}

// AddNext links the parent airport to the child airport in the requested
// direction, replacing any previous link in that direction. The parent must
// exist; the child is created if it does not.
func (m *Memory) AddNext(next NextAirport) error {
	next.Parent = routes.NormalizeCode(next.Parent)
	next.Child = routes.NormalizeCode(next.Child)
	next.Direction = strings.ToLower(strings.TrimSpace(next.Direction))
	if err := m.validate.Struct(next); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	parent, ok := m.records[next.Parent]
	if !ok {
		return fmt.Errorf("%w: parent airport %q", ErrAirportNotFound, next.Parent)
	}
	m.getOrCreate(next.Child)

	if routes.Direction(next.Direction) == routes.Left {
		parent.left, parent.leftDistance = next.Child, next.Distance
	} else {
		parent.right, parent.rightDistance = next.Child, next.Distance
	}
	return nil
}

// Delete removes the airport with the given code. Links from other airports to
// the removed airport are cleared.
func (m *Memory) Delete(code string) error {
	code = routes.NormalizeCode(code)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[code]; !ok {
		return fmt.Errorf("%w: %q", ErrAirportNotFound, code)
	}
	delete(m.records, code)
	for i, c := range m.codes {
		if c == code {
			m.codes = append(m.codes[:i], m.codes[i+1:]...)
			break
		}
	}

	for _, r := range m.records {
		if r.left == code {
			r.left, r.leftDistance = "", 0
		}
		if r.right == code {
			r.right, r.rightDistance = "", 0
		}
	}
	return nil
}

// Load adds the given airports to the store, replacing existing airports with
// the same code. All the airports are validated first: if one of them is
// invalid, the store is left unchanged.
func (m *Memory) Load(airports []*routes.Airport) error {
	inputs := make([]AirportInput, 0, len(airports))
	for _, a := range airports {
		in := AirportInput{
			Code:          a.Code,
			LeftDistance:  a.LeftDistance,
			RightDistance: a.RightDistance,
		}
		if a.Left != nil {
			in.Left = a.Left.Code
		}
		if a.Right != nil {
			in.Right = a.Right.Code
		}
		in, err := m.checkInput(in)
		if err != nil {
			return fmt.Errorf("error loading airport %q: %w", a.Code, err)
		}
		inputs = append(inputs, in)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, in := range inputs {
		m.put(in)
	}
	return nil
}

// checkInput returns in with normalized codes, or an error if it is invalid.
func (m *Memory) checkInput(in AirportInput) (AirportInput, error) {
	in.Code = routes.NormalizeCode(in.Code)
	in.Left = routes.NormalizeCode(in.Left)
	in.Right = routes.NormalizeCode(in.Right)
	if err := m.validate.Struct(in); err != nil {
		return in, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return in, nil
}

// put must be called with the write lock held.
func (m *Memory) put(in AirportInput) {
	r := m.getOrCreate(in.Code)
	r.left, r.leftDistance = "", 0
	r.right, r.rightDistance = "", 0
	if in.Left != "" {
		m.getOrCreate(in.Left)
		r.left, r.leftDistance = in.Left, in.LeftDistance
	}
	if in.Right != "" {
		m.getOrCreate(in.Right)
		r.right, r.rightDistance = in.Right, in.RightDistance
	}
}

// getOrCreate must be called with the write lock held.
func (m *Memory) getOrCreate(code string) *record {
	if r, ok := m.records[code]; ok {
		return r
	}
	r := &record{code: code}
	m.records[code] = r
	m.codes = append(m.codes, code)
	return r
}

// snapshot must be called with the read lock held.
func (m *Memory) snapshot() []*routes.Airport {
	airports := make([]*routes.Airport, len(m.codes))
	byCode := make(map[string]*routes.Airport, len(m.codes))
	for i, c := range m.codes {
		airports[i] = &routes.Airport{Code: c}
		byCode[c] = airports[i]
	}
	for i, c := range m.codes {
		r := m.records[c]
		if r.left != "" {
			airports[i].Left = byCode[r.left]
			airports[i].LeftDistance = r.leftDistance
		}
		if r.right != "" {
			airports[i].Right = byCode[r.right]
			airports[i].RightDistance = r.rightDistance
		}
	}
	return airports
}
