package fixture

import (
	"iter"
	"time"

	"github.com/zarlcorp/zfixture/internal/airport"
)

// StayDays is the fixed calendar length of every layover.
const StayDays = 5

// departure offsets from now, in minutes
const (
	minDepartOffset = 1
	maxDepartOffset = 180 * 24 * 60
)

// LayoverGenerator produces Layover fixtures.
type LayoverGenerator struct {
	faker Faker
	now   func() time.Time
}

// LayoverOption configures a LayoverGenerator.
type LayoverOption func(*LayoverGenerator)

// WithClock replaces time.Now as the reference for departure times.
func WithClock(now func() time.Time) LayoverOption {
	return func(g *LayoverGenerator) {
		g.now = now
	}
}

// NewLayoverGenerator creates a generator drawing from f.
func NewLayoverGenerator(f Faker, opts ...LayoverOption) *LayoverGenerator {
	g := &LayoverGenerator{faker: f, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// One produces a single layover at an airport drawn from table.
func (g *LayoverGenerator) One(table airport.Table) (Layover, error) {
	if err := checkTable(table); err != nil {
		return Layover{}, err
	}
	return g.build(table), nil
}

// Generate yields count layovers drawn from table. The table is checked
// before the sequence is returned, so an empty table fails without
// producing anything.
func (g *LayoverGenerator) Generate(count int, table airport.Table) (iter.Seq[Layover], error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	return func(yield func(Layover) bool) {
		for range max(count, 0) {
			if !yield(g.build(table)) {
				return
			}
		}
	}, nil
}

func (g *LayoverGenerator) build(table airport.Table) Layover {
	depart := g.depart()
	return Layover{
		IATACode: table.At(g.faker.Number(0, table.Len()-1)).Code,
		Depart:   depart,
		Arrive:   ArriveAfter(depart),
	}
}

// depart returns a whole-second UTC instant strictly after now.
func (g *LayoverGenerator) depart() time.Time {
	offset := time.Duration(g.faker.Number(minDepartOffset, maxDepartOffset)) * time.Minute
	return g.now().UTC().Add(offset).Truncate(time.Second)
}

// ArriveAfter returns the arrival for a stay departing at depart.
// Calendar arithmetic in UTC keeps the elapsed time at exactly StayDays*24h.
func ArriveAfter(depart time.Time) time.Time {
	return depart.UTC().AddDate(0, 0, StayDays)
}

func checkTable(table airport.Table) error {
	if table.Len() == 0 {
		return &ConfigurationError{Reason: "airport table is empty"}
	}
	return nil
}
