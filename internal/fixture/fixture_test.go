package fixture

import "github.com/zarlcorp/zfixture/internal/airport"

// stubFaker returns fixed strings and a configurable Number.
type stubFaker struct {
	number func(min, max int) int
}

func (stubFaker) Email() string     { return "jane@example.com" }
func (stubFaker) FirstName() string { return "Jane" }

func (stubFaker) Password(_, _, _, _, _ bool, num int) string {
	b := make([]byte, num)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}

func (stubFaker) UUID() string { return "0b7e4f5e-2c1d-4a8f-9f3e-6d2b1c0a9e87" }

func (s stubFaker) Number(min, max int) int {
	if s.number != nil {
		return s.number(min, max)
	}
	return min
}

func lowest(min, _ int) int  { return min }
func highest(_, max int) int { return max }

func testTable(codes ...string) airport.Table {
	airports := make([]airport.Airport, len(codes))
	for i, c := range codes {
		airports[i] = airport.Airport{Code: c}
	}
	return airport.NewTable(airports)
}
