// Package airport holds the IATA reference table that layover fixtures draw
// their codes from, plus lookups over it.
package airport

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownCode is returned when a code is not in the table.
var ErrUnknownCode = errors.New("unknown airport code")

const earthRadiusKm = 6371

// Airport is one entry of the reference table.
type Airport struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Table is an ordered, read-only set of airports.
type Table struct {
	airports []Airport
	index    map[string]int
}

// NewTable builds a table from airports in the given order. Later duplicates
// of a code are dropped.
func NewTable(airports []Airport) Table {
	t := Table{index: make(map[string]int, len(airports))}
	for _, a := range airports {
		if _, dup := t.index[a.Code]; dup {
			continue
		}
		t.index[a.Code] = len(t.airports)
		t.airports = append(t.airports, a)
	}
	return t
}

// Len returns the number of airports.
func (t Table) Len() int {
	return len(t.airports)
}

// At returns the airport at position i.
func (t Table) At(i int) Airport {
	return t.airports[i]
}

// Airports returns a copy of the table's entries.
func (t Table) Airports() []Airport {
	out := make([]Airport, len(t.airports))
	copy(out, t.airports)
	return out
}

// Codes returns every code in table order.
func (t Table) Codes() []string {
	codes := make([]string, len(t.airports))
	for i, a := range t.airports {
		codes[i] = a.Code
	}
	return codes
}

// Contains reports whether code is in the table.
func (t Table) Contains(code string) bool {
	_, ok := t.index[strings.ToUpper(code)]
	return ok
}

// Lookup returns the airport with the given code.
func (t Table) Lookup(code string) (Airport, error) {
	i, ok := t.index[strings.ToUpper(code)]
	if !ok {
		return Airport{}, fmt.Errorf("lookup %q: %w", code, ErrUnknownCode)
	}
	return t.airports[i], nil
}

// Search returns up to limit airports whose name, code or city contains q,
// case-insensitively, in table order. A limit of zero or less means no limit.
func (t Table) Search(q string, limit int) []Airport {
	q = strings.ToLower(strings.TrimSpace(q))
	var out []Airport
	for _, a := range t.airports {
		if limit > 0 && len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Code), q) ||
			strings.Contains(strings.ToLower(a.City), q) {
			out = append(out, a)
		}
	}
	return out
}

// Nearest returns up to limit airports ordered by great-circle distance from
// the given point.
func (t Table) Nearest(lat, lon float64, limit int) []Airport {
	out := t.Airports()
	origin := Airport{Lat: lat, Lon: lon}
	sort.SliceStable(out, func(i, j int) bool {
		return Distance(origin, out[i]) < Distance(origin, out[j])
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Distance returns the haversine distance between two airports in km.
func Distance(a, b Airport) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// rawAirport mirrors the public airports.json dataset, which carries
// coordinates as strings.
type rawAirport struct {
	Code    string `json:"code"`
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Parse decodes an airports.json document. Entries whose code is not three
// letters are skipped; codes are upper-cased.
func Parse(data []byte) (Table, error) {
	var raw []rawAirport
	if err := json.Unmarshal(data, &raw); err != nil {
		return Table{}, fmt.Errorf("parse airports: %w", err)
	}

	airports := make([]Airport, 0, len(raw))
	for _, r := range raw {
		code := strings.ToUpper(strings.TrimSpace(r.Code))
		if !validCode(code) {
			continue
		}
		// unparseable coordinates are kept as zero
		lat, _ := strconv.ParseFloat(r.Lat, 64)
		lon, _ := strconv.ParseFloat(r.Lon, 64)
		airports = append(airports, Airport{
			Code:    code,
			Name:    r.Name,
			City:    r.City,
			State:   r.State,
			Country: r.Country,
			Lat:     lat,
			Lon:     lon,
		})
	}

	return NewTable(airports), nil
}

func validCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := range len(code) {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
