package airport

import (
	"errors"
	"math"
	"testing"
)

func testTable() Table {
	return NewTable([]Airport{
		{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States", Lat: 33.9425, Lon: -118.4081},
		{Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "United States", Lat: 37.6190, Lon: -122.3749},
		{Code: "JFK", Name: "John F Kennedy International Airport", City: "New York", Country: "United States", Lat: 40.6398, Lon: -73.7789},
		{Code: "LHR", Name: "London Heathrow Airport", City: "London", Country: "United Kingdom", Lat: 51.4700, Lon: -0.4543},
	})
}

func TestNewTableDropsDuplicates(t *testing.T) {
	tbl := NewTable([]Airport{{Code: "LAX"}, {Code: "SFO"}, {Code: "LAX", Name: "second"}})
	if tbl.Len() != 2 {
		t.Fatalf("len: got %d, want 2", tbl.Len())
	}
	if got := tbl.At(0).Name; got != "" {
		t.Errorf("first LAX should win, got name %q", got)
	}
}

func TestCodes(t *testing.T) {
	got := testTable().Codes()
	want := []string{"LAX", "SFO", "JFK", "LHR"}
	if len(got) != len(want) {
		t.Fatalf("codes: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("codes[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    string
		wantErr bool
	}{
		{"exact", "JFK", "New York", false},
		{"lowercase", "lhr", "London", false},
		{"unknown", "XXX", "", true},
		{"empty", "", "", true},
	}

	tbl := testTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tbl.Lookup(tt.code)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCode) {
					t.Fatalf("expected ErrUnknownCode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			if a.City != tt.want {
				t.Errorf("city: got %q, want %q", a.City, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	tbl := testTable()
	if !tbl.Contains("sfo") {
		t.Error("table should contain sfo")
	}
	if tbl.Contains("ORD") {
		t.Error("table should not contain ORD")
	}

	var empty Table
	if empty.Contains("LAX") {
		t.Error("zero table should contain nothing")
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		q     string
		limit int
		want  []string
	}{
		{"by city", "san francisco", 0, []string{"SFO"}},
		{"by code", "jfk", 0, []string{"JFK"}},
		{"by name fragment", "international", 0, []string{"LAX", "SFO", "JFK"}},
		{"limit", "international", 2, []string{"LAX", "SFO"}},
		{"no match", "zzz", 0, nil},
	}

	tbl := testTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tbl.Search(tt.q, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("results: got %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i, a := range got {
				if a.Code != tt.want[i] {
					t.Errorf("result[%d]: got %s, want %s", i, a.Code, tt.want[i])
				}
			}
		})
	}
}

func TestNearest(t *testing.T) {
	tbl := testTable()

	// downtown San Jose
	got := tbl.Nearest(37.3382, -121.8863, 2)
	if len(got) != 2 {
		t.Fatalf("results: got %d, want 2", len(got))
	}
	if got[0].Code != "SFO" || got[1].Code != "LAX" {
		t.Errorf("order: got %s, %s; want SFO, LAX", got[0].Code, got[1].Code)
	}

	all := tbl.Nearest(51.5, -0.1, 0)
	if len(all) != tbl.Len() {
		t.Errorf("unlimited: got %d, want %d", len(all), tbl.Len())
	}
	if all[0].Code != "LHR" {
		t.Errorf("closest to London: got %s", all[0].Code)
	}
}

func TestDistance(t *testing.T) {
	tbl := testTable()
	lax, _ := tbl.Lookup("LAX")
	jfk, _ := tbl.Lookup("JFK")

	d := Distance(lax, jfk)
	// published great-circle distance is about 3983 km
	if math.Abs(d-3983) > 25 {
		t.Errorf("LAX-JFK: got %.0f km, want ~3983", d)
	}

	if Distance(lax, lax) != 0 {
		t.Error("distance to self should be zero")
	}
}

func TestParse(t *testing.T) {
	data := []byte(`[
		{"code":"lax","lat":"33.9425","lon":"-118.4081","name":"Los Angeles International Airport","city":"Los Angeles","state":"California","country":"United States","woeid":"12520706","direct_flights":"200"},
		{"code":"","lat":"0","lon":"0","name":"no code","city":"","country":""},
		{"code":"E46","lat":"0","lon":"0","name":"digit code","city":"","country":""},
		{"code":"ABCD","lat":"0","lon":"0","name":"four letters","city":"","country":""},
		{"code":"SFO","lat":"bad","lon":"-122.3749","name":"San Francisco International Airport","city":"San Francisco","country":"United States"}
	]`)

	tbl, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if tbl.Len() != 2 {
		t.Fatalf("len: got %d, want 2 (%v)", tbl.Len(), tbl.Codes())
	}

	lax := tbl.At(0)
	if lax.Code != "LAX" {
		t.Errorf("code should be upper-cased, got %q", lax.Code)
	}
	if lax.Lat != 33.9425 || lax.Lon != -118.4081 {
		t.Errorf("coords: got %v,%v", lax.Lat, lax.Lon)
	}
	if lax.State != "California" {
		t.Errorf("state: got %q", lax.State)
	}

	if sfo := tbl.At(1); sfo.Lat != 0 {
		t.Errorf("unparseable lat should be zero, got %v", sfo.Lat)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Error("expected error for invalid json")
	}
}

func TestDefault(t *testing.T) {
	tbl, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if tbl.Len() < 50 {
		t.Errorf("bundled table too small: %d", tbl.Len())
	}
	for _, code := range tbl.Codes() {
		if !validCode(code) {
			t.Errorf("bundled code %q is not three letters", code)
		}
	}
	if _, err := tbl.Lookup("LAX"); err != nil {
		t.Errorf("bundled table should include LAX: %v", err)
	}
}
