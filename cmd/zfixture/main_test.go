package main

import (
	"slices"
	"testing"
)

func TestStripVerbose(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		verbose bool
	}{
		{"none", []string{"users", "--count", "3"}, []string{"users", "--count", "3"}, false},
		{"short", []string{"-v", "users"}, []string{"users"}, true},
		{"long trailing", []string{"layovers", "--verbose"}, []string{"layovers"}, true},
		{"empty", nil, []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verbose := stripVerbose(tt.args)
			if verbose != tt.verbose {
				t.Errorf("verbose: got %v, want %v", verbose, tt.verbose)
			}
			if len(got) != len(tt.want) || (len(got) > 0 && !slices.Equal(got, tt.want)) {
				t.Errorf("args: got %v, want %v", got, tt.want)
			}
		})
	}
}
