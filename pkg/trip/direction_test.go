package trip

import (
	"testing"

	errs "github.com/matzehuels/tripgraph/pkg/errors"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		token    string
		full     string
		reversed string
	}{
		{"NS", "south", "north"},
		{"SN", "north", "south"},
		{"EW", "west", "east"},
		{"WE", "east", "west"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			d, err := ParseDirection(tt.token)
			if err != nil {
				t.Fatalf("ParseDirection(%q): %v", tt.token, err)
			}
			if d.String() != tt.token {
				t.Errorf("String() = %q, want %q", d.String(), tt.token)
			}
			if d.FullName() != tt.full {
				t.Errorf("FullName() = %q, want %q", d.FullName(), tt.full)
			}
			if d.Reverse().FullName() != tt.reversed {
				t.Errorf("Reverse().FullName() = %q, want %q", d.Reverse().FullName(), tt.reversed)
			}
			if d.Reverse().Reverse() != d {
				t.Error("Reverse should be an involution")
			}
		})
	}
}

func TestParseDirectionInvalid(t *testing.T) {
	for _, s := range []string{"", "N", "ns", "NE", "SNS"} {
		_, err := ParseDirection(s)
		if !errs.Is(err, errs.ErrCodeInvalidMap) {
			t.Errorf("ParseDirection(%q) error = %v, want INVALID_MAP", s, err)
		}
	}
}

func TestLocationDist(t *testing.T) {
	a := Location{Name: "A", X: 0, Y: 0}
	b := Location{Name: "B", X: 3, Y: 4}
	if got := a.Dist(b); got != 5 {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got := b.Dist(a); got != 5 {
		t.Errorf("Dist should be symmetric, got %v", got)
	}
}
