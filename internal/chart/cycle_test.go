package chart

import (
	"testing"

	"github.com/papapumpkin/tuvi/internal/canchi"
)

func TestDecadesForward(t *testing.T) {
	t.Parallel()

	l, err := Arrange(2, canchi.Thin, canchi.At, Female)
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	ds := Decades(Earth5, Forward, l)
	if len(ds) != RoleCount {
		t.Fatalf("len = %d, want %d", len(ds), RoleCount)
	}
	for i, d := range ds {
		if d.Role != Role(i) {
			t.Errorf("decade %d role = %s, want %s", i, d.Role, Role(i))
		}
		if d.StartAge != 5+10*i || d.EndAge != d.StartAge+9 {
			t.Errorf("decade %d ages = %d-%d", i, d.StartAge, d.EndAge)
		}
		if d.Branch != l.Slots[d.Role].Branch {
			t.Errorf("decade %d branch = %s, want %s", i, d.Branch, l.Slots[d.Role].Branch)
		}
	}
}

func TestDecadesBackward(t *testing.T) {
	t.Parallel()

	l, err := Arrange(2, canchi.Thin, canchi.At, Male)
	if err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	ds := Decades(Water2, Backward, l)
	want := []Role{Self, Parents, Fortune, Property}
	for i, r := range want {
		if ds[i].Role != r {
			t.Errorf("decade %d role = %s, want %s", i, ds[i].Role, r)
		}
	}
	if ds[0].Label != "2" || ds[11].StartAge != 112 {
		t.Errorf("labels: first %q, last start %d", ds[0].Label, ds[11].StartAge)
	}
}

func TestDecadeIndexForAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		age    int
		bureau Bureau
		want   int
	}{
		{0, Earth5, 0},
		{4, Earth5, 0},
		{5, Earth5, 0},
		{14, Earth5, 0},
		{15, Earth5, 1},
		{40, Water2, 3},
		{500, Fire6, 11},
	}
	for _, tt := range tests {
		if got := DecadeIndexForAge(tt.age, tt.bureau); got != tt.want {
			t.Errorf("DecadeIndexForAge(%d, %d) = %d, want %d", tt.age, tt.bureau, got, tt.want)
		}
	}
}

func TestMinorCycleBranch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		age  int
		dir  Direction
		want canchi.Branch
	}{
		{1, Forward, canchi.Thin},
		{3, Forward, canchi.Ngo},
		{3, Backward, canchi.Dan},
		{13, Forward, canchi.Thin},
		{6, Backward, canchi.Hoi},
	}
	for _, tt := range tests {
		if got := MinorCycleBranch(tt.age, tt.dir, canchi.Thin); got != tt.want {
			t.Errorf("MinorCycleBranch(%d, %s, Thìn) = %s, want %s", tt.age, tt.dir, got, tt.want)
		}
	}
}

func TestAnnualBranch(t *testing.T) {
	t.Parallel()

	if got := AnnualBranch(2025, 1995, canchi.Hoi); got != canchi.Ti {
		t.Errorf("AnnualBranch(2025, 1995, Hợi) = %s, want Tỵ", got)
	}
	if got := AnnualBranch(1995, 1995, canchi.Hoi); got != canchi.Hoi {
		t.Errorf("AnnualBranch(1995, 1995, Hợi) = %s, want Hợi", got)
	}
	if got := AnnualBranch(1990, 1995, canchi.Hoi); got != canchi.Ngo {
		t.Errorf("AnnualBranch(1990, 1995, Hợi) = %s, want Ngọ", got)
	}
}
