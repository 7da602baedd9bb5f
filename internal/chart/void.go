package chart

import "github.com/papapumpkin/tuvi/internal/canchi"

// VoidRange is a pair of adjacent branches marked empty (Tuần) or cut (Triệt).
type VoidRange struct {
	First  canchi.Branch
	Second canchi.Branch
}

// Contains reports whether b is one of the two branches.
func (v VoidRange) Contains(b canchi.Branch) bool {
	return b == v.First || b == v.Second
}

// String renders the range as "Thân-Dậu".
func (v VoidRange) String() string {
	return v.First.String() + "-" + v.Second.String()
}

// trietByGroup gives the first Triệt branch per year-stem group.
var trietByGroup = [5]canchi.Branch{canchi.Than, canchi.Ngo, canchi.Thin, canchi.Dan, canchi.Ty}

// Tuan returns the two branches the year's decade of the sixty-cycle skips.
func Tuan(year canchi.Pair) VoidRange {
	// Branch of the Giáp that opens the year's ten-term run.
	start := canchi.BranchAt(year.Branch.Index() - year.Stem.Index())
	return VoidRange{First: start.Offset(10), Second: start.Offset(11)}
}

// Triet returns the two branches cut off for the year stem.
func Triet(yearStem canchi.Stem) VoidRange {
	first := trietByGroup[yearStem.Group()]
	return VoidRange{First: first, Second: first.Offset(1)}
}
