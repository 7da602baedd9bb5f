package chart

import (
	"strconv"

	"github.com/papapumpkin/tuvi/internal/canchi"
)

// Decade is one ten-year period (Đại Vận) and the palace that governs it.
type Decade struct {
	Index    int
	Role     Role
	Branch   canchi.Branch
	StartAge int
	EndAge   int
	Label    string
}

// Decades lays the twelve periods out from the Self palace. The first starts
// at the bureau's age; each later one moves a palace in the chart direction.
func Decades(b Bureau, dir Direction, l Layout) []Decade {
	start := b.Value()
	out := make([]Decade, RoleCount)
	for i := range out {
		role := Role(canchi.BranchAt(i * dir.Step()).Index())
		age := start + 10*i
		out[i] = Decade{
			Index:    i,
			Role:     role,
			Branch:   l.Slots[role].Branch,
			StartAge: age,
			EndAge:   age + 9,
			Label:    strconv.Itoa(age),
		}
	}
	return out
}

// DecadeIndexForAge returns which decade governs the given age. Ages before
// the first decade map to 0 and ages past the last to 11.
func DecadeIndexForAge(age int, b Bureau) int {
	start := b.Value()
	if age < start {
		return 0
	}
	return min((age-start)/10, RoleCount-1)
}

// MinorCycleBranch returns the Tiểu Vận branch for an age (1 at birth),
// counted from the hour branch in the chart direction.
func MinorCycleBranch(age int, dir Direction, hour canchi.Branch) canchi.Branch {
	return hour.Offset((age - 1) * dir.Step())
}

// AnnualBranch returns the Lưu Niên branch of a calendar year: the year
// branch counted forward from the birth year.
func AnnualBranch(year, birthYear int, yearBranch canchi.Branch) canchi.Branch {
	return yearBranch.Offset(year - birthYear)
}
