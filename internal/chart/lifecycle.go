package chart

import (
	"fmt"

	"github.com/papapumpkin/tuvi/internal/canchi"
)

// Stage is one of the twelve life-cycle stages (vòng Trường Sinh).
type Stage int

// StageCount is the number of life-cycle stages.
const StageCount = 12

// stageStars lists the stage stars in walking order.
var stageStars = [StageCount]Star{
	TruongSinh, MocDuc, QuanDoi, LamQuan, DeVuong, Suy,
	Benh, Tu, Mo, Tuyet, Thai, Duong,
}

// lifeCycleStart is where Trường Sinh sits for each bureau element.
var lifeCycleStart = map[canchi.Element]canchi.Branch{
	canchi.Water: canchi.Than,
	canchi.Wood:  canchi.Hoi,
	canchi.Metal: canchi.Ti,
	canchi.Fire:  canchi.Dan,
	canchi.Earth: canchi.Than,
}

// Star returns the star that marks the stage.
func (s Stage) Star() Star {
	return stageStars[canchi.BranchAt(int(s))]
}

// String returns the Vietnamese stage name.
func (s Stage) String() string { return s.Star().String() }

// LifeCycleStart returns the branch of Trường Sinh for an element.
func LifeCycleStart(e canchi.Element) (canchi.Branch, error) {
	b, ok := lifeCycleStart[e]
	if !ok {
		return 0, fmt.Errorf("%w: %d", canchi.ErrUnknownElement, int(e))
	}
	return b, nil
}

// PlaceLifeCycle walks the twelve stages from the element's start branch in
// the given direction. It returns the stage of every branch along with the
// stage stars' placement.
func PlaceLifeCycle(e canchi.Element, dir Direction) ([canchi.BranchCount]Stage, Placement, error) {
	var stages [canchi.BranchCount]Stage
	start, err := LifeCycleStart(e)
	if err != nil {
		return stages, nil, err
	}
	p := Placement{}
	for i := 0; i < StageCount; i++ {
		b := start.Offset(i * dir.Step())
		stages[b] = Stage(i)
		p[stageStars[i]] = b
	}
	return stages, p, nil
}
