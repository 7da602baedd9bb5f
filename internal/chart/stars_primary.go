package chart

import (
	"fmt"

	"github.com/papapumpkin/tuvi/internal/canchi"
)

// tuViTable gives the Tử Vi branch by [bureau-2][lunar day-1].
var tuViTable = [5][30]canchi.Branch{
	{2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4},
	{2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5},
	{2, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5},
	{2, 3, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6},
	{2, 3, 4, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6},
}

// purpleOffsets places the rest of the Tử Vi chain relative to Tử Vi.
var purpleOffsets = []struct {
	star   Star
	offset int
}{
	{LiemTrinh, -4},
	{ThienDong, -3},
	{VuKhuc, -2},
	{ThaiDuong, -1},
	{ThienCo, 1},
}

// thienPhuMirror gives the Thiên Phủ branch for each Tử Vi branch; the two
// are reflections across the Dần–Thân axis.
var thienPhuMirror = [canchi.BranchCount]canchi.Branch{4, 3, 2, 1, 0, 11, 10, 9, 8, 7, 6, 5}

// palaceOffsets places the rest of the Thiên Phủ chain relative to Thiên Phủ.
var palaceOffsets = []struct {
	star   Star
	offset int
}{
	{ThaiAm, 1},
	{ThamLang, 2},
	{CuMon, 3},
	{ThienTuong, 4},
	{ThienLuong, 5},
	{ThatSat, 6},
	{PhaQuan, 10},
}

// TuViBranch looks up the Tử Vi branch for a bureau and lunar day.
func TuViBranch(b Bureau, day int) (canchi.Branch, error) {
	if !b.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBureau, int(b))
	}
	if day < 1 || day > 30 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLunarDay, day)
	}
	return tuViTable[b-Water2][day-1], nil
}

// PlacePurpleGroup places Tử Vi and its five companions.
func PlacePurpleGroup(b Bureau, day int) (Placement, error) {
	anchor, err := TuViBranch(b, day)
	if err != nil {
		return nil, err
	}
	p := Placement{TuVi: anchor}
	for _, o := range purpleOffsets {
		p[o.star] = anchor.Offset(o.offset)
	}
	return p, nil
}

// ThienPhuBranch mirrors the Tử Vi branch.
func ThienPhuBranch(tuVi canchi.Branch) canchi.Branch {
	return thienPhuMirror[canchi.BranchAt(tuVi.Index())]
}

// PlacePalaceGroup places Thiên Phủ and its seven companions.
func PlacePalaceGroup(tuVi canchi.Branch) Placement {
	anchor := ThienPhuBranch(tuVi)
	p := Placement{ThienPhu: anchor}
	for _, o := range palaceOffsets {
		p[o.star] = anchor.Offset(o.offset)
	}
	return p
}
