package chart

import (
	"fmt"

	"github.com/papapumpkin/tuvi/internal/canchi"
)

// Lookup tables for the auxiliary stars, indexed by year stem or hour branch.
var (
	locTonByStem    = [canchi.StemCount]canchi.Branch{2, 3, 5, 6, 5, 6, 8, 9, 11, 0}
	vanXuongByHour  = [canchi.BranchCount]canchi.Branch{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 11, 10}
	vanKhucByHour   = [canchi.BranchCount]canchi.Branch{5, 6, 7, 8, 9, 10, 11, 0, 1, 2, 3, 4}
	thienKhoiByStem = [canchi.StemCount]canchi.Branch{1, 0, 11, 11, 1, 0, 7, 6, 3, 3}
	thienVietByStem = [canchi.StemCount]canchi.Branch{7, 8, 5, 6, 5, 6, 1, 2, 5, 5}
)

// Per year-branch triad, the branch Hỏa Tinh and Linh Tinh start from
// before the hour is counted forward.
var (
	hoaTinhBase  = [4]int{2, 2, 1, 10}
	linhTinhBase = [4]int{3, 10, 3, 10}
)

// AuxiliaryInput is what the auxiliary placers read from the birth moment.
type AuxiliaryInput struct {
	YearStem   canchi.Stem
	YearBranch canchi.Branch
	Month      int
	Hour       canchi.Branch
}

// PlaceAuxiliary places the thirteen auxiliary stars.
func PlaceAuxiliary(in AuxiliaryInput) (Placement, error) {
	switch {
	case !in.YearStem.Valid():
		return nil, fmt.Errorf("%w: %d", canchi.ErrUnknownStem, int(in.YearStem))
	case !in.YearBranch.Valid():
		return nil, fmt.Errorf("%w: year %d", canchi.ErrUnknownBranch, int(in.YearBranch))
	case !in.Hour.Valid():
		return nil, fmt.Errorf("%w: hour %d", canchi.ErrUnknownBranch, int(in.Hour))
	case in.Month < 1 || in.Month > 12:
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, in.Month)
	}

	p := Placement{}

	locTon := locTonByStem[in.YearStem]
	p[LocTon] = locTon
	p[KinhDuong] = locTon.Offset(1)
	p[DaLa] = locTon.Offset(-1)

	p[VanXuong] = vanXuongByHour[in.Hour]
	p[VanKhuc] = vanKhucByHour[in.Hour]

	// Tả Phù walks forward from Thìn, Hữu Bật backward from Tuất.
	p[TaPhu] = canchi.Thin.Offset(in.Month - 1)
	p[HuuBat] = canchi.Tuat.Offset(-(in.Month - 1))

	p[ThienKhoi] = thienKhoiByStem[in.YearStem]
	p[ThienViet] = thienVietByStem[in.YearStem]

	triad := in.YearBranch.Triad()
	p[HoaTinh] = canchi.BranchAt(hoaTinhBase[triad] + in.Hour.Index())
	p[LinhTinh] = canchi.BranchAt(linhTinhBase[triad] + in.Hour.Index())

	p[DiaKiep] = canchi.Hoi.Offset(in.Hour.Index())
	p[DiaKhong] = canchi.Hoi.Offset(-in.Hour.Index())
	return p, nil
}
