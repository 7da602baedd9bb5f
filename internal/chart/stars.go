package chart

import (
	"fmt"
	"sort"

	"github.com/papapumpkin/tuvi/internal/canchi"
)

// Kind partitions the stars into the groups that place them.
type Kind int

const (
	PurpleGroup Kind = iota // Tử Vi chain
	PalaceGroup             // Thiên Phủ chain
	Auxiliary               // phụ tinh
	LifeCycle               // vòng Trường Sinh
)

// String returns a short English name of the kind.
func (k Kind) String() string {
	switch k {
	case PurpleGroup:
		return "purple"
	case PalaceGroup:
		return "palace"
	case Auxiliary:
		return "auxiliary"
	case LifeCycle:
		return "life-cycle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Primary reports whether stars of this kind are primary (chính tinh).
func (k Kind) Primary() bool { return k == PurpleGroup || k == PalaceGroup }

// rank orders kinds inside a palace: primaries, auxiliaries, life cycle.
func (k Kind) rank() int {
	switch k {
	case PurpleGroup, PalaceGroup:
		return 0
	case Auxiliary:
		return 1
	default:
		return 2
	}
}

// Star is one of the stars the chart places.
type Star int

// Stars in placement order: the Tử Vi chain, the Thiên Phủ chain, the
// auxiliaries and the life-cycle ring.
const (
	TuVi Star = iota
	LiemTrinh
	ThienDong
	VuKhuc
	ThaiDuong
	ThienCo

	ThienPhu
	ThaiAm
	ThamLang
	CuMon
	ThienTuong
	ThienLuong
	ThatSat
	PhaQuan

	LocTon
	KinhDuong
	DaLa
	VanXuong
	VanKhuc
	TaPhu
	HuuBat
	ThienKhoi
	ThienViet
	HoaTinh
	LinhTinh
	DiaKiep
	DiaKhong

	TruongSinh
	MocDuc
	QuanDoi
	LamQuan
	DeVuong
	Suy
	Benh
	Tu
	Mo
	Tuyet
	Thai
	Duong

	starCount
)

// StarCount is the number of stars every chart places.
const StarCount = int(starCount)

type starInfo struct {
	text    string
	code    string
	kind    Kind
	element canchi.Element
}

var stars = [StarCount]starInfo{
	TuVi:      {"Tử Vi", "TU_VI", PurpleGroup, canchi.Earth},
	LiemTrinh: {"Liêm Trinh", "LIEM_TRINH", PurpleGroup, canchi.Fire},
	ThienDong: {"Thiên Đồng", "THIEN_DONG", PurpleGroup, canchi.Water},
	VuKhuc:    {"Vũ Khúc", "VU_KHUC", PurpleGroup, canchi.Metal},
	ThaiDuong: {"Thái Dương", "THAI_DUONG", PurpleGroup, canchi.Fire},
	ThienCo:   {"Thiên Cơ", "THIEN_CO", PurpleGroup, canchi.Wood},

	ThienPhu:   {"Thiên Phủ", "THIEN_PHU", PalaceGroup, canchi.Earth},
	ThaiAm:     {"Thái Âm", "THAI_AM", PalaceGroup, canchi.Water},
	ThamLang:   {"Tham Lang", "THAM_LANG", PalaceGroup, canchi.Water},
	CuMon:      {"Cự Môn", "CU_MON", PalaceGroup, canchi.Water},
	ThienTuong: {"Thiên Tướng", "THIEN_TUONG", PalaceGroup, canchi.Water},
	ThienLuong: {"Thiên Lương", "THIEN_LUONG", PalaceGroup, canchi.Wood},
	ThatSat:    {"Thất Sát", "THAT_SAT", PalaceGroup, canchi.Metal},
	PhaQuan:    {"Phá Quân", "PHA_QUAN", PalaceGroup, canchi.Water},

	LocTon:    {"Lộc Tồn", "LOC_TON", Auxiliary, canchi.Earth},
	KinhDuong: {"Kình Dương", "KINH_DUONG", Auxiliary, canchi.Metal},
	DaLa:      {"Đà La", "DA_LA", Auxiliary, canchi.Metal},
	VanXuong:  {"Văn Xương", "VAN_XUONG", Auxiliary, canchi.Metal},
	VanKhuc:   {"Văn Khúc", "VAN_KHUC", Auxiliary, canchi.Water},
	TaPhu:     {"Tả Phù", "TA_PHU", Auxiliary, canchi.Earth},
	HuuBat:    {"Hữu Bật", "HUU_BAT", Auxiliary, canchi.Water},
	ThienKhoi: {"Thiên Khôi", "THIEN_KHOI", Auxiliary, canchi.Fire},
	ThienViet: {"Thiên Việt", "THIEN_VIET", Auxiliary, canchi.Fire},
	HoaTinh:   {"Hỏa Tinh", "HOA_TINH", Auxiliary, canchi.Fire},
	LinhTinh:  {"Linh Tinh", "LINH_TINH", Auxiliary, canchi.Fire},
	DiaKiep:   {"Địa Kiếp", "DIA_KIEP", Auxiliary, canchi.Fire},
	DiaKhong:  {"Địa Không", "DIA_KHONG", Auxiliary, canchi.Fire},

	TruongSinh: {"Trường Sinh", "TRUONG_SINH", LifeCycle, canchi.Wood},
	MocDuc:     {"Mộc Dục", "MOC_DUC", LifeCycle, canchi.Water},
	QuanDoi:    {"Quán Đới", "QUAN_DOI", LifeCycle, canchi.Wood},
	LamQuan:    {"Lâm Quan", "LAM_QUAN", LifeCycle, canchi.Wood},
	DeVuong:    {"Đế Vượng", "DE_VUONG", LifeCycle, canchi.Metal},
	Suy:        {"Suy", "SUY", LifeCycle, canchi.Metal},
	Benh:       {"Bệnh", "BENH", LifeCycle, canchi.Fire},
	Tu:         {"Tử", "TU", LifeCycle, canchi.Water},
	Mo:         {"Mộ", "MO", LifeCycle, canchi.Earth},
	Tuyet:      {"Tuyệt", "TUYET", LifeCycle, canchi.Water},
	Thai:       {"Thai", "THAI", LifeCycle, canchi.Water},
	Duong:      {"Dưỡng", "DUONG", LifeCycle, canchi.Wood},
}

// AllStars returns every star in declaration order.
func AllStars() []Star {
	out := make([]Star, StarCount)
	for i := range out {
		out[i] = Star(i)
	}
	return out
}

// Valid reports whether s is a known star.
func (s Star) Valid() bool { return s >= 0 && s < starCount }

// String returns the Vietnamese star name.
func (s Star) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Star(%d)", int(s))
	}
	return stars[s].text
}

// Code returns the stable ASCII code, e.g. "TU_VI".
func (s Star) Code() string {
	if !s.Valid() {
		return ""
	}
	return stars[s].code
}

// Kind returns the placing group of the star.
func (s Star) Kind() Kind {
	if !s.Valid() {
		return Kind(-1)
	}
	return stars[s].kind
}

// Element returns the star's own element.
func (s Star) Element() canchi.Element {
	if !s.Valid() {
		return canchi.Element(-1)
	}
	return stars[s].element
}

// MarshalText encodes the star as its code.
func (s Star) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown star %d", int(s))
	}
	return []byte(s.Code()), nil
}

// SortStars orders stars for display inside a palace: primaries first, then
// auxiliaries, then the life-cycle stage, each group by code.
func SortStars(list []Star) {
	sort.SliceStable(list, func(i, j int) bool {
		ri, rj := list[i].Kind().rank(), list[j].Kind().rank()
		if ri != rj {
			return ri < rj
		}
		return list[i].Code() < list[j].Code()
	})
}

// Placement maps each star to the branch it occupies.
type Placement map[Star]canchi.Branch

// merge copies src into p, failing on a star placed twice.
func (p Placement) merge(src Placement) error {
	for s, b := range src {
		if _, dup := p[s]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateStar, s)
		}
		p[s] = b
	}
	return nil
}

// complete fails unless every star has a valid branch.
func (p Placement) complete() error {
	for _, s := range AllStars() {
		b, ok := p[s]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnplacedStar, s)
		}
		if !b.Valid() {
			return fmt.Errorf("star %s at invalid branch %d", s, int(b))
		}
	}
	return nil
}

// At returns the stars at branch b, unsorted.
func (p Placement) At(b canchi.Branch) []Star {
	var out []Star
	for _, s := range AllStars() {
		if pb, ok := p[s]; ok && pb == b {
			out = append(out, s)
		}
	}
	return out
}
