package chart

import (
	"fmt"

	"github.com/papapumpkin/tuvi/internal/canchi"
)

// Role is one of the twelve palaces (cung). Role i sits i branches before
// the Self palace.
type Role int

const (
	Self     Role = iota // Mệnh
	Siblings             // Huynh Đệ
	Spouse               // Phu Thê
	Children             // Tử Tức
	Wealth               // Tài Bạch
	Health               // Tật Ách
	Travel               // Thiên Di
	Friends              // Nô Bộc
	Career               // Quan Lộc
	Property             // Điền Trạch
	Fortune              // Phúc Đức
	Parents              // Phụ Mẫu
)

// RoleCount is the number of palaces.
const RoleCount = 12

var roleNames = [RoleCount]struct{ text, english, code string }{
	Self:     {"Mệnh", "Self", "MENH"},
	Siblings: {"Huynh Đệ", "Siblings", "HUYNH_DE"},
	Spouse:   {"Phu Thê", "Spouse", "PHU_THE"},
	Children: {"Tử Tức", "Children", "TU_TUC"},
	Wealth:   {"Tài Bạch", "Wealth", "TAI_BACH"},
	Health:   {"Tật Ách", "Health", "TAT_ACH"},
	Travel:   {"Thiên Di", "Travel", "THIEN_DI"},
	Friends:  {"Nô Bộc", "Friends", "NO_BOC"},
	Career:   {"Quan Lộc", "Career", "QUAN_LOC"},
	Property: {"Điền Trạch", "Property", "DIEN_TRACH"},
	Fortune:  {"Phúc Đức", "Fortune", "PHUC_DUC"},
	Parents:  {"Phụ Mẫu", "Parents", "PHU_MAU"},
}

// Valid reports whether r is one of the twelve roles.
func (r Role) Valid() bool { return r >= 0 && r < RoleCount }

// String returns the Vietnamese palace name.
func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r].text
}

// English returns the English palace name.
func (r Role) English() string {
	if !r.Valid() {
		return ""
	}
	return roleNames[r].english
}

// Code returns the stable ASCII code, e.g. "QUAN_LOC".
func (r Role) Code() string {
	if !r.Valid() {
		return ""
	}
	return roleNames[r].code
}

// MarshalText encodes the role as its code.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("unknown palace role %d", int(r))
	}
	return []byte(r.Code()), nil
}

// Direction is the way the decade and life-cycle walks turn.
type Direction int

const (
	Forward  Direction = iota // Thuận
	Backward                  // Nghịch
)

// Step returns +1 for Forward and -1 for Backward.
func (d Direction) Step() int {
	if d == Forward {
		return 1
	}
	return -1
}

// String returns "Thuận lý" or "Nghịch lý".
func (d Direction) String() string {
	if d == Forward {
		return "Thuận lý"
	}
	return "Nghịch lý"
}

// Code returns "forward" or "backward".
func (d Direction) Code() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// MarshalText encodes the direction as its code.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.Code()), nil
}

// DirectionFor returns Forward for a Yang-year man or a Yin-year woman and
// Backward otherwise.
func DirectionFor(year canchi.Polarity, sex Sex) Direction {
	if (year == canchi.Yang) == (sex == Male) {
		return Forward
	}
	return Backward
}

// DirectionLabel renders the polarity-sex pairing with its direction, e.g.
// "Âm nữ - Thuận lý".
func DirectionLabel(year canchi.Polarity, sex Sex) string {
	return fmt.Sprintf("%s %s - %s", year, sex, DirectionFor(year, sex))
}

// SelfBranch returns the branch of the Self palace: count the lunar month
// forward from Dần, then the hour branch backward.
func SelfBranch(month int, hour canchi.Branch) canchi.Branch {
	return canchi.Dan.Offset(month - 1 - hour.Index())
}

// BodyBranch returns the branch of the body marker (Thân): count the lunar
// month forward from Dần, then the hour branch forward.
func BodyBranch(month int, hour canchi.Branch) canchi.Branch {
	return canchi.Dan.Offset(month - 1 + hour.Index())
}

// tigerStem holds, per year-stem group, the stem of the Dần palace.
var tigerStem = [5]canchi.Stem{
	canchi.Binh, // Giáp, Kỷ
	canchi.Mau,  // Ất, Canh
	canchi.Canh, // Bính, Tân
	canchi.Nham, // Đinh, Nhâm
	canchi.Giap, // Mậu, Quý
}

// PalaceStem returns the stem a palace at branch b carries in a year whose
// stem is yearStem.
func PalaceStem(yearStem canchi.Stem, b canchi.Branch) canchi.Stem {
	base := tigerStem[yearStem.Group()]
	return base.Offset(canchi.BranchAt(b.Index() - canchi.Dan.Index()).Index())
}

// PalacePillar returns the Stem-Branch pair of the palace at branch b.
func PalacePillar(yearStem canchi.Stem, b canchi.Branch) (canchi.Pair, error) {
	return canchi.NewPair(PalaceStem(yearStem, b), b)
}

// Slot is one palace of the layout before any star is placed.
type Slot struct {
	Role   Role
	Branch canchi.Branch
	Pillar canchi.Pair
}

// Layout is the twelve palaces arranged around the Self palace.
type Layout struct {
	Self      canchi.Branch
	Body      canchi.Branch
	Direction Direction
	Slots     [RoleCount]Slot
}

// Arrange lays the twelve palaces out for a lunar month, hour branch, year
// stem and sex.
func Arrange(month int, hour canchi.Branch, yearStem canchi.Stem, sex Sex) (Layout, error) {
	if month < 1 || month > 12 {
		return Layout{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if !sex.Valid() {
		return Layout{}, fmt.Errorf("%w: %d", ErrInvalidSex, int(sex))
	}
	l := Layout{
		Self:      SelfBranch(month, hour),
		Body:      BodyBranch(month, hour),
		Direction: DirectionFor(yearStem.Polarity(), sex),
	}
	for i := range l.Slots {
		b := l.Self.Offset(-i)
		pillar, err := PalacePillar(yearStem, b)
		if err != nil {
			return Layout{}, fmt.Errorf("palace %s: %w", Role(i), err)
		}
		l.Slots[i] = Slot{Role: Role(i), Branch: b, Pillar: pillar}
	}
	return l, nil
}

// RoleAt returns the role of the palace sitting at branch b.
func (l Layout) RoleAt(b canchi.Branch) Role {
	return Role(canchi.BranchAt(l.Self.Index() - b.Index()).Index())
}

// SlotOf returns the slot for a role.
func (l Layout) SlotOf(r Role) Slot {
	return l.Slots[r]
}
