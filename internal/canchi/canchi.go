// Package canchi models the sexagenary cycle used by the Vietnamese calendar:
// the ten Heavenly Stems (Thiên Can), the twelve Earthly Branches (Địa Chi),
// the five elements (Ngũ Hành) and the thirty Nạp Âm categories that label
// every Stem-Branch pair of the sixty-term cycle.
//
// Every value in this package is a small closed enumeration backed by a
// constant table. Tables are package-level arrays built at compile time and
// never mutated, so all functions are safe for concurrent use.
package canchi

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for enumeration lookups and pair construction.
var (
	// ErrParityMismatch indicates a Stem and Branch of different parity; no
	// member of the sixty-term cycle carries such a pair.
	ErrParityMismatch = errors.New("stem and branch parity differ")
	// ErrUnknownStem indicates a stem code or index outside the ten stems.
	ErrUnknownStem = errors.New("unknown heavenly stem")
	// ErrUnknownBranch indicates a branch code or index outside the twelve branches.
	ErrUnknownBranch = errors.New("unknown earthly branch")
	// ErrUnknownElement indicates an element value outside the five elements.
	ErrUnknownElement = errors.New("unknown element")
)

// mod is the floor modulus: the result always lies in [0, n) for n > 0,
// including for negative a.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Polarity is the Yin/Yang (Âm/Dương) classification of a stem.
type Polarity int

const (
	Yang Polarity = iota // Dương
	Yin                  // Âm
)

// String returns the Vietnamese name of the polarity.
func (p Polarity) String() string {
	if p == Yang {
		return "Dương"
	}
	return "Âm"
}

// English returns the English name of the polarity.
func (p Polarity) English() string {
	if p == Yang {
		return "Yang"
	}
	return "Yin"
}

// Stem is one of the ten Heavenly Stems. The zero value is Giáp.
type Stem int

// The ten stems in cycle order.
const (
	Giap Stem = iota
	At
	Binh
	Dinh
	Mau
	Ky
	Canh
	Tan
	Nham
	Quy
)

// StemCount is the length of the stem cycle.
const StemCount = 10

type stemInfo struct {
	text    string
	code    string
	element Element
}

var stems = [StemCount]stemInfo{
	Giap: {"Giáp", "GIAP", Wood},
	At:   {"Ất", "AT", Wood},
	Binh: {"Bính", "BINH", Fire},
	Dinh: {"Đinh", "DINH", Fire},
	Mau:  {"Mậu", "MAU", Earth},
	Ky:   {"Kỷ", "KY", Earth},
	Canh: {"Canh", "CANH", Metal},
	Tan:  {"Tân", "TAN", Metal},
	Nham: {"Nhâm", "NHAM", Water},
	Quy:  {"Quý", "QUY", Water},
}

// StemAt returns the stem at cycle position n, reduced with floor-mod 10.
func StemAt(n int) Stem {
	return Stem(mod(n, StemCount))
}

// Valid reports whether s is one of the ten stems.
func (s Stem) Valid() bool { return s >= 0 && s < StemCount }

// Index returns the 0–9 position of the stem.
func (s Stem) Index() int { return int(s) }

// String returns the Vietnamese name, e.g. "Giáp".
func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", int(s))
	}
	return stems[s].text
}

// Code returns the stable ASCII code, e.g. "GIAP".
func (s Stem) Code() string {
	if !s.Valid() {
		return ""
	}
	return stems[s].code
}

// Initial returns the first letter of the Vietnamese name, used in the short
// palace label ("Đ.Hợi").
func (s Stem) Initial() string {
	r, _ := utf8.DecodeRuneInString(s.String())
	return string(r)
}

// Polarity returns Yang for even indices and Yin for odd ones.
func (s Stem) Polarity() Polarity {
	if s.Index()%2 == 0 {
		return Yang
	}
	return Yin
}

// Element returns the element the stem belongs to.
func (s Stem) Element() Element {
	if !s.Valid() {
		return Element(-1)
	}
	return stems[s].element
}

// Group returns the stem's group of five (index mod 5). Stems five apart
// (Giáp/Kỷ, Ất/Canh, …) share a group and drive the same offset tables.
func (s Stem) Group() int { return mod(s.Index(), 5) }

// Offset returns the stem n positions further along the cycle.
func (s Stem) Offset(n int) Stem { return StemAt(s.Index() + n) }

// MarshalText encodes the stem as its code.
func (s Stem) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStem, int(s))
	}
	return []byte(s.Code()), nil
}

// UnmarshalText accepts a stem code or Vietnamese name, case-insensitively.
func (s *Stem) UnmarshalText(b []byte) error {
	v, err := ParseStem(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStem looks a stem up by code or Vietnamese name.
func ParseStem(text string) (Stem, error) {
	for i, info := range stems {
		if strings.EqualFold(text, info.code) || strings.EqualFold(text, info.text) {
			return Stem(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStem, text)
}

// Branch is one of the twelve Earthly Branches. The zero value is Tý.
type Branch int

const (
	Ty   Branch = iota // Tý (Rat)
	Suu                // Sửu (Ox)
	Dan                // Dần (Tiger)
	Mao                // Mão (Cat)
	Thin               // Thìn (Dragon)
	Ti                 // Tỵ (Snake)
	Ngo                // Ngọ (Horse)
	Mui                // Mùi (Goat)
	Than               // Thân (Monkey)
	Dau                // Dậu (Rooster)
	Tuat               // Tuất (Dog)
	Hoi                // Hợi (Pig)
)

// BranchCount is the length of the branch cycle.
const BranchCount = 12

type branchInfo struct {
	text   string
	code   string
	animal string
}

var branches = [BranchCount]branchInfo{
	Ty:   {"Tý", "TY", "Rat"},
	Suu:  {"Sửu", "SUU", "Ox"},
	Dan:  {"Dần", "DAN", "Tiger"},
	Mao:  {"Mão", "MAO", "Cat"},
	Thin: {"Thìn", "THIN", "Dragon"},
	Ti:   {"Tỵ", "TI", "Snake"},
	Ngo:  {"Ngọ", "NGO", "Horse"},
	Mui:  {"Mùi", "MUI", "Goat"},
	Than: {"Thân", "THAN", "Monkey"},
	Dau:  {"Dậu", "DAU", "Rooster"},
	Tuat: {"Tuất", "TUAT", "Dog"},
	Hoi:  {"Hợi", "HOI", "Pig"},
}

// BranchAt returns the branch at cycle position n, reduced with floor-mod 12.
// Every branch value computed anywhere in the module goes through here or
// through Offset, so no raw index escapes [0, 11].
func BranchAt(n int) Branch {
	return Branch(mod(n, BranchCount))
}

// Branches returns the twelve branches in cycle order.
func Branches() []Branch {
	out := make([]Branch, BranchCount)
	for i := range out {
		out[i] = Branch(i)
	}
	return out
}

// Valid reports whether b is one of the twelve branches.
func (b Branch) Valid() bool { return b >= 0 && b < BranchCount }

// Index returns the 0–11 position of the branch.
func (b Branch) Index() int { return int(b) }

// Offset moves n positions around the cycle. Negative n moves backward.
func (b Branch) Offset(n int) Branch { return BranchAt(b.Index() + n) }

// String returns the Vietnamese name, e.g. "Hợi".
func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", int(b))
	}
	return branches[b].text
}

// Code returns the stable ASCII code, e.g. "HOI".
func (b Branch) Code() string {
	if !b.Valid() {
		return ""
	}
	return branches[b].code
}

// Animal returns the English zodiac animal for the branch.
func (b Branch) Animal() string {
	if !b.Valid() {
		return ""
	}
	return branches[b].animal
}

// Triad returns the branch's harmony group: {Dần, Ngọ, Tuất} → 0,
// {Thân, Tý, Thìn} → 1, {Tỵ, Dậu, Sửu} → 2, {Hợi, Mão, Mùi} → 3.
func (b Branch) Triad() int {
	switch b {
	case Dan, Ngo, Tuat:
		return 0
	case Than, Ty, Thin:
		return 1
	case Ti, Dau, Suu:
		return 2
	default:
		return 3
	}
}

// MarshalText encodes the branch as its code.
func (b Branch) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBranch, int(b))
	}
	return []byte(b.Code()), nil
}

// UnmarshalText accepts a branch code or Vietnamese name, case-insensitively.
func (b *Branch) UnmarshalText(text []byte) error {
	v, err := ParseBranch(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseBranch looks a branch up by code or Vietnamese name.
func ParseBranch(text string) (Branch, error) {
	for i, info := range branches {
		if strings.EqualFold(text, info.code) || strings.EqualFold(text, info.text) {
			return Branch(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBranch, text)
}
