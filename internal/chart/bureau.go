package chart

import (
	"fmt"

	"github.com/papapumpkin/tuvi/internal/canchi"
)

// Bureau (Cục) is the elemental number, 2 through 6, read from the Self
// palace's Nạp Âm.
type Bureau int

const (
	Water2 Bureau = 2 // Thủy nhị cục
	Wood3  Bureau = 3 // Mộc tam cục
	Metal4 Bureau = 4 // Kim tứ cục
	Earth5 Bureau = 5 // Thổ ngũ cục
	Fire6  Bureau = 6 // Hỏa lục cục
)

var bureauText = map[Bureau]string{
	Water2: "Thủy nhị cục",
	Wood3:  "Mộc tam cục",
	Metal4: "Kim tứ cục",
	Earth5: "Thổ ngũ cục",
	Fire6:  "Hỏa lục cục",
}

// Valid reports whether b is one of the five bureaus.
func (b Bureau) Valid() bool { return b >= Water2 && b <= Fire6 }

// Value returns the bureau number.
func (b Bureau) Value() int { return int(b) }

// String returns the Vietnamese name, e.g. "Thổ ngũ cục".
func (b Bureau) String() string {
	if t, ok := bureauText[b]; ok {
		return t
	}
	return fmt.Sprintf("Bureau(%d)", int(b))
}

// Element returns the bureau's element.
func (b Bureau) Element() canchi.Element {
	switch b {
	case Water2:
		return canchi.Water
	case Wood3:
		return canchi.Wood
	case Metal4:
		return canchi.Metal
	case Earth5:
		return canchi.Earth
	case Fire6:
		return canchi.Fire
	default:
		return canchi.Element(-1)
	}
}

// BureauFor maps an element to its bureau.
func BureauFor(e canchi.Element) (Bureau, error) {
	switch e {
	case canchi.Metal:
		return Metal4, nil
	case canchi.Wood:
		return Wood3, nil
	case canchi.Water:
		return Water2, nil
	case canchi.Fire:
		return Fire6, nil
	case canchi.Earth:
		return Earth5, nil
	default:
		return 0, fmt.Errorf("%w: %d", canchi.ErrUnknownElement, int(e))
	}
}

// BureauOf derives the bureau from the year stem and the Self palace branch.
func BureauOf(yearStem canchi.Stem, self canchi.Branch) (Bureau, error) {
	pillar, err := PalacePillar(yearStem, self)
	if err != nil {
		return 0, fmt.Errorf("self palace: %w", err)
	}
	return BureauFor(pillar.NapAm().Element())
}

// ParseBureau validates a raw bureau number.
func ParseBureau(v int) (Bureau, error) {
	b := Bureau(v)
	if !b.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBureau, v)
	}
	return b, nil
}
