package canchi

import (
	"fmt"
	"strings"
)

// Element is one of the five phases (Ngũ Hành).
type Element int

const (
	Metal Element = iota // Kim
	Wood                 // Mộc
	Water                // Thủy
	Fire                 // Hỏa
	Earth                // Thổ
)

// ElementCount is the number of elements.
const ElementCount = 5

type elementInfo struct {
	text    string
	english string
	code    string
}

var elements = [ElementCount]elementInfo{
	Metal: {"Kim", "Metal", "KIM"},
	Wood:  {"Mộc", "Wood", "MOC"},
	Water: {"Thủy", "Water", "THUY"},
	Fire:  {"Hỏa", "Fire", "HOA"},
	Earth: {"Thổ", "Earth", "THO"},
}

// generates maps each element to the one it produces.
var generates = [ElementCount]Element{
	Metal: Water,
	Water: Wood,
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
}

// overcomes maps each element to the one it controls.
var overcomes = [ElementCount]Element{
	Metal: Wood,
	Wood:  Earth,
	Earth: Water,
	Water: Fire,
	Fire:  Metal,
}

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool { return e >= 0 && e < ElementCount }

// String returns the Vietnamese name, e.g. "Thổ".
func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elements[e].text
}

// English returns the English name, e.g. "Earth".
func (e Element) English() string {
	if !e.Valid() {
		return ""
	}
	return elements[e].english
}

// Code returns the stable ASCII code, e.g. "THO".
func (e Element) Code() string {
	if !e.Valid() {
		return ""
	}
	return elements[e].code
}

// Generates reports whether e produces other in the generating cycle.
func (e Element) Generates(other Element) bool {
	return e.Valid() && other.Valid() && generates[e] == other
}

// Overcomes reports whether e controls other in the overcoming cycle.
func (e Element) Overcomes(other Element) bool {
	return e.Valid() && other.Valid() && overcomes[e] == other
}

// MarshalText encodes the element as its code.
func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownElement, int(e))
	}
	return []byte(e.Code()), nil
}

// UnmarshalText accepts a code, Vietnamese or English name.
func (e *Element) UnmarshalText(b []byte) error {
	v, err := ParseElement(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseElement looks an element up by code, Vietnamese or English name.
func ParseElement(text string) (Element, error) {
	for i, info := range elements {
		if strings.EqualFold(text, info.code) ||
			strings.EqualFold(text, info.text) ||
			strings.EqualFold(text, info.english) {
			return Element(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, text)
}

// Relation describes how one element stands toward another.
type Relation int

const (
	Same          Relation = iota // Bình hòa
	Generates                     // the first produces the second
	GeneratedBy                   // the second produces the first
	Overcomes                     // the first controls the second
	OvercomeBy                    // the second controls the first
)

var relationText = [...]string{
	Same:        "Bình hòa",
	Generates:   "Sinh xuất",
	GeneratedBy: "Sinh nhập",
	Overcomes:   "Khắc xuất",
	OvercomeBy:  "Khắc nhập",
}

var relationCode = [...]string{
	Same:        "SAME",
	Generates:   "GENERATES",
	GeneratedBy: "GENERATED_BY",
	Overcomes:   "OVERCOMES",
	OvercomeBy:  "OVERCOME_BY",
}

// String returns the Vietnamese name of the relation.
func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationText) {
		return fmt.Sprintf("Relation(%d)", int(r))
	}
	return relationText[r]
}

// Code returns the stable ASCII code of the relation.
func (r Relation) Code() string {
	if r < 0 || int(r) >= len(relationCode) {
		return ""
	}
	return relationCode[r]
}

// MarshalText encodes the relation as its code.
func (r Relation) MarshalText() ([]byte, error) {
	return []byte(r.Code()), nil
}

// RelationOf classifies the relation of a toward b. Any two valid elements
// stand in exactly one of the five relations.
func RelationOf(a, b Element) (Relation, error) {
	if !a.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownElement, int(a))
	}
	if !b.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownElement, int(b))
	}
	switch {
	case a == b:
		return Same, nil
	case a.Generates(b):
		return Generates, nil
	case b.Generates(a):
		return GeneratedBy, nil
	case a.Overcomes(b):
		return Overcomes, nil
	default:
		return OvercomeBy, nil
	}
}
