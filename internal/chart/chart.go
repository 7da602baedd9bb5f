// Package chart computes a Tử Vi natal chart from a birth record: the twelve
// palaces, the bureau, the placed stars, the void markers and the decade
// cycle.
//
// Every function here is pure. Compute allocates a fresh Chart per call and
// reads only package-level tables that are never written after init, so
// callers may compute charts concurrently without coordination.
package chart

import (
	"fmt"

	"github.com/papapumpkin/tuvi/internal/canchi"
	"github.com/papapumpkin/tuvi/internal/lunar"
)

// Palace is one assembled palace of a chart.
type Palace struct {
	Role   Role
	Branch canchi.Branch
	Pillar canchi.Pair
	// Label is the short stem-branch form, e.g. "Đ.Hợi".
	Label string
	Stage Stage
	Stars []Star
	// InTuan and InTriet mark palaces on a void range.
	InTuan  bool
	InTriet bool
	IsBody  bool

	DecadeStartAge int
	DecadeLabel    string
}

// HasPrimary reports whether a primary star sits in the palace.
func (p Palace) HasPrimary() bool {
	for _, s := range p.Stars {
		if s.Kind().Primary() {
			return true
		}
	}
	return false
}

// Primary returns the first primary star of the palace.
func (p Palace) Primary() (Star, bool) {
	for _, s := range p.Stars {
		if s.Kind().Primary() {
			return s, true
		}
	}
	return 0, false
}

// Chart is a computed natal chart. It is never modified after Compute
// returns it.
type Chart struct {
	ID     string
	Input  Input
	Moment lunar.Moment

	YearNapAm canchi.NapAm
	Bureau    Bureau
	// Relation is how the year Nạp Âm element stands toward the bureau element.
	Relation  canchi.Relation
	Direction Direction
	// DirectionLabel reads e.g. "Âm nữ - Thuận lý".
	DirectionLabel string

	SelfBranch canchi.Branch
	BodyBranch canchi.Branch
	BodyRole   Role

	SelfRuler        Star
	BodyRuler        Star
	SelfHasNoPrimary bool

	Palaces [RoleCount]Palace
	Tuan    VoidRange
	Triet   VoidRange
	Decades []Decade

	placement Placement
}

// Compute builds the chart for a birth record.
func Compute(in Input) (*Chart, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m, err := resolve(in)
	if err != nil {
		return nil, err
	}
	yearStem, yearBranch := m.YearPillar.Stem, m.YearPillar.Branch

	layout, err := Arrange(m.Date.Month, m.HourBranch, yearStem, in.Sex)
	if err != nil {
		return nil, err
	}
	bureau, err := BureauOf(yearStem, layout.Self)
	if err != nil {
		return nil, fmt.Errorf("bureau: %w", err)
	}

	placement := Placement{}
	purple, err := PlacePurpleGroup(bureau, m.Date.Day)
	if err != nil {
		return nil, err
	}
	stages, cycle, err := PlaceLifeCycle(bureau.Element(), layout.Direction)
	if err != nil {
		return nil, fmt.Errorf("life cycle: %w", err)
	}
	aux, err := PlaceAuxiliary(AuxiliaryInput{
		YearStem:   yearStem,
		YearBranch: yearBranch,
		Month:      m.Date.Month,
		Hour:       m.HourBranch,
	})
	if err != nil {
		return nil, fmt.Errorf("auxiliary stars: %w", err)
	}
	groups := []Placement{purple, PlacePalaceGroup(purple[TuVi]), aux, cycle}
	for _, g := range groups {
		if err := placement.merge(g); err != nil {
			return nil, err
		}
	}
	if err := placement.complete(); err != nil {
		return nil, err
	}

	napAm := m.YearPillar.NapAm()
	relation, err := canchi.RelationOf(napAm.Element(), bureau.Element())
	if err != nil {
		return nil, fmt.Errorf("relation: %w", err)
	}

	c := &Chart{
		Input:          in,
		Moment:         m,
		YearNapAm:      napAm,
		Bureau:         bureau,
		Relation:       relation,
		Direction:      layout.Direction,
		DirectionLabel: DirectionLabel(yearStem.Polarity(), in.Sex),
		SelfBranch:     layout.Self,
		BodyBranch:     layout.Body,
		BodyRole:       layout.RoleAt(layout.Body),
		Tuan:           Tuan(m.YearPillar),
		Triet:          Triet(yearStem),
		Decades:        Decades(bureau, layout.Direction, layout),
		placement:      placement,
	}
	for i, slot := range layout.Slots {
		list := placement.At(slot.Branch)
		SortStars(list)
		c.Palaces[i] = Palace{
			Role:    slot.Role,
			Branch:  slot.Branch,
			Pillar:  slot.Pillar,
			Label:   slot.Pillar.Label(),
			Stage:   stages[slot.Branch],
			Stars:   list,
			InTuan:  c.Tuan.Contains(slot.Branch),
			InTriet: c.Triet.Contains(slot.Branch),
			IsBody:  slot.Branch == layout.Body,
		}
	}
	for _, d := range c.Decades {
		c.Palaces[d.Role].DecadeStartAge = d.StartAge
		c.Palaces[d.Role].DecadeLabel = d.Label
	}
	c.SelfRuler, c.SelfHasNoPrimary = c.selfRuler()
	c.BodyRuler = c.bodyRuler()
	c.ID = Fingerprint(c).ID
	return c, nil
}

func resolve(in Input) (lunar.Moment, error) {
	if in.Lunar {
		m, err := lunar.ResolveLunar(lunar.Date{Day: in.Day, Month: in.Month, Year: in.Year, Leap: in.Leap}, in.Hour)
		if err != nil {
			return lunar.Moment{}, &InputError{Field: "lunar date", Value: in.DateString(), Err: err}
		}
		return m, nil
	}
	m, err := lunar.Resolve(in.Day, in.Month, in.Year, in.Hour)
	if err != nil {
		return lunar.Moment{}, &InputError{Field: "date", Value: in.DateString(), Err: err}
	}
	return m, nil
}

// selfRuler picks the Chủ Mệnh: the Self palace's primary star, else the
// first primary found in Travel, Wealth and the body palace, else the first
// star of Self. The flag reports that Self had no primary star.
func (c *Chart) selfRuler() (Star, bool) {
	if s, ok := c.Palaces[Self].Primary(); ok {
		return s, false
	}
	for _, r := range []Role{Travel, Wealth, c.BodyRole} {
		if s, ok := c.Palaces[r].Primary(); ok {
			return s, true
		}
	}
	return c.Palaces[Self].Stars[0], true
}

// bodyRuler picks the Chủ Thân: the body palace's primary star, else its
// first star.
func (c *Chart) bodyRuler() Star {
	p := c.Palaces[c.BodyRole]
	if s, ok := p.Primary(); ok {
		return s
	}
	return p.Stars[0]
}

// Palace returns the palace for a role.
func (c *Chart) Palace(r Role) Palace {
	return c.Palaces[r]
}

// PalaceAt returns the palace sitting at branch b.
func (c *Chart) PalaceAt(b canchi.Branch) Palace {
	return c.Palaces[canchi.BranchAt(c.SelfBranch.Index()-b.Index()).Index()]
}

// StarBranch returns the branch a star was placed on.
func (c *Chart) StarBranch(s Star) (canchi.Branch, bool) {
	b, ok := c.placement[s]
	return b, ok
}

// DecadeForAge returns the decade governing an age.
func (c *Chart) DecadeForAge(age int) Decade {
	return c.Decades[DecadeIndexForAge(age, c.Bureau)]
}

// MinorCycle returns the Tiểu Vận branch and palace for an age.
func (c *Chart) MinorCycle(age int) (canchi.Branch, Role) {
	b := MinorCycleBranch(age, c.Direction, c.Moment.HourBranch)
	return b, c.PalaceAt(b).Role
}

// Annual returns the Lưu Niên branch and palace for a calendar year.
func (c *Chart) Annual(year int) (canchi.Branch, Role) {
	b := AnnualBranch(year, c.Moment.Date.Year, c.Moment.YearPillar.Branch)
	return b, c.PalaceAt(b).Role
}
