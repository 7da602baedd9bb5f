// Package render turns computed charts and calendar conversions into
// documents and encodes them as YAML, TOML, JSON or a styled text summary.
package render

import (
	"fmt"

	"github.com/papapumpkin/tuvi/internal/chart"
	"github.com/papapumpkin/tuvi/internal/lunar"
)

// Document is the serializable view of a chart.
type Document struct {
	ID      string      `json:"id" yaml:"id" toml:"id"`
	Name    string      `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Birth   Birth       `json:"birth" yaml:"birth" toml:"birth"`
	Lunar   Lunar       `json:"lunar" yaml:"lunar" toml:"lunar"`
	Center  Center      `json:"center" yaml:"center" toml:"center"`
	Markers Markers     `json:"markers" yaml:"markers" toml:"markers"`
	Palaces []PalaceDoc `json:"palaces" yaml:"palaces" toml:"palaces"`
	Decades []DecadeDoc `json:"decades" yaml:"decades" toml:"decades"`
	Cycles  *Cycles     `json:"cycles,omitempty" yaml:"cycles,omitempty" toml:"cycles,omitempty"`
}

// Birth echoes the input record.
type Birth struct {
	Date     string `json:"date" yaml:"date" toml:"date"`
	Time     string `json:"time" yaml:"time" toml:"time"`
	Sex      string `json:"sex" yaml:"sex" toml:"sex"`
	Calendar string `json:"calendar" yaml:"calendar" toml:"calendar"`
	Leap     bool   `json:"leap,omitempty" yaml:"leap,omitempty" toml:"leap,omitempty"`
}

// Lunar is the resolved lunar moment.
type Lunar struct {
	Date        string `json:"date" yaml:"date" toml:"date"`
	Solar       string `json:"solar" yaml:"solar" toml:"solar"`
	Leap        bool   `json:"leap,omitempty" yaml:"leap,omitempty" toml:"leap,omitempty"`
	YearPillar  string `json:"year_pillar" yaml:"year_pillar" toml:"year_pillar"`
	MonthPillar string `json:"month_pillar" yaml:"month_pillar" toml:"month_pillar"`
	DayPillar   string `json:"day_pillar" yaml:"day_pillar" toml:"day_pillar"`
	HourPillar  string `json:"hour_pillar" yaml:"hour_pillar" toml:"hour_pillar"`
}

// Center holds the chart-wide facts.
type Center struct {
	NapAm            string `json:"napam" yaml:"napam" toml:"napam"`
	NapAmDescription string `json:"napam_description" yaml:"napam_description" toml:"napam_description"`
	NapAmElement     string `json:"napam_element" yaml:"napam_element" toml:"napam_element"`
	Bureau           string `json:"bureau" yaml:"bureau" toml:"bureau"`
	BureauNumber     int    `json:"bureau_number" yaml:"bureau_number" toml:"bureau_number"`
	Relation         string `json:"relation" yaml:"relation" toml:"relation"`
	Direction        string `json:"direction" yaml:"direction" toml:"direction"`
	SelfBranch       string `json:"self_branch" yaml:"self_branch" toml:"self_branch"`
	BodyBranch       string `json:"body_branch" yaml:"body_branch" toml:"body_branch"`
	BodyPalace       string `json:"body_palace" yaml:"body_palace" toml:"body_palace"`
	SelfRuler        string `json:"self_ruler" yaml:"self_ruler" toml:"self_ruler"`
	BodyRuler        string `json:"body_ruler" yaml:"body_ruler" toml:"body_ruler"`
	SelfHasNoPrimary bool   `json:"self_has_no_primary,omitempty" yaml:"self_has_no_primary,omitempty" toml:"self_has_no_primary,omitempty"`
}

// Markers are the two void ranges.
type Markers struct {
	Tuan  string `json:"tuan" yaml:"tuan" toml:"tuan"`
	Triet string `json:"triet" yaml:"triet" toml:"triet"`
}

// PalaceDoc is one palace with its stars in display order.
type PalaceDoc struct {
	Role   string    `json:"role" yaml:"role" toml:"role"`
	Code   string    `json:"code" yaml:"code" toml:"code"`
	Branch string    `json:"branch" yaml:"branch" toml:"branch"`
	Pillar string    `json:"pillar" yaml:"pillar" toml:"pillar"`
	Label  string    `json:"label" yaml:"label" toml:"label"`
	Stage  string    `json:"stage" yaml:"stage" toml:"stage"`
	Decade string    `json:"decade" yaml:"decade" toml:"decade"`
	Body   bool      `json:"body,omitempty" yaml:"body,omitempty" toml:"body,omitempty"`
	Tuan   bool      `json:"tuan,omitempty" yaml:"tuan,omitempty" toml:"tuan,omitempty"`
	Triet  bool      `json:"triet,omitempty" yaml:"triet,omitempty" toml:"triet,omitempty"`
	Stars  []StarDoc `json:"stars" yaml:"stars" toml:"stars"`
}

// StarDoc names a star.
type StarDoc struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Code    string `json:"code" yaml:"code" toml:"code"`
	Kind    string `json:"kind" yaml:"kind" toml:"kind"`
	Element string `json:"element" yaml:"element" toml:"element"`
}

// DecadeDoc is one ten-year period.
type DecadeDoc struct {
	Index    int    `json:"index" yaml:"index" toml:"index"`
	Palace   string `json:"palace" yaml:"palace" toml:"palace"`
	Branch   string `json:"branch" yaml:"branch" toml:"branch"`
	StartAge int    `json:"start_age" yaml:"start_age" toml:"start_age"`
	EndAge   int    `json:"end_age" yaml:"end_age" toml:"end_age"`
}

// Cycles holds the periods in force at a given age and calendar year.
type Cycles struct {
	Age          int       `json:"age,omitempty" yaml:"age,omitempty" toml:"age,omitempty"`
	Decade       DecadeDoc `json:"decade" yaml:"decade" toml:"decade"`
	MinorBranch  string    `json:"minor_branch" yaml:"minor_branch" toml:"minor_branch"`
	MinorPalace  string    `json:"minor_palace" yaml:"minor_palace" toml:"minor_palace"`
	Year         int       `json:"year,omitempty" yaml:"year,omitempty" toml:"year,omitempty"`
	AnnualBranch string    `json:"annual_branch" yaml:"annual_branch" toml:"annual_branch"`
	AnnualPalace string    `json:"annual_palace" yaml:"annual_palace" toml:"annual_palace"`
}

// Options selects the optional parts of a Document.
type Options struct {
	// Age adds the cycles in force at that age (1 in the birth year).
	Age int
	// Year adds the cycles in force in that calendar year. When Age is
	// unset it is derived from Year; a year before the birth adds nothing.
	Year int
}

// Build converts a chart into a Document.
func Build(c *chart.Chart, opts Options) Document {
	in := c.Input
	m := c.Moment
	calendar := "solar"
	if in.Lunar {
		calendar = "lunar"
	}

	doc := Document{
		ID:   c.ID,
		Name: in.Name,
		Birth: Birth{
			Date:     in.DateString(),
			Time:     fmt.Sprintf("%02d:%02d", in.Hour, in.Minute),
			Sex:      in.Sex.Code(),
			Calendar: calendar,
			Leap:     in.Leap,
		},
		Lunar: Lunar{
			Date:        m.Date.String(),
			Solar:       fmt.Sprintf("%04d-%02d-%02d", m.SolarYear, m.SolarMonth, m.SolarDay),
			Leap:        m.Date.Leap,
			YearPillar:  m.YearPillar.String(),
			MonthPillar: m.MonthPillar.String(),
			DayPillar:   m.DayPillar.String(),
			HourPillar:  m.HourPillar.String(),
		},
		Center: Center{
			NapAm:            c.YearNapAm.String(),
			NapAmDescription: c.YearNapAm.Description(),
			NapAmElement:     c.YearNapAm.Element().String(),
			Bureau:           c.Bureau.String(),
			BureauNumber:     c.Bureau.Value(),
			Relation:         c.Relation.String(),
			Direction:        c.DirectionLabel,
			SelfBranch:       c.SelfBranch.String(),
			BodyBranch:       c.BodyBranch.String(),
			BodyPalace:       c.BodyRole.String(),
			SelfRuler:        c.SelfRuler.String(),
			BodyRuler:        c.BodyRuler.String(),
			SelfHasNoPrimary: c.SelfHasNoPrimary,
		},
		Markers: Markers{
			Tuan:  c.Tuan.String(),
			Triet: c.Triet.String(),
		},
	}

	for _, p := range c.Palaces {
		pd := PalaceDoc{
			Role:   p.Role.String(),
			Code:   p.Role.Code(),
			Branch: p.Branch.String(),
			Pillar: p.Pillar.String(),
			Label:  p.Label,
			Stage:  p.Stage.String(),
			Decade: p.DecadeLabel,
			Body:   p.IsBody,
			Tuan:   p.InTuan,
			Triet:  p.InTriet,
			Stars:  make([]StarDoc, 0, len(p.Stars)),
		}
		for _, s := range p.Stars {
			pd.Stars = append(pd.Stars, StarDoc{
				Name:    s.String(),
				Code:    s.Code(),
				Kind:    s.Kind().String(),
				Element: s.Element().String(),
			})
		}
		doc.Palaces = append(doc.Palaces, pd)
	}
	for _, d := range c.Decades {
		doc.Decades = append(doc.Decades, decadeDoc(d))
	}

	if opts.Age > 0 || opts.Year > 0 {
		doc.Cycles = cycles(c, opts)
	}
	return doc
}

func decadeDoc(d chart.Decade) DecadeDoc {
	return DecadeDoc{
		Index:    d.Index,
		Palace:   d.Role.String(),
		Branch:   d.Branch.String(),
		StartAge: d.StartAge,
		EndAge:   d.EndAge,
	}
}

// cycles resolves age and year against each other: age 1 is the lunar birth
// year. It returns nil for a year before the birth.
func cycles(c *chart.Chart, opts Options) *Cycles {
	birthYear := c.Moment.Date.Year
	age, year := opts.Age, opts.Year
	if age <= 0 {
		age = year - birthYear + 1
	}
	if age < 1 {
		return nil
	}
	if year <= 0 {
		year = birthYear + age - 1
	}

	minor, minorRole := c.MinorCycle(age)
	annual, annualRole := c.Annual(year)
	return &Cycles{
		Age:          age,
		Decade:       decadeDoc(c.DecadeForAge(age)),
		MinorBranch:  minor.String(),
		MinorPalace:  minorRole.String(),
		Year:         year,
		AnnualBranch: annual.String(),
		AnnualPalace: annualRole.String(),
	}
}

// Collection is the output of a batch run.
type Collection struct {
	Charts []Document `json:"charts" yaml:"charts" toml:"chart"`
}

// Conversion is the result of a calendar conversion.
type Conversion struct {
	Solar       string `json:"solar" yaml:"solar" toml:"solar"`
	Lunar       string `json:"lunar" yaml:"lunar" toml:"lunar"`
	Leap        bool   `json:"leap,omitempty" yaml:"leap,omitempty" toml:"leap,omitempty"`
	LeapMonth   int    `json:"leap_month,omitempty" yaml:"leap_month,omitempty" toml:"leap_month,omitempty"`
	YearPillar  string `json:"year_pillar" yaml:"year_pillar" toml:"year_pillar"`
	MonthPillar string `json:"month_pillar" yaml:"month_pillar" toml:"month_pillar"`
	DayPillar   string `json:"day_pillar" yaml:"day_pillar" toml:"day_pillar"`
	HourPillar  string `json:"hour_pillar,omitempty" yaml:"hour_pillar,omitempty" toml:"hour_pillar,omitempty"`
	YearNapAm   string `json:"year_napam" yaml:"year_napam" toml:"year_napam"`
}

// NewConversion describes a resolved moment. withHour adds the hour pillar.
func NewConversion(m lunar.Moment, withHour bool) Conversion {
	conv := Conversion{
		Solar:       fmt.Sprintf("%04d-%02d-%02d", m.SolarYear, m.SolarMonth, m.SolarDay),
		Lunar:       m.Date.String(),
		Leap:        m.Date.Leap,
		LeapMonth:   lunar.LeapMonth(m.Date.Year, lunar.VietnamTimeZone),
		YearPillar:  m.YearPillar.String(),
		MonthPillar: m.MonthPillar.String(),
		DayPillar:   m.DayPillar.String(),
		YearNapAm:   m.YearPillar.NapAm().String(),
	}
	if withHour {
		conv.HourPillar = m.HourPillar.String()
	}
	return conv
}
