package lunar

import (
	"fmt"

	"github.com/papapumpkin/tuvi/internal/canchi"
)

// Moment is a birth moment resolved onto the lunisolar calendar: the lunar
// date, the solar day it falls on, and the four Stem-Branch pillars.
type Moment struct {
	Date Date

	// Solar day the moment falls on, and its Julian day number.
	SolarDay   int
	SolarMonth int
	SolarYear  int
	JulianDay  int

	Hour       int
	HourBranch canchi.Branch

	YearPillar  canchi.Pair
	MonthPillar canchi.Pair
	DayPillar   canchi.Pair
	HourPillar  canchi.Pair
}

// HourBranch maps a clock hour to its two-hour branch. 23:00–00:59 is Tý,
// 01:00–02:59 is Sửu and so on around the cycle.
func HourBranch(hour int) (canchi.Branch, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHour, hour)
	}
	if hour == 23 {
		return canchi.Ty, nil
	}
	return canchi.BranchAt((hour + 1) / 2), nil
}

// Resolve places a Gregorian date and clock hour on the lunar calendar at
// the Vietnam meridian and derives the four pillars.
func Resolve(day, month, year, hour int) (Moment, error) {
	hb, err := HourBranch(hour)
	if err != nil {
		return Moment{}, err
	}
	d, err := SolarToLunar(day, month, year, VietnamTimeZone)
	if err != nil {
		return Moment{}, err
	}
	return pillars(d, JulianDay(day, month, year), hour, hb)
}

// ResolveLunar is Resolve for a birth recorded on the lunar calendar.
func ResolveLunar(d Date, hour int) (Moment, error) {
	hb, err := HourBranch(hour)
	if err != nil {
		return Moment{}, err
	}
	jd, err := lunarToJulianDay(d, VietnamTimeZone)
	if err != nil {
		return Moment{}, err
	}
	return pillars(d, jd, hour, hb)
}

func pillars(d Date, jd, hour int, hb canchi.Branch) (Moment, error) {
	m := Moment{
		Date:       d,
		JulianDay:  jd,
		Hour:       hour,
		HourBranch: hb,
	}
	m.SolarDay, m.SolarMonth, m.SolarYear = FromJulianDay(jd)

	var err error
	if m.YearPillar, err = canchi.NewPair(canchi.StemAt(d.Year+6), canchi.BranchAt(d.Year+8)); err != nil {
		return Moment{}, fmt.Errorf("year pillar: %w", err)
	}
	if m.MonthPillar, err = canchi.NewPair(canchi.StemAt(d.Year*12+d.Month+3), canchi.BranchAt(d.Month+1)); err != nil {
		return Moment{}, fmt.Errorf("month pillar: %w", err)
	}
	if m.DayPillar, err = canchi.NewPair(canchi.StemAt(jd+9), canchi.BranchAt(jd+1)); err != nil {
		return Moment{}, fmt.Errorf("day pillar: %w", err)
	}
	hourStem := canchi.StemAt(m.DayPillar.Stem.Group()*2 + hb.Index())
	if m.HourPillar, err = canchi.NewPair(hourStem, hb); err != nil {
		return Moment{}, fmt.Errorf("hour pillar: %w", err)
	}
	return m, nil
}
