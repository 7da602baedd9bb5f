package lunar

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by conversions and resolution.
var (
	// ErrInvalidDate indicates a Gregorian date that does not exist.
	ErrInvalidDate = errors.New("invalid gregorian date")
	// ErrInvalidHour indicates an hour outside 0–23.
	ErrInvalidHour = errors.New("hour must be between 0 and 23")
	// ErrInvalidLunarDate indicates a lunar month outside 1–12 or a day
	// beyond the length of its month.
	ErrInvalidLunarDate = errors.New("invalid lunar date")
	// ErrLeapMonthNotFound indicates a leap month that the lunar year does
	// not have.
	ErrLeapMonthNotFound = errors.New("leap month does not exist in that lunar year")
)

// Date is a day of the lunisolar calendar. Year is the Gregorian-numbered
// year the lunar year mostly overlaps; Leap marks the intercalary repeat of
// Month.
type Date struct {
	Day   int
	Month int
	Year  int
	Leap  bool
}

// String renders the date as day/month/year with a leap marker.
func (d Date) String() string {
	if d.Leap {
		return fmt.Sprintf("%d/%d (nhuận)/%d", d.Day, d.Month, d.Year)
	}
	return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
}

// ValidSolar reports whether day/month/year names a real Gregorian date.
func ValidSolar(day, month, year int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	d, m, y := FromJulianDay(JulianDay(day, month, year))
	return d == day && m == month && y == year
}

// SolarToLunar converts a Gregorian date to the lunisolar calendar.
func SolarToLunar(day, month, year int, tz float64) (Date, error) {
	if !ValidSolar(day, month, year) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return solarToLunar(JulianDay(day, month, year), year, tz), nil
}

func solarToLunar(dayNumber, year int, tz float64) Date {
	k := lunationIndex(dayNumber)
	// The mean lunation can run ahead of the true new moon.
	for NewMoonDay(k, tz) > dayNumber {
		k--
	}
	monthStart := NewMoonDay(k+1, tz)
	if monthStart > dayNumber {
		monthStart = NewMoonDay(k, tz)
	}

	a11 := month11Start(year, tz)
	b11 := a11
	var lunarYear int
	if a11 >= monthStart {
		lunarYear = year
		a11 = month11Start(year-1, tz)
	} else {
		lunarYear = year + 1
		b11 = month11Start(year+1, tz)
	}

	d := Date{Day: dayNumber - monthStart + 1}
	diff := floorDiv(monthStart-a11, 29)
	d.Month = diff + 11
	if b11-a11 > 365 {
		leapDiff := leapMonthOffset(a11, tz)
		if diff >= leapDiff {
			d.Month = diff + 10
			d.Leap = diff == leapDiff
		}
	}
	if d.Month > 12 {
		d.Month -= 12
	}
	if d.Month >= 11 && diff < 4 {
		lunarYear--
	}
	d.Year = lunarYear
	return d
}

// LunarToSolar converts a lunisolar date to its Gregorian day, month and
// year. Asking for a leap month the year does not have is an error, as is a
// day past the end of its month.
func LunarToSolar(d Date, tz float64) (day, month, year int, err error) {
	jd, err := lunarToJulianDay(d, tz)
	if err != nil {
		return 0, 0, 0, err
	}
	day, month, year = FromJulianDay(jd)
	return day, month, year, nil
}

func lunarToJulianDay(d Date, tz float64) (int, error) {
	if d.Day < 1 || d.Day > 30 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidLunarDate, d)
	}
	start, next, err := monthBounds(d.Month, d.Year, d.Leap, tz)
	if err != nil {
		return 0, err
	}
	if start+d.Day-1 >= next {
		return 0, fmt.Errorf("%w: %s has only %d days", ErrInvalidLunarDate, d, next-start)
	}
	return start + d.Day - 1, nil
}

// leapMonthNumber turns an offset from month 11 into the month number the
// intercalary month repeats.
func leapMonthNumber(off int) int {
	m := off + 10
	if m > 12 {
		m -= 12
	}
	return m
}

// monthBounds returns the Julian days of the first day of the lunar month and
// of the month after it.
func monthBounds(month, year int, leap bool, tz float64) (start, next int, err error) {
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month %d", ErrInvalidLunarDate, month)
	}

	var a11, b11 int
	if month < 11 {
		a11 = month11Start(year-1, tz)
		b11 = month11Start(year, tz)
	} else {
		a11 = month11Start(year, tz)
		b11 = month11Start(year+1, tz)
	}
	k := int(math.Floor(0.5 + (float64(a11)-epochNewMoon)/synodicMonth))
	off := month - 11
	if off < 0 {
		off += 12
	}

	leapOff := -1
	if b11-a11 > 365 {
		leapOff = leapMonthOffset(a11, tz)
	}
	switch {
	case leapOff >= 0:
		leapMonth := leapMonthNumber(leapOff)
		if leap && month != leapMonth {
			return 0, 0, fmt.Errorf("%w: month %d of %d (leap month is %d)", ErrLeapMonthNotFound, month, year, leapMonth)
		}
		if leap || off >= leapOff {
			off++
		}
	case leap:
		return 0, 0, fmt.Errorf("%w: %d has no leap month", ErrLeapMonthNotFound, year)
	}
	return NewMoonDay(k+off, tz), NewMoonDay(k+off+1, tz), nil
}

// MonthLength returns the number of days (29 or 30) in the given lunar month.
func MonthLength(month, year int, leap bool, tz float64) (int, error) {
	start, next, err := monthBounds(month, year, leap, tz)
	if err != nil {
		return 0, err
	}
	return next - start, nil
}

// LeapMonth returns the month number the lunar year repeats, or 0 when the
// year has only twelve months.
func LeapMonth(year int, tz float64) int {
	// Months 1–10 of year lie in the span opened by month 11 of year-1;
	// months 11 and 12 lie in the span opened by month 11 of year.
	if m := leapInSpan(year-1, tz); m >= 1 && m <= 10 {
		return m
	}
	if m := leapInSpan(year, tz); m >= 11 {
		return m
	}
	return 0
}

// leapInSpan returns the leap month between month 11 of year and month 11 of
// year+1, or 0 when that span holds twelve lunations.
func leapInSpan(year int, tz float64) int {
	a11 := month11Start(year, tz)
	if month11Start(year+1, tz)-a11 <= 365 {
		return 0
	}
	return leapMonthNumber(leapMonthOffset(a11, tz))
}
