// Package lunar converts between Gregorian and Vietnamese lunisolar dates
// and derives the four Stem-Branch pillars of a birth moment.
//
// The astronomy follows Hồ Ngọc Đức's published algorithm: the mean new moon
// with the main periodic corrections and a low-precision solar longitude,
// evaluated at the UTC+7 meridian. Month 11 always contains the winter
// solstice, and the first month of a thirteen-month year with no major solar
// term becomes the leap month.
package lunar

import "math"

// VietnamTimeZone is the meridian offset, in hours, all conversions use.
const VietnamTimeZone = 7.0

const (
	// epochNewMoon is the Julian day of the new moon of 1900-01-01.
	epochNewMoon = 2415021.076998695
	// synodicMonth is the mean length of a lunation in days.
	synodicMonth = 29.530588853
)

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// JulianDay returns the Julian day number of a proleptic Gregorian date.
func JulianDay(day, month, year int) int {
	a := floorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// FromJulianDay is the inverse of JulianDay.
func FromJulianDay(jd int) (day, month, year int) {
	a := jd + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	day = e - floorDiv(153*m+2, 5) + 1
	month = m + 3 - 12*floorDiv(m, 10)
	year = b*100 + d - 4800 + floorDiv(m, 10)
	return day, month, year
}

// NewMoonDay returns the local Julian day of the k-th new moon after the
// epoch new moon of 1900-01-01.
func NewMoonDay(k int, tz float64) int {
	kf := float64(k)
	t := kf / 1236.85
	t2 := t * t
	t3 := t2 * t
	dr := math.Pi / 180

	jd1 := 2415020.75933 + 29.53058868*kf + 0.0001178*t2 - 0.000000155*t3
	jd1 += 0.00033 * math.Sin((166.56+132.87*t-0.009173*t2)*dr)

	m := (359.2242 + 29.10535608*kf - 0.0000333*t2 - 0.00000347*t3) * dr
	mpr := (306.0253 + 385.81691806*kf + 0.0107306*t2 + 0.00001236*t3) * dr
	f := (21.2964 + 390.67050646*kf - 0.0016528*t2 - 0.00000239*t3) * dr

	c1 := (0.1734-0.000393*t)*math.Sin(m) + 0.0021*math.Sin(2*m)
	c1 -= 0.4068*math.Sin(mpr) - 0.0161*math.Sin(2*mpr)
	c1 -= 0.0004 * math.Sin(3*mpr)
	c1 += 0.0104*math.Sin(2*f) - 0.0051*math.Sin(m+mpr)
	c1 -= 0.0074*math.Sin(m-mpr) - 0.0004*math.Sin(2*f+m)
	c1 -= 0.0004*math.Sin(2*f-m) + 0.0006*math.Sin(2*f+mpr)
	c1 += 0.0010*math.Sin(2*f-mpr) + 0.0005*math.Sin(2*mpr+m)

	var deltaT float64
	if t < -11 {
		deltaT = 0.001 + 0.000839*t + 0.0002261*t2 - 0.00000845*t3 - 0.000000081*t*t3
	} else {
		deltaT = -0.000278 + 0.000265*t + 0.000262*t2
	}
	return int(math.Floor(jd1 + c1 - deltaT + 0.5 + tz/24))
}

// SunLongitude returns the apparent solar longitude, in radians within
// [0, 2π), at local midnight of the given Julian day.
func SunLongitude(jdn int, tz float64) float64 {
	t := (float64(jdn) - 2451545.5 - tz/24) / 36525
	t2 := t * t
	dr := math.Pi / 180

	m := 357.52910 + 35999.05030*t - 0.0001559*t2 - 0.00000048*t*t2
	l0 := 280.46645 + 36000.76983*t + 0.0003032*t2
	dl := (1.914600 - 0.004817*t - 0.000014*t2) * math.Sin(dr*m)
	dl += (0.019993-0.000101*t)*math.Sin(2*dr*m) + 0.000290*math.Sin(3*dr*m)

	l := (l0 + dl) * dr
	l -= 2 * math.Pi * math.Floor(l/(2*math.Pi))
	return l
}

// SunSegment returns which of the twelve 30° sectors of the ecliptic the sun
// occupies at local midnight of jdn. Sector 9 starts at the winter solstice.
func SunSegment(jdn int, tz float64) int {
	return int(math.Floor(SunLongitude(jdn, tz) / math.Pi * 6))
}

// lunationIndex returns the index k of the mean new moon at or before jd.
// The true new moon of that index may fall a day or so either side.
func lunationIndex(jd int) int {
	return int(math.Floor((float64(jd) - epochNewMoon) / synodicMonth))
}

// month11Start returns the Julian day of the first day of lunar month 11 of
// the given Gregorian year, the month containing the winter solstice.
func month11Start(year int, tz float64) int {
	off := JulianDay(31, 12, year) - 2415021
	k := int(math.Floor(float64(off) / synodicMonth))
	nm := NewMoonDay(k, tz)
	if SunSegment(nm, tz) >= 9 {
		nm = NewMoonDay(k-1, tz)
	}
	return nm
}

// leapMonthOffset returns the offset, counted from month 11 starting at a11,
// of the first lunation that contains no major solar term.
func leapMonthOffset(a11 int, tz float64) int {
	k := int(math.Floor(0.5 + (float64(a11)-epochNewMoon)/synodicMonth))
	last := SunSegment(NewMoonDay(k, tz), tz)
	i := 1
	arc := SunSegment(NewMoonDay(k+i, tz), tz)
	for arc != last && i < 14 {
		last = arc
		i++
		arc = SunSegment(NewMoonDay(k+i, tz), tz)
	}
	return i - 1
}
