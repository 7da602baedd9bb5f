package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papapumpkin/tuvi/internal/lunar"
)

// Sex of the chart subject. It decides, with the year polarity, the
// direction every cycle walks.
type Sex int

// Sex values.
const (
	Male Sex = iota
	Female
)

// String returns the Vietnamese label ("nam"/"nữ").
func (s Sex) String() string {
	switch s {
	case Male:
		return "nam"
	case Female:
		return "nữ"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

// Code returns "male" or "female".
func (s Sex) Code() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return ""
	}
}

// Valid reports whether s is Male or Female.
func (s Sex) Valid() bool { return s == Male || s == Female }

// MarshalText encodes the sex as its code.
func (s Sex) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSex, int(s))
	}
	return []byte(s.Code()), nil
}

// UnmarshalText accepts any spelling ParseSex accepts.
func (s *Sex) UnmarshalText(b []byte) error {
	v, err := ParseSex(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSex accepts English and Vietnamese spellings.
func ParseSex(text string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "male", "m", "nam":
		return Male, nil
	case "female", "f", "nữ", "nu":
		return Female, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSex, text)
	}
}

// Input is a birth record. Year, Month and Day are Gregorian unless Lunar is
// set, in which case they name a lunar date and Leap selects the intercalary
// month.
type Input struct {
	Name   string
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Sex    Sex
	Lunar  bool
	Leap   bool
}

// Validate checks field ranges that do not need the calendar. Calendar
// validity (31 February, a missing leap month) is reported by Compute.
func (in Input) Validate() error {
	if in.Month < 1 || in.Month > 12 {
		return &InputError{Field: "month", Value: in.Month, Err: ErrInvalidMonth}
	}
	if in.Lunar {
		if in.Day < 1 || in.Day > 30 {
			return &InputError{Field: "day", Value: in.Day, Err: ErrInvalidLunarDay}
		}
	} else {
		if !lunar.ValidSolar(in.Day, in.Month, in.Year) {
			return &InputError{Field: "date", Value: in.DateString(), Err: lunar.ErrInvalidDate}
		}
		if in.Leap {
			return &InputError{Field: "leap", Value: in.Leap, Err: ErrLeapNeedsLunar}
		}
	}
	if in.Hour < 0 || in.Hour > 23 {
		return &InputError{Field: "hour", Value: in.Hour, Err: lunar.ErrInvalidHour}
	}
	if in.Minute < 0 || in.Minute > 59 {
		return &InputError{Field: "minute", Value: in.Minute, Err: ErrInvalidMinute}
	}
	if !in.Sex.Valid() {
		return &InputError{Field: "sex", Value: int(in.Sex), Err: ErrInvalidSex}
	}
	return nil
}

// DateString renders the date as YYYY-MM-DD.
func (in Input) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", in.Year, in.Month, in.Day)
}

// ParseDate splits a YYYY-MM-DD string. The day is not checked against the
// month so that lunar dates such as 1995-02-30 parse.
func ParseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("parsing date %q: want YYYY-MM-DD", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("parsing date %q: %w", s, err)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

// ParseClock splits an HH:MM string. An empty string is midnight.
func ParseClock(s string) (hour, minute int, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil
	}
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("parsing time %q: want HH:MM", s)
	}
	if hour, err = strconv.Atoi(h); err != nil {
		return 0, 0, fmt.Errorf("parsing time %q: %w", s, err)
	}
	if minute, err = strconv.Atoi(m); err != nil {
		return 0, 0, fmt.Errorf("parsing time %q: %w", s, err)
	}
	return hour, minute, nil
}
