package chart

import (
	"errors"
	"fmt"
)

// Sentinel errors for chart computation.
var (
	// ErrInvalidBureau indicates a bureau value outside 2–6.
	ErrInvalidBureau = errors.New("bureau must be between 2 and 6")
	// ErrInvalidLunarDay indicates a lunar day outside 1–30.
	ErrInvalidLunarDay = errors.New("lunar day must be between 1 and 30")
	// ErrInvalidMonth indicates a month outside 1–12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	// ErrInvalidMinute indicates a minute outside 0–59.
	ErrInvalidMinute = errors.New("minute must be between 0 and 59")
	// ErrInvalidSex indicates a sex value other than male or female.
	ErrInvalidSex = errors.New("sex must be male or female")
	// ErrLeapNeedsLunar indicates a leap-month flag on a Gregorian date.
	ErrLeapNeedsLunar = errors.New("leap month flag requires a lunar date")
	// ErrUnplacedStar indicates a star the placers left without a branch.
	ErrUnplacedStar = errors.New("star not placed")
	// ErrDuplicateStar indicates a star placed by two placers.
	ErrDuplicateStar = errors.New("star placed twice")
)

// InputError reports which birth input field was rejected and why.
type InputError struct {
	Field string
	Value any
	Err   error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *InputError) Unwrap() error {
	return e.Err
}
