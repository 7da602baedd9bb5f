// Package ansi holds the SGR codes used for status output, plus the switch
// that turns them off.
package ansi

import (
	"os"
	"regexp"
)

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Yellow = "\033[33m"
	Green  = "\033[32m"
	Red    = "\033[31m"
	Cyan   = "\033[36m"
)

var sgr = regexp.MustCompile("\033\\[[0-9;]*m")

// Disabled reports whether colored output is turned off through NO_COLOR.
func Disabled() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

// Strip removes SGR sequences from s.
func Strip(s string) string {
	return sgr.ReplaceAllString(s, "")
}
