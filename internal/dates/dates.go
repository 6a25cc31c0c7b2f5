// Package dates resolves user-supplied date expressions for the
// report window. Absolute expressions ("2020-01-02", "Jan 2 2020")
// resolve to a timestamp; anything else is assumed to be a relative
// expression git itself understands ("2.months.ago", "yesterday") and
// passes through verbatim.
package dates

import (
	"fmt"
	"regexp"
	"time"

	"github.com/araddon/dateparse"
)

// relativeExpr matches git approxidate forms ("2.months.ago",
// "3 weeks ago") that dateparse would otherwise misread as year-zero
// absolute dates.
var relativeExpr = regexp.MustCompile(`(?i)^\d+[. ](second|minute|hour|day|week|month|year)s?([. ]ago)?$`)

// minPlausibleYear guards against parses that technically succeed but
// land in year zero or similar artifacts; no commit predates it.
const minPlausibleYear = 1000

// Resolve parses s as an absolute date or timestamp. ok is false when
// s is not recognized as one, in which case the caller should hand the
// raw string to git unchanged.
func Resolve(s string) (time.Time, bool) {
	if relativeExpr.MatchString(s) {
		return time.Time{}, false
	}

	t, err := dateparse.ParseLocal(s)
	if err != nil || t.Year() < minPlausibleYear {
		return time.Time{}, false
	}
	return t, true
}

// DayWindow returns the [start, end) bounds of the calendar day s
// names. Unlike since/before expressions, a day must resolve to an
// absolute date: there is no meaningful pass-through for "that day
// plus one".
func DayWindow(s string) (start, end time.Time, err error) {
	t, ok := Resolve(s)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}

	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1), nil
}

// GitArg renders a date expression as a git log --since/--before
// argument: resolved expressions become exact @unix timestamps,
// unresolved ones pass through for git to interpret.
func GitArg(s string) string {
	if s == "" {
		return ""
	}
	if t, ok := Resolve(s); ok {
		return Unix(t)
	}
	return s
}

// Unix renders a timestamp in git's @<epoch-seconds> notation.
func Unix(t time.Time) string {
	return fmt.Sprintf("@%d", t.Unix())
}
