// Package datemath turns an integer and a calendar unit into a point in time
// relative to now or to a given time.
//
//	datemath.Days(3).FromNow()
//	datemath.Span{N: 2, Unit: datemath.Month}.Before(deadline)
//
// Second, Minute and Hour are fixed durations. Day, Week, Month and Year are
// calendar units applied with time.Time.AddDate, so "1 month from January 31"
// normalizes the same way AddDate does and a day across a daylight saving
// change keeps the wall clock time.
package datemath

import (
	"strconv"
	"strings"
	"time"

	"github.com/erraggy/wordcase/wcerrors"
)

// Unit is a calendar unit.
type Unit int

// Units, shortest first.
const (
	Second Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var unitNames = [...]string{
	Second: "second",
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
	Month:  "month",
	Year:   "year",
}

// String returns the singular unit name.
func (u Unit) String() string {
	if u < Second || u > Year {
		return "unknown"
	}
	return unitNames[u]
}

var unitAliases = map[string]Unit{
	"s": Second, "sec": Second, "secs": Second,
	"m": Minute, "min": Minute, "mins": Minute,
	"h": Hour, "hr": Hour, "hrs": Hour,
	"d": Day,
	"w": Week, "wk": Week, "wks": Week,
	"mo": Month, "mos": Month,
	"y": Year, "yr": Year, "yrs": Year,
}

// ParseUnit resolves a unit name, ignoring case and surrounding whitespace.
// Singular and plural names ("day", "days") and common abbreviations
// ("h", "wk", "mo") are accepted.
func ParseUnit(name string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if u, ok := unitAliases[key]; ok {
		return u, nil
	}
	singular := strings.TrimSuffix(key, "s")
	for u, n := range unitNames {
		if n == key || n == singular {
			return Unit(u), nil
		}
	}
	return Second, &wcerrors.ConfigError{
		Option:  "unit",
		Value:   name,
		Message: "valid units: second, minute, hour, day, week, month, year",
	}
}

// now is replaced in tests.
var now = time.Now

// Span is N units of time. N may be negative.
type Span struct {
	N    int
	Unit Unit
}

// From returns t moved forward by the span.
func (s Span) From(t time.Time) time.Time {
	switch s.Unit {
	case Second:
		return t.Add(time.Duration(s.N) * time.Second)
	case Minute:
		return t.Add(time.Duration(s.N) * time.Minute)
	case Hour:
		return t.Add(time.Duration(s.N) * time.Hour)
	case Day:
		return t.AddDate(0, 0, s.N)
	case Week:
		return t.AddDate(0, 0, 7*s.N)
	case Month:
		return t.AddDate(0, s.N, 0)
	case Year:
		return t.AddDate(s.N, 0, 0)
	default:
		return t
	}
}

// Before returns t moved back by the span.
func (s Span) Before(t time.Time) time.Time {
	return Span{N: -s.N, Unit: s.Unit}.From(t)
}

// FromNow returns the current time moved forward by the span.
func (s Span) FromNow() time.Time {
	return s.From(now())
}

// Ago returns the current time moved back by the span.
func (s Span) Ago() time.Time {
	return s.Before(now())
}

// Duration returns the span as a fixed duration. It reports false for the
// calendar units, whose length depends on the starting time.
func (s Span) Duration() (time.Duration, bool) {
	switch s.Unit {
	case Second:
		return time.Duration(s.N) * time.Second, true
	case Minute:
		return time.Duration(s.N) * time.Minute, true
	case Hour:
		return time.Duration(s.N) * time.Hour, true
	default:
		return 0, false
	}
}

// String formats the span as "<n> <unit>", pluralizing when n != 1.
func (s Span) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(s.N))
	sb.WriteByte(' ')
	sb.WriteString(s.Unit.String())
	if s.N != 1 && s.N != -1 {
		sb.WriteByte('s')
	}
	return sb.String()
}

// Seconds returns a span of n seconds.
func Seconds(n int) Span { return Span{N: n, Unit: Second} }

// Minutes returns a span of n minutes.
func Minutes(n int) Span { return Span{N: n, Unit: Minute} }

// Hours returns a span of n hours.
func Hours(n int) Span { return Span{N: n, Unit: Hour} }

// Days returns a span of n days.
func Days(n int) Span { return Span{N: n, Unit: Day} }

// Weeks returns a span of n weeks.
func Weeks(n int) Span { return Span{N: n, Unit: Week} }

// Months returns a span of n months.
func Months(n int) Span { return Span{N: n, Unit: Month} }

// Years returns a span of n years.
func Years(n int) Span { return Span{N: n, Unit: Year} }
