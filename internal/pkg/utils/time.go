package utils

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"fmt"
	"regexp"
	"time"
)

const (
	LayoutDateOnly     = "2006-01-02"
	LayoutClock        = "15:04"
	LayoutClockSeconds = "15:04:05"
)

var (
	clockPattern = regexp.MustCompile(constvars.RegexClockHHMM)
	datePattern  = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
)

type Clock struct {
	H int
	M int
}

func (c Clock) Minutes() int {
	return c.H*60 + c.M
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.H, c.M)
}

func ClockFromMinutes(minutes int) Clock {
	return Clock{H: minutes / 60, M: minutes % 60}
}

// ParseClock accepts strictly zero-padded 24h "HH:MM".
func ParseClock(s string) (Clock, error) {
	if !clockPattern.MatchString(s) {
		return Clock{}, exceptions.ErrValidation(fmt.Sprintf("time %q %s", s, constvars.CustomValidationErrorMessages["hhmm"]))
	}
	t, err := time.Parse(LayoutClock, s)
	if err != nil {
		return Clock{}, exceptions.ErrValidation(fmt.Sprintf("time %q %s", s, constvars.CustomValidationErrorMessages["hhmm"]))
	}
	return Clock{H: t.Hour(), M: t.Minute()}, nil
}

// NormalizeClock drops the seconds from an "HH:MM:SS" value. Anything else,
// valid or not, is returned unchanged for ParseClock to judge.
func NormalizeClock(s string) string {
	if clockPattern.MatchString(s) {
		return s
	}
	t, err := time.Parse(LayoutClockSeconds, s)
	if err != nil {
		return s
	}
	return t.Format(LayoutClock)
}

func IsValidClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// ValidateTimeRange requires both bounds to be valid clock values with start strictly before end.
func ValidateTimeRange(start, end string) error {
	startClock, err := ParseClock(start)
	if err != nil {
		return err
	}
	endClock, err := ParseClock(end)
	if err != nil {
		return err
	}
	if startClock.Minutes() >= endClock.Minutes() {
		return exceptions.ErrInvalidTimeRange(fmt.Errorf("%s-%s", start, end))
	}
	return nil
}

// ParseDate parses "YYYY-MM-DD" as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if !datePattern.MatchString(s) {
		return time.Time{}, exceptions.ErrValidation(fmt.Sprintf("date %q %s", s, constvars.CustomValidationErrorMessages["date_only"]))
	}
	date, err := time.ParseInLocation(LayoutDateOnly, s, loc)
	if err != nil {
		return time.Time{}, exceptions.ErrValidation(fmt.Sprintf("date %q %s", s, constvars.CustomValidationErrorMessages["date_only"]))
	}
	return date, nil
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// IsNotBefore compares calendar days in date's location; the same day counts as not before.
func IsNotBefore(date, today time.Time) bool {
	today = today.In(date.Location())
	return !StartOfDay(date).Before(StartOfDay(today))
}

// CombineDateAndClock places clock on date's calendar day in date's location.
func CombineDateAndClock(date time.Time, clock Clock) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, clock.H, clock.M, 0, 0, date.Location())
}
