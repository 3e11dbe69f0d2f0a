package models

import (
	"strings"
	"time"
)

type Weekday string

const (
	WeekdayMonday    Weekday = "Monday"
	WeekdayTuesday   Weekday = "Tuesday"
	WeekdayWednesday Weekday = "Wednesday"
	WeekdayThursday  Weekday = "Thursday"
	WeekdayFriday    Weekday = "Friday"
	WeekdaySaturday  Weekday = "Saturday"
	WeekdaySunday    Weekday = "Sunday"
)

// ParseWeekday accepts full English names and the usual short tokens in any case.
func ParseWeekday(s string) (Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mon", "monday":
		return WeekdayMonday, true
	case "tue", "tues", "tuesday":
		return WeekdayTuesday, true
	case "wed", "wednesday":
		return WeekdayWednesday, true
	case "thu", "thur", "thurs", "thursday":
		return WeekdayThursday, true
	case "fri", "friday":
		return WeekdayFriday, true
	case "sat", "saturday":
		return WeekdaySaturday, true
	case "sun", "sunday":
		return WeekdaySunday, true
	}
	return "", false
}

func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday().String())
}

func (w Weekday) String() string {
	return string(w)
}

type FeeType string

const (
	FeeTypeDefault   FeeType = "default"
	FeeTypeRecurring FeeType = "recurring"
	FeeTypeEmergency FeeType = "emergency"
)

func (f FeeType) IsValid() bool {
	switch f {
	case FeeTypeDefault, FeeTypeRecurring, FeeTypeEmergency:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodOnline    PaymentMethod = "online"
	PaymentMethodInsurance PaymentMethod = "insurance"
	PaymentMethodCash      PaymentMethod = "cash"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodOnline, PaymentMethodInsurance, PaymentMethodCash:
		return true
	}
	return false
}
