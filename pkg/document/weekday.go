package document

import (
	"fmt"
	"strings"
	"time"
)

// Weekday names a day of the week as it is keyed in the timetable.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays returns the seven days in timetable order, Monday first.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday accepts a full day name or unambiguous prefix, any case.
func ParseWeekday(raw string) (Weekday, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return "", fmt.Errorf("document: weekday required")
	}
	var match Weekday
	for _, d := range Weekdays() {
		if strings.HasPrefix(strings.ToLower(string(d)), needle) {
			if match != "" {
				return "", fmt.Errorf("document: ambiguous weekday %q", raw)
			}
			match = d
		}
	}
	if match == "" {
		return "", fmt.Errorf("document: unknown weekday %q", raw)
	}
	return match, nil
}

// WeekdayOf converts the standard library weekday for an instant.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday().String())
}
