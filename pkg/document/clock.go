package document

import (
	"encoding/json"
	"fmt"
	"time"
)

// Clock is a time of day at minute granularity, stored as minutes since
// midnight. It serialises as a zero-padded "HH:MM" string, which keeps the
// persisted form lexicographically ordered.
type Clock int

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(v string) (Clock, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(v, "%2d:%2d", &hh, &mm); err != nil || len(v) != 5 || v[2] != ':' {
		return 0, fmt.Errorf("document: invalid time %q, want HH:MM", v)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("document: time %q out of range", v)
	}
	return Clock(hh*60 + mm), nil
}

// ClockOf truncates a wall-clock instant to minute granularity.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) Before(o Clock) bool { return c < o }
func (c Clock) After(o Clock) bool  { return c > o }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c)), nil
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := ParseClock(v)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
