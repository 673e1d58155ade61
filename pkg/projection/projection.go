// Package projection derives read-only views from the planner document.
// Every function is pure: the caller supplies the current time, so the
// projections are deterministic and testable.
package projection

import (
	"math"

	"github.com/studeolab/studeo/pkg/document"
)

// BlockStatus classifies the result of ActiveBlock.
type BlockStatus int

const (
	// BlockNone means no block remains today.
	BlockNone BlockStatus = iota
	// BlockCurrent means now falls inside the returned block.
	BlockCurrent
	// BlockNext means the returned block is the next one to start.
	BlockNext
)

// ActiveBlock scans the day's blocks in sorted order and returns the block
// whose half-open [start, end) interval contains now, else the earliest
// block starting after now, else none. When blocks overlap, the first
// match in start order wins.
func ActiveBlock(blocks []document.TimeBlock, now document.Clock) (document.TimeBlock, BlockStatus) {
	for _, b := range blocks {
		if b.Contains(now) {
			return b, BlockCurrent
		}
	}
	for _, b := range blocks {
		if b.Start.After(now) {
			return b, BlockNext
		}
	}
	return document.TimeBlock{}, BlockNone
}

// DayEntry is one resolved timetable slot: the block plus the assigned
// subject. A dangling subject reference comes back as the zero Subject;
// callers render a fallback label instead of failing.
type DayEntry struct {
	Block   document.TimeBlock
	Subject document.Subject
}

// DaySchedule resolves one weekday's assignments in block-start order,
// skipping assignments whose block no longer exists.
func DaySchedule(d *document.Document, day document.Weekday) []DayEntry {
	var out []DayEntry
	for _, b := range d.Blocks {
		for _, a := range d.Timetable[day] {
			if a.BlockID != b.ID {
				continue
			}
			subject, _ := d.SubjectByID(a.SubjectID)
			out = append(out, DayEntry{Block: b, Subject: subject})
		}
	}
	return out
}

// DueAlarms returns every active alarm matching now exactly, at minute
// granularity. Poll at most once per minute boundary and deactivate each
// returned alarm immediately, or the same minute will match again.
func DueAlarms(alarms []document.Alarm, now document.Clock) []document.Alarm {
	var due []document.Alarm
	for _, a := range alarms {
		if a.Active && a.Time == now {
			due = append(due, a)
		}
	}
	return due
}

// NextAlarm returns the earliest active alarm by time of day. This is
// deliberately naive: it does not wrap to tomorrow.
func NextAlarm(alarms []document.Alarm) (document.Alarm, bool) {
	var best document.Alarm
	found := false
	for _, a := range alarms {
		if !a.Active {
			continue
		}
		if !found || a.Time.Before(best.Time) {
			best = a
			found = true
		}
	}
	return best, found
}

// NextClass returns the earliest schedule entry at or after now.
func NextClass(entries []document.ScheduleEntry, now document.Clock) (document.ScheduleEntry, bool) {
	for _, e := range entries {
		if !e.Time.Before(now) {
			return e, true
		}
	}
	return document.ScheduleEntry{}, false
}

// Average is the arithmetic mean of the grades rounded half-up, or 0 for
// an empty sequence.
func Average(grades []int) int {
	if len(grades) == 0 {
		return 0
	}
	sum := 0
	for _, g := range grades {
		sum += g
	}
	return int(math.Round(float64(sum) / float64(len(grades))))
}
