package document

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// LayoutISO is the layout for agenda item dates.
const LayoutISO = "2006-01-02"

// NewID generates a stable record id. Records are always addressed by id,
// never by array position, so reordering a collection cannot invalidate a
// reference captured earlier.
func NewID() string {
	return uuid.NewString()
}

// ScheduleEntry is one class or meeting in the daily schedule.
type ScheduleEntry struct {
	ID    string `json:"id"`
	Time  Clock  `json:"time"`
	Title string `json:"title"`
	Link  string `json:"link,omitempty"`
}

func (e ScheduleEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required, validation.Length(1, 200)),
	)
}

// Alarm is a one-shot reminder. Active latches false once the alarm fires;
// the record stays in the collection until the user removes it.
type Alarm struct {
	ID     string `json:"id"`
	Time   Clock  `json:"time"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

func (a Alarm) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Label, validation.Length(0, 200)),
	)
}

// Lane names one of the two task board lanes.
type Lane string

const (
	LaneTodo Lane = "todo"
	LaneDone Lane = "done"
)

// ParseLane validates a lane name.
func ParseLane(raw string) (Lane, error) {
	switch Lane(raw) {
	case LaneTodo, LaneDone:
		return Lane(raw), nil
	}
	return "", fmt.Errorf("document: unknown lane %q", raw)
}

// BoardItem is one task on the board. Text is opaque and preserved
// byte-for-byte across lane moves.
type BoardItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (i BoardItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Text, validation.Required),
	)
}

// Board holds the two task lanes.
type Board struct {
	Todo []BoardItem `json:"todo"`
	Done []BoardItem `json:"done"`
}

// Lane returns the named lane slice.
func (b *Board) Lane(l Lane) []BoardItem {
	if l == LaneDone {
		return b.Done
	}
	return b.Todo
}

// AreaKind partitions areas into the two calendars of student life.
type AreaKind string

const (
	KindAcademic AreaKind = "academic"
	KindPersonal AreaKind = "personal"
)

// Area is a category referenced by agenda items. Deleting an area does not
// cascade; dangling references render as "General".
type Area struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Color string   `json:"color,omitempty"`
	Kind  AreaKind `json:"kind,omitempty"`
}

func (a Area) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&a.Kind, validation.In(KindAcademic, KindPersonal)),
	)
}

// TimeBlock is a named interval in the weekly timetable. Intervals are
// half-open [Start, End). Overlapping blocks are allowed but contested
// minutes resolve to the earliest block by start.
type TimeBlock struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Start Clock  `json:"start"`
	End   Clock  `json:"end"`
}

func (b TimeBlock) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&b.End, validation.By(func(any) error {
			if !b.Start.Before(b.End) {
				return fmt.Errorf("must be after start (%s)", b.Start)
			}
			return nil
		})),
	)
}

// Contains reports whether the instant falls inside the half-open interval.
func (b TimeBlock) Contains(now Clock) bool {
	return !now.Before(b.Start) && now.Before(b.End)
}

// Assignment binds a subject to a time block for one weekday. At most one
// assignment exists per (day, block); assigning again replaces it.
type Assignment struct {
	BlockID   string `json:"blockId"`
	SubjectID string `json:"subjectId"`
}

// Timetable maps each weekday to its block assignments.
type Timetable map[Weekday][]Assignment

// Subject is a course with its grade and attendance tallies.
type Subject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Teacher  string `json:"teacher,omitempty"`
	Color    string `json:"color,omitempty"`
	Absences int    `json:"absences"`
	Grades   []int  `json:"grades"`
}

func (s Subject) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&s.Absences, validation.Min(0)),
	)
}

// ValidateGrade bounds a grade percentage.
func ValidateGrade(grade int) error {
	return validation.Validate(grade, validation.Min(0), validation.Max(100))
}

// AgendaItem is a dated task or deadline. Date is an ISO "2006-01-02"
// string or empty for undated items, which sort after all dated ones.
type AgendaItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	AreaID    string `json:"areaId,omitempty"`
	SubjectID string `json:"subjectId,omitempty"`
	Date      string `json:"date,omitempty"`
	Done      bool   `json:"done"`
}

func (i AgendaItem) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&i.Date, validation.Date(LayoutISO)),
	)
}
