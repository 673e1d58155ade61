// Package document defines the planner's persistent document: a single
// aggregate root holding every collection, serialised as one JSON value.
package document

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Theme selects the rendering palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Collection names a record group within the document.
type Collection string

const (
	CollectionSchedule  Collection = "schedule"
	CollectionAlarms    Collection = "alarms"
	CollectionBoard     Collection = "board"
	CollectionAreas     Collection = "areas"
	CollectionBlocks    Collection = "blocks"
	CollectionTimetable Collection = "timetable"
	CollectionSubjects  Collection = "subjects"
	CollectionAgenda    Collection = "agenda"
	CollectionSettings  Collection = "settings"
)

// Document is the aggregate root. There is exactly one per installation;
// every view is a projection of it and every mutation rewrites it whole.
type Document struct {
	Theme        Theme           `json:"theme"`
	PrimaryColor string          `json:"primaryColor,omitempty"`
	Schedule     []ScheduleEntry `json:"schedule"`
	Alarms       []Alarm         `json:"alarms"`
	Board        Board           `json:"board"`
	Areas        []Area          `json:"areas"`
	Blocks       []TimeBlock     `json:"blocks"`
	Timetable    Timetable       `json:"timetable"`
	Subjects     []Subject       `json:"subjects"`
	Agenda       []AgendaItem    `json:"agenda"`
}

// Default returns the document a fresh installation starts from. It is also
// the recovery value when the persisted document is missing or malformed.
func Default() *Document {
	d := &Document{Theme: ThemeLight}
	d.Normalize()
	return d
}

// Normalize fills nil collections and defaults so a document loaded from an
// older or partial serialisation has no holes.
func (d *Document) Normalize() {
	if d.Theme != ThemeLight && d.Theme != ThemeDark {
		d.Theme = ThemeLight
	}
	if d.Schedule == nil {
		d.Schedule = []ScheduleEntry{}
	}
	if d.Alarms == nil {
		d.Alarms = []Alarm{}
	}
	if d.Board.Todo == nil {
		d.Board.Todo = []BoardItem{}
	}
	if d.Board.Done == nil {
		d.Board.Done = []BoardItem{}
	}
	if d.Areas == nil {
		d.Areas = []Area{}
	}
	if d.Blocks == nil {
		d.Blocks = []TimeBlock{}
	}
	if d.Timetable == nil {
		d.Timetable = Timetable{}
	}
	if d.Subjects == nil {
		d.Subjects = []Subject{}
	}
	if d.Agenda == nil {
		d.Agenda = []AgendaItem{}
	}
	for i := range d.Subjects {
		if d.Subjects[i].Grades == nil {
			d.Subjects[i].Grades = []int{}
		}
	}
}

// Clone returns a deep copy. Mutations operate on a clone so a failed
// persist leaves the live document untouched.
func (d *Document) Clone() *Document {
	out := &Document{
		Theme:        d.Theme,
		PrimaryColor: d.PrimaryColor,
		Schedule:     append([]ScheduleEntry{}, d.Schedule...),
		Alarms:       append([]Alarm{}, d.Alarms...),
		Board: Board{
			Todo: append([]BoardItem{}, d.Board.Todo...),
			Done: append([]BoardItem{}, d.Board.Done...),
		},
		Areas:     append([]Area{}, d.Areas...),
		Blocks:    append([]TimeBlock{}, d.Blocks...),
		Timetable: Timetable{},
		Subjects:  make([]Subject, len(d.Subjects)),
		Agenda:    append([]AgendaItem{}, d.Agenda...),
	}
	for day, assignments := range d.Timetable {
		out.Timetable[day] = append([]Assignment{}, assignments...)
	}
	for i, s := range d.Subjects {
		s.Grades = append([]int{}, s.Grades...)
		out.Subjects[i] = s
	}
	return out
}

// ValidateTheme checks a theme name.
func ValidateTheme(t Theme) error {
	return validation.Validate(string(t), validation.Required, validation.In(string(ThemeLight), string(ThemeDark)))
}

// AreaName resolves an area id for display. Missing or dangling references
// degrade to "General" rather than failing.
func (d *Document) AreaName(id string) string {
	if id == "" {
		return "General"
	}
	for _, a := range d.Areas {
		if a.ID == id {
			return a.Name
		}
	}
	return "General"
}

// SubjectByID returns the subject and whether it exists.
func (d *Document) SubjectByID(id string) (Subject, bool) {
	for _, s := range d.Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// BlockByID returns the time block and whether it exists.
func (d *Document) BlockByID(id string) (TimeBlock, bool) {
	for _, b := range d.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return TimeBlock{}, false
}

// ResolveID expands an id prefix typed at the CLI to a full record id within
// one collection. An exact match wins; otherwise the prefix must identify
// exactly one record.
func (d *Document) ResolveID(c Collection, prefix string) (string, bool) {
	ids := d.collectionIDs(c)
	for _, id := range ids {
		if id == prefix {
			return id, true
		}
	}
	var found string
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			if found != "" {
				return "", false
			}
			found = id
		}
	}
	return found, found != ""
}

func (d *Document) collectionIDs(c Collection) []string {
	var ids []string
	switch c {
	case CollectionSchedule:
		for _, r := range d.Schedule {
			ids = append(ids, r.ID)
		}
	case CollectionAlarms:
		for _, r := range d.Alarms {
			ids = append(ids, r.ID)
		}
	case CollectionBoard:
		for _, r := range d.Board.Todo {
			ids = append(ids, r.ID)
		}
		for _, r := range d.Board.Done {
			ids = append(ids, r.ID)
		}
	case CollectionAreas:
		for _, r := range d.Areas {
			ids = append(ids, r.ID)
		}
	case CollectionBlocks:
		for _, r := range d.Blocks {
			ids = append(ids, r.ID)
		}
	case CollectionSubjects:
		for _, r := range d.Subjects {
			ids = append(ids, r.ID)
		}
	case CollectionAgenda:
		for _, r := range d.Agenda {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
