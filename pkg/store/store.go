// Package store owns the planner document: it loads it once, applies
// validated mutations, keeps the sort invariants, persists the whole
// document synchronously after every change, and notifies subscribers.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/studeolab/studeo/pkg/document"
)

// documentKey is the fixed storage key. The version suffix changes with the
// schema; an unknown or stale key simply loads as the default document.
const documentKey = "planner-v1"

// Store is the single source of truth for the document. It assumes one
// writer; concurrent processes race last-writer-wins, which is acceptable
// for a single-user planner (see Watch for catching external writes).
type Store struct {
	backend  Backend
	basePath string

	mu   sync.Mutex
	doc  *document.Document
	subs map[int]chan Event
	next int
}

// Load opens the store using the provided config, or the ambient config
// when nil. The persisted document is read once; a missing or malformed
// value falls back to the default document and is not an error.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	s := &Store{
		backend:  newDiskvBackend(basePath),
		basePath: basePath,
		subs:     map[int]chan Event{},
	}
	s.doc = loadDocument(s.backend)
	return s, nil
}

// NewWithBackend builds a store over an arbitrary backend. Watch is
// unavailable without a filesystem base path.
func NewWithBackend(b Backend) *Store {
	return &Store{
		backend: b,
		doc:     loadDocument(b),
		subs:    map[int]chan Event{},
	}
}

func loadDocument(b Backend) *document.Document {
	data, err := b.Read(documentKey)
	if err != nil {
		return document.Default()
	}
	var doc document.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document.Default()
	}
	doc.Normalize()
	return &doc
}

// Document returns a deep copy of the current document. Callers project
// views from the copy; only store mutations change the real one.
func (s *Store) Document() *document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Reload re-reads the persisted document, discarding in-memory state. Used
// when Watch observes an external write.
func (s *Store) Reload() {
	s.mu.Lock()
	s.doc = loadDocument(s.backend)
	s.mu.Unlock()
}

// Save persists the given document and makes it current.
func (s *Store) Save(doc *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := doc.Clone()
	next.Normalize()
	if err := s.persist(next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

func (s *Store) persist(doc *document.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := s.backend.Write(documentKey, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// errNoChange short-circuits a mutation that found nothing to do. The
// document is not rewritten and subscribers are not notified.
var errNoChange = errors.New("no change")

// mutate runs fn against a clone of the document, persists the clone, and
// only then swaps it in. A persistence failure leaves the in-memory
// document exactly as it was.
func (s *Store) mutate(c document.Collection, fn func(d *document.Document) error) error {
	s.mu.Lock()
	next := s.doc.Clone()
	if err := fn(next); err != nil {
		s.mu.Unlock()
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}
	if err := s.persist(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = next
	s.mu.Unlock()
	s.notify(c)
	return nil
}

func reject(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// AddScheduleEntry validates and inserts a class, keeping the schedule
// sorted by time (stable, so equal times keep insertion order).
func (s *Store) AddScheduleEntry(e document.ScheduleEntry) ([]document.ScheduleEntry, error) {
	if err := e.Validate(); err != nil {
		return nil, reject(err)
	}
	if e.ID == "" {
		e.ID = document.NewID()
	}
	err := s.mutate(document.CollectionSchedule, func(d *document.Document) error {
		d.Schedule = append(d.Schedule, e)
		sortSchedule(d.Schedule)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Document().Schedule, nil
}

// AddAlarm validates and inserts an alarm, active until it first fires.
func (s *Store) AddAlarm(a document.Alarm) ([]document.Alarm, error) {
	if a.Label == "" {
		a.Label = "Alarm"
	}
	if err := a.Validate(); err != nil {
		return nil, reject(err)
	}
	if a.ID == "" {
		a.ID = document.NewID()
	}
	a.Active = true
	err := s.mutate(document.CollectionAlarms, func(d *document.Document) error {
		// Alarms keep insertion order; they have no sort invariant.
		d.Alarms = append(d.Alarms, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Document().Alarms, nil
}

// AddTask appends a task to the given board lane.
func (s *Store) AddTask(lane document.Lane, text string) (document.Board, error) {
	item := document.BoardItem{ID: document.NewID(), Text: text}
	if err := item.Validate(); err != nil {
		return document.Board{}, reject(err)
	}
	err := s.mutate(document.CollectionBoard, func(d *document.Document) error {
		switch lane {
		case document.LaneDone:
			d.Board.Done = append(d.Board.Done, item)
		default:
			d.Board.Todo = append(d.Board.Todo, item)
		}
		return nil
	})
	if err != nil {
		return document.Board{}, err
	}
	return s.Document().Board, nil
}

// AddArea inserts a category.
func (s *Store) AddArea(a document.Area) ([]document.Area, error) {
	if err := a.Validate(); err != nil {
		return nil, reject(err)
	}
	if a.ID == "" {
		a.ID = document.NewID()
	}
	err := s.mutate(document.CollectionAreas, func(d *document.Document) error {
		d.Areas = append(d.Areas, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Document().Areas, nil
}

// AddBlock inserts a timetable block, keeping blocks sorted by start.
func (s *Store) AddBlock(b document.TimeBlock) ([]document.TimeBlock, error) {
	if err := b.Validate(); err != nil {
		return nil, reject(err)
	}
	if b.ID == "" {
		b.ID = document.NewID()
	}
	err := s.mutate(document.CollectionBlocks, func(d *document.Document) error {
		d.Blocks = append(d.Blocks, b)
		sortBlocks(d.Blocks)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Document().Blocks, nil
}

// AddSubject inserts a course.
func (s *Store) AddSubject(sub document.Subject) ([]document.Subject, error) {
	if err := sub.Validate(); err != nil {
		return nil, reject(err)
	}
	if sub.ID == "" {
		sub.ID = document.NewID()
	}
	if sub.Grades == nil {
		sub.Grades = []int{}
	}
	err := s.mutate(document.CollectionSubjects, func(d *document.Document) error {
		d.Subjects = append(d.Subjects, sub)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Document().Subjects, nil
}

// AddAgendaItem inserts a dated task, keeping the agenda sorted by date
// ascending with undated items last.
func (s *Store) AddAgendaItem(i document.AgendaItem) ([]document.AgendaItem, error) {
	if err := i.Validate(); err != nil {
		return nil, reject(err)
	}
	if i.ID == "" {
		i.ID = document.NewID()
	}
	err := s.mutate(document.CollectionAgenda, func(d *document.Document) error {
		d.Agenda = append(d.Agenda, i)
		sortAgenda(d.Agenda)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Document().Agenda, nil
}

// RemoveEntry deletes the record with the given id from the collection.
// A missing id is a successful no-op.
func (s *Store) RemoveEntry(c document.Collection, id string) error {
	return s.mutate(c, func(d *document.Document) error {
		switch c {
		case document.CollectionSchedule:
			if out, ok := removeByID(d.Schedule, func(r document.ScheduleEntry) string { return r.ID }, id); ok {
				d.Schedule = out
				return nil
			}
		case document.CollectionAlarms:
			if out, ok := removeByID(d.Alarms, func(r document.Alarm) string { return r.ID }, id); ok {
				d.Alarms = out
				return nil
			}
		case document.CollectionBoard:
			itemID := func(r document.BoardItem) string { return r.ID }
			if out, ok := removeByID(d.Board.Todo, itemID, id); ok {
				d.Board.Todo = out
				return nil
			}
			if out, ok := removeByID(d.Board.Done, itemID, id); ok {
				d.Board.Done = out
				return nil
			}
		case document.CollectionAreas:
			// No cascade: agenda items keep their areaId and render as
			// "General" once the referent is gone.
			if out, ok := removeByID(d.Areas, func(r document.Area) string { return r.ID }, id); ok {
				d.Areas = out
				return nil
			}
		case document.CollectionBlocks:
			if out, ok := removeByID(d.Blocks, func(r document.TimeBlock) string { return r.ID }, id); ok {
				d.Blocks = out
				return nil
			}
		case document.CollectionSubjects:
			if out, ok := removeByID(d.Subjects, func(r document.Subject) string { return r.ID }, id); ok {
				d.Subjects = out
				return nil
			}
		case document.CollectionAgenda:
			if out, ok := removeByID(d.Agenda, func(r document.AgendaItem) string { return r.ID }, id); ok {
				d.Agenda = out
				return nil
			}
		}
		return errNoChange
	})
}

// ToggleField flips the record's boolean: Done for agenda items, Active
// for alarms. A missing id is a no-op.
func (s *Store) ToggleField(c document.Collection, id string) error {
	switch c {
	case document.CollectionAgenda:
		return s.mutate(c, func(d *document.Document) error {
			for i := range d.Agenda {
				if d.Agenda[i].ID == id {
					d.Agenda[i].Done = !d.Agenda[i].Done
					return nil
				}
			}
			return errNoChange
		})
	case document.CollectionAlarms:
		return s.mutate(c, func(d *document.Document) error {
			for i := range d.Alarms {
				if d.Alarms[i].ID == id {
					d.Alarms[i].Active = !d.Alarms[i].Active
					return nil
				}
			}
			return errNoChange
		})
	}
	return reject(fmt.Errorf("collection %q has no toggle field", c))
}

// DeactivateAlarm latches an alarm inactive after it fires. Idempotent.
func (s *Store) DeactivateAlarm(id string) error {
	return s.mutate(document.CollectionAlarms, func(d *document.Document) error {
		for i := range d.Alarms {
			if d.Alarms[i].ID == id && d.Alarms[i].Active {
				d.Alarms[i].Active = false
				return nil
			}
		}
		return errNoChange
	})
}

// MoveBetweenLanes transfers one board item, preserving its text exactly
// and appending at the tail of the destination. Missing id is a no-op.
func (s *Store) MoveBetweenLanes(from, to document.Lane, id string) error {
	if from == to {
		return nil
	}
	return s.mutate(document.CollectionBoard, func(d *document.Document) error {
		src := d.Board.Lane(from)
		for i, item := range src {
			if item.ID != id {
				continue
			}
			src = append(src[:i], src[i+1:]...)
			if from == document.LaneDone {
				d.Board.Done = src
				d.Board.Todo = append(d.Board.Todo, item)
			} else {
				d.Board.Todo = src
				d.Board.Done = append(d.Board.Done, item)
			}
			return nil
		}
		return errNoChange
	})
}

// AssignToSlot binds a subject to a (day, block) slot, replacing any prior
// assignment for that slot.
func (s *Store) AssignToSlot(day document.Weekday, blockID, subjectID string) error {
	if strings.TrimSpace(blockID) == "" || strings.TrimSpace(subjectID) == "" {
		return reject(errors.New("block and subject are required"))
	}
	return s.mutate(document.CollectionTimetable, func(d *document.Document) error {
		assignments := d.Timetable[day]
		out := assignments[:0]
		for _, a := range assignments {
			if a.BlockID != blockID {
				out = append(out, a)
			}
		}
		d.Timetable[day] = append(out, document.Assignment{BlockID: blockID, SubjectID: subjectID})
		return nil
	})
}

// ClearSlot removes the assignment for a (day, block) slot, if any.
func (s *Store) ClearSlot(day document.Weekday, blockID string) error {
	return s.mutate(document.CollectionTimetable, func(d *document.Document) error {
		assignments := d.Timetable[day]
		for i, a := range assignments {
			if a.BlockID == blockID {
				d.Timetable[day] = append(assignments[:i], assignments[i+1:]...)
				return nil
			}
		}
		return errNoChange
	})
}

// RecordGrade appends a grade percentage to the subject. Missing subject
// is a no-op.
func (s *Store) RecordGrade(subjectID string, grade int) error {
	if err := document.ValidateGrade(grade); err != nil {
		return reject(err)
	}
	return s.mutate(document.CollectionSubjects, func(d *document.Document) error {
		for i := range d.Subjects {
			if d.Subjects[i].ID == subjectID {
				d.Subjects[i].Grades = append(d.Subjects[i].Grades, grade)
				return nil
			}
		}
		return errNoChange
	})
}

// RecordAbsence adjusts the subject's absence tally, clamped at zero.
func (s *Store) RecordAbsence(subjectID string, delta int) error {
	return s.mutate(document.CollectionSubjects, func(d *document.Document) error {
		for i := range d.Subjects {
			if d.Subjects[i].ID == subjectID {
				next := d.Subjects[i].Absences + delta
				if next < 0 {
					next = 0
				}
				if next == d.Subjects[i].Absences {
					return errNoChange
				}
				d.Subjects[i].Absences = next
				return nil
			}
		}
		return errNoChange
	})
}

// SetTheme switches the rendering palette.
func (s *Store) SetTheme(t document.Theme) error {
	if err := document.ValidateTheme(t); err != nil {
		return reject(err)
	}
	return s.mutate(document.CollectionSettings, func(d *document.Document) error {
		d.Theme = t
		return nil
	})
}

// SetPrimaryColor records the accent color token.
func (s *Store) SetPrimaryColor(color string) error {
	return s.mutate(document.CollectionSettings, func(d *document.Document) error {
		d.PrimaryColor = color
		return nil
	})
}

func removeByID[T any](in []T, id func(T) string, target string) ([]T, bool) {
	for i, r := range in {
		if id(r) == target {
			return append(in[:i], in[i+1:]...), true
		}
	}
	return in, false
}

func sortSchedule(entries []document.ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.Before(entries[j].Time)
	})
}

func sortBlocks(blocks []document.TimeBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start.Before(blocks[j].Start)
	})
}

func sortAgenda(items []document.AgendaItem) {
	sort.SliceStable(items, func(i, j int) bool {
		// Undated items sort after every dated one.
		switch {
		case items[i].Date == "" && items[j].Date == "":
			return false
		case items[i].Date == "":
			return false
		case items[j].Date == "":
			return true
		default:
			return items[i].Date < items[j].Date
		}
	})
}
