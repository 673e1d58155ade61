package store

import (
	"errors"
	"testing"

	"github.com/studeolab/studeo/pkg/document"
)

type memBackend struct {
	data       map[string][]byte
	failWrites bool
}

func newMemBackend() *memBackend {
	return &memBackend{data: map[string][]byte{}}
}

func (m *memBackend) Read(key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func (m *memBackend) Write(key string, data []byte) error {
	if m.failWrites {
		return errors.New("disk full")
	}
	m.data[key] = data
	return nil
}

func mustClock(t *testing.T, v string) document.Clock {
	t.Helper()
	c, err := document.ParseClock(v)
	if err != nil {
		t.Fatalf("parse clock %q: %v", v, err)
	}
	return c
}

func TestAddScheduleEntryKeepsSortOrder(t *testing.T) {
	s := NewWithBackend(newMemBackend())

	for _, v := range []string{"11:00", "09:00", "10:00"} {
		if _, err := s.AddScheduleEntry(document.ScheduleEntry{
			Time:  mustClock(t, v),
			Title: "class at " + v,
		}); err != nil {
			t.Fatalf("add %s: %v", v, err)
		}
	}

	got := s.Document().Schedule
	want := []string{"09:00", "10:00", "11:00"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, v := range want {
		if got[i].Time.String() != v {
			t.Fatalf("position %d: expected %s, got %s", i, v, got[i].Time)
		}
	}
}

func TestAddScheduleEntryStableOnEqualTimes(t *testing.T) {
	s := NewWithBackend(newMemBackend())

	for _, title := range []string{"first", "second"} {
		if _, err := s.AddScheduleEntry(document.ScheduleEntry{
			Time:  mustClock(t, "09:00"),
			Title: title,
		}); err != nil {
			t.Fatalf("add %s: %v", title, err)
		}
	}

	got := s.Document().Schedule
	if got[0].Title != "first" || got[1].Title != "second" {
		t.Fatalf("equal times must keep insertion order, got %q then %q", got[0].Title, got[1].Title)
	}
}

func TestAddRejectsMissingRequiredFields(t *testing.T) {
	s := NewWithBackend(newMemBackend())

	if _, err := s.AddScheduleEntry(document.ScheduleEntry{Time: mustClock(t, "09:00")}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if got := len(s.Document().Schedule); got != 0 {
		t.Fatalf("rejected add must not change the document, found %d entries", got)
	}

	if _, err := s.AddAgendaItem(document.AgendaItem{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing title, got %v", err)
	}
	if _, err := s.AddBlock(document.TimeBlock{Name: "x", Start: mustClock(t, "10:00"), End: mustClock(t, "09:00")}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for end before start, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	backend := newMemBackend()
	s := NewWithBackend(backend)

	if _, err := s.AddScheduleEntry(document.ScheduleEntry{Time: mustClock(t, "09:00"), Title: "Math", Link: "https://zoom.example.com"}); err != nil {
		t.Fatalf("add class: %v", err)
	}
	if _, err := s.AddAlarm(document.Alarm{Time: mustClock(t, "07:30"), Label: "Wake up"}); err != nil {
		t.Fatalf("add alarm: %v", err)
	}
	if _, err := s.AddTask(document.LaneTodo, "read chapter 4"); err != nil {
		t.Fatalf("add task: %v", err)
	}
	subjects, err := s.AddSubject(document.Subject{Name: "History", Teacher: "Mrs. Poe"})
	if err != nil {
		t.Fatalf("add subject: %v", err)
	}
	if err := s.RecordGrade(subjects[0].ID, 88); err != nil {
		t.Fatalf("record grade: %v", err)
	}
	blocks, err := s.AddBlock(document.TimeBlock{Name: "P1", Start: mustClock(t, "08:00"), End: mustClock(t, "08:50")})
	if err != nil {
		t.Fatalf("add block: %v", err)
	}
	if err := s.AssignToSlot(document.Monday, blocks[0].ID, subjects[0].ID); err != nil {
		t.Fatalf("assign: %v", err)
	}

	want := s.Document()

	// A second store over the same backend observes exactly the same
	// document.
	reopened := NewWithBackend(backend)
	got := reopened.Document()

	if got.Schedule[0] != want.Schedule[0] {
		t.Fatalf("schedule diverged: %+v vs %+v", got.Schedule[0], want.Schedule[0])
	}
	if got.Alarms[0] != want.Alarms[0] {
		t.Fatalf("alarms diverged: %+v vs %+v", got.Alarms[0], want.Alarms[0])
	}
	if got.Board.Todo[0] != want.Board.Todo[0] {
		t.Fatalf("board diverged: %+v vs %+v", got.Board.Todo[0], want.Board.Todo[0])
	}
	if got.Subjects[0].Name != want.Subjects[0].Name || got.Subjects[0].Grades[0] != 88 {
		t.Fatalf("subjects diverged: %+v", got.Subjects[0])
	}
	if got.Timetable[document.Monday][0] != want.Timetable[document.Monday][0] {
		t.Fatalf("timetable diverged: %+v", got.Timetable)
	}
}

func TestLoadDefaultsOnMalformedDocument(t *testing.T) {
	backend := newMemBackend()
	backend.data[documentKey] = []byte("{not json")

	s := NewWithBackend(backend)
	doc := s.Document()
	if doc.Theme != document.ThemeLight {
		t.Fatalf("expected default theme, got %q", doc.Theme)
	}
	if len(doc.Schedule) != 0 || len(doc.Alarms) != 0 {
		t.Fatalf("expected empty default collections, got %+v", doc)
	}
}

func TestRemoveEntryMissingIDIsNoOp(t *testing.T) {
	s := NewWithBackend(newMemBackend())
	if _, err := s.AddScheduleEntry(document.ScheduleEntry{Time: mustClock(t, "09:00"), Title: "Math"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.RemoveEntry(document.CollectionSchedule, "nope"); err != nil {
		t.Fatalf("remove of missing id must succeed, got %v", err)
	}
	if got := len(s.Document().Schedule); got != 1 {
		t.Fatalf("collection changed on missing-id remove: %d entries", got)
	}
}

func TestRemoveEntry(t *testing.T) {
	s := NewWithBackend(newMemBackend())
	all, err := s.AddScheduleEntry(document.ScheduleEntry{Time: mustClock(t, "09:00"), Title: "Math"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.RemoveEntry(document.CollectionSchedule, all[0].ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := len(s.Document().Schedule); got != 0 {
		t.Fatalf("expected empty schedule, got %d entries", got)
	}
}

func TestMoveBetweenLanesPreservesTextAndCount(t *testing.T) {
	s := NewWithBackend(newMemBackend())
	board, err := s.AddTask(document.LaneTodo, "exact text, kept byte for byte")
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := s.AddTask(document.LaneTodo, "another"); err != nil {
		t.Fatalf("add task: %v", err)
	}

	id := board.Todo[0].ID
	if err := s.MoveBetweenLanes(document.LaneTodo, document.LaneDone, id); err != nil {
		t.Fatalf("move: %v", err)
	}

	got := s.Document().Board
	if len(got.Todo)+len(got.Done) != 2 {
		t.Fatalf("move changed total count: %d todo, %d done", len(got.Todo), len(got.Done))
	}
	if len(got.Done) != 1 || got.Done[0].Text != "exact text, kept byte for byte" {
		t.Fatalf("moved item corrupted: %+v", got.Done)
	}

	// Missing id moves silently do nothing.
	if err := s.MoveBetweenLanes(document.LaneTodo, document.LaneDone, "nope"); err != nil {
		t.Fatalf("missing-id move must succeed, got %v", err)
	}
	got = s.Document().Board
	if len(got.Todo) != 1 || len(got.Done) != 1 {
		t.Fatalf("missing-id move changed lanes: %+v", got)
	}
}

func TestAssignToSlotReplacesExisting(t *testing.T) {
	s := NewWithBackend(newMemBackend())

	if err := s.AssignToSlot(document.Monday, "b1", "s1"); err != nil {
		t.Fatalf("assign s1: %v", err)
	}
	if err := s.AssignToSlot(document.Monday, "b1", "s2"); err != nil {
		t.Fatalf("assign s2: %v", err)
	}

	assignments := s.Document().Timetable[document.Monday]
	if len(assignments) != 1 {
		t.Fatalf("expected exactly one assignment for the slot, got %d", len(assignments))
	}
	if assignments[0].SubjectID != "s2" {
		t.Fatalf("expected replacement subject s2, got %q", assignments[0].SubjectID)
	}
}

func TestToggleField(t *testing.T) {
	s := NewWithBackend(newMemBackend())
	all, err := s.AddAgendaItem(document.AgendaItem{Title: "essay"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.ToggleField(document.CollectionAgenda, all[0].ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !s.Document().Agenda[0].Done {
		t.Fatal("expected item done after toggle")
	}

	// Missing id is a no-op.
	if err := s.ToggleField(document.CollectionAgenda, "nope"); err != nil {
		t.Fatalf("missing-id toggle must succeed, got %v", err)
	}

	// Collections without a boolean reject.
	if err := s.ToggleField(document.CollectionSchedule, all[0].ID); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAgendaSortsUndatedLast(t *testing.T) {
	s := NewWithBackend(newMemBackend())

	adds := []document.AgendaItem{
		{Title: "undated one"},
		{Title: "late", Date: "2026-09-20"},
		{Title: "undated two"},
		{Title: "early", Date: "2026-09-01"},
	}
	for _, item := range adds {
		if _, err := s.AddAgendaItem(item); err != nil {
			t.Fatalf("add %q: %v", item.Title, err)
		}
	}

	got := s.Document().Agenda
	want := []string{"early", "late", "undated one", "undated two"}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, got[i].Title)
		}
	}
}

func TestPersistenceFailureRollsBack(t *testing.T) {
	backend := newMemBackend()
	s := NewWithBackend(backend)
	if _, err := s.AddScheduleEntry(document.ScheduleEntry{Time: mustClock(t, "09:00"), Title: "Math"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	backend.failWrites = true

	if _, err := s.AddScheduleEntry(document.ScheduleEntry{Time: mustClock(t, "10:00"), Title: "History"}); !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}

	// In-memory state must match what is durable: still just Math.
	got := s.Document().Schedule
	if len(got) != 1 || got[0].Title != "Math" {
		t.Fatalf("in-memory document diverged after failed persist: %+v", got)
	}

	if err := s.RemoveEntry(document.CollectionSchedule, got[0].ID); !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence on remove, got %v", err)
	}
	if len(s.Document().Schedule) != 1 {
		t.Fatal("remove applied in memory despite failed persist")
	}
}

func TestDeactivateAlarmIsIdempotent(t *testing.T) {
	s := NewWithBackend(newMemBackend())
	all, err := s.AddAlarm(document.Alarm{Time: mustClock(t, "07:00")})
	if err != nil {
		t.Fatalf("add alarm: %v", err)
	}
	if all[0].Label != "Alarm" {
		t.Fatalf("expected default label, got %q", all[0].Label)
	}

	if err := s.DeactivateAlarm(all[0].ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if s.Document().Alarms[0].Active {
		t.Fatal("alarm still active")
	}
	if err := s.DeactivateAlarm(all[0].ID); err != nil {
		t.Fatalf("second deactivate must be a no-op, got %v", err)
	}
}

func TestRecordGradeBounds(t *testing.T) {
	s := NewWithBackend(newMemBackend())
	subjects, err := s.AddSubject(document.Subject{Name: "Physics"})
	if err != nil {
		t.Fatalf("add subject: %v", err)
	}

	if err := s.RecordGrade(subjects[0].ID, 101); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for 101, got %v", err)
	}
	if err := s.RecordGrade(subjects[0].ID, -1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for -1, got %v", err)
	}
	if err := s.RecordGrade(subjects[0].ID, 100); err != nil {
		t.Fatalf("grade 100: %v", err)
	}
}

func TestSubscribeSeesMutations(t *testing.T) {
	s := NewWithBackend(newMemBackend())
	events, cancel := s.Subscribe()
	defer cancel()

	if _, err := s.AddTask(document.LaneTodo, "x"); err != nil {
		t.Fatalf("add: %v", err)
	}

	select {
	case ev := <-events:
		if ev.Collection != document.CollectionBoard {
			t.Fatalf("expected board event, got %q", ev.Collection)
		}
	default:
		t.Fatal("expected a buffered event after mutation")
	}
}
