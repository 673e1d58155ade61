package dashboard

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/store"
)

type memBackend struct {
	data map[string][]byte
}

func (m *memBackend) Read(key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func (m *memBackend) Write(key string, data []byte) error {
	m.data[key] = data
	return nil
}

func fixtureStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.NewWithBackend(&memBackend{data: map[string][]byte{}})

	nine, _ := document.ParseClock("09:00")
	ten, _ := document.ParseClock("10:00")
	eleven, _ := document.ParseClock("11:00")

	if _, err := s.AddScheduleEntry(document.ScheduleEntry{Time: eleven, Title: "History"}); err != nil {
		t.Fatalf("add class: %v", err)
	}
	if _, err := s.AddBlock(document.TimeBlock{Name: "P1", Start: nine, End: ten}); err != nil {
		t.Fatalf("add block: %v", err)
	}
	if _, err := s.AddAgendaItem(document.AgendaItem{Title: "essay", Date: "2026-09-04"}); err != nil {
		t.Fatalf("add agenda: %v", err)
	}
	return s
}

func fixedClock(t *testing.T, hhmm string) func() time.Time {
	t.Helper()
	c, err := document.ParseClock(hhmm)
	if err != nil {
		t.Fatalf("parse clock: %v", err)
	}
	// 2026-08-31 is a Monday.
	return func() time.Time {
		return time.Date(2026, 8, 31, c.Hour(), c.Minute(), 0, 0, time.Local)
	}
}

func TestViewShowsProjections(t *testing.T) {
	m := newModel(fixtureStore(t), fixedClock(t, "09:30"))

	view := m.View()
	if !strings.Contains(view, "P1") {
		t.Fatalf("expected current block in view:\n%s", view)
	}
	if !strings.Contains(view, "History") {
		t.Fatalf("expected next class in view:\n%s", view)
	}
	if !strings.Contains(view, "essay") {
		t.Fatalf("expected pending agenda item in view:\n%s", view)
	}
}

func TestViewAfterHours(t *testing.T) {
	m := newModel(fixtureStore(t), fixedClock(t, "12:00"))

	view := m.View()
	if !strings.Contains(view, "no blocks remaining today") {
		t.Fatalf("expected the after-hours message:\n%s", view)
	}
}

func TestTickDeactivatesDueAlarm(t *testing.T) {
	s := fixtureStore(t)
	at, _ := document.ParseClock("09:30")
	if _, err := s.AddAlarm(document.Alarm{Time: at, Label: "Stretch"}); err != nil {
		t.Fatalf("add alarm: %v", err)
	}

	clock := fixedClock(t, "09:30")
	m := newModel(s, clock)

	next, _ := m.Update(tickMsg(clock()))
	m = next.(model)

	if m.doc.Alarms[0].Active {
		t.Fatal("due alarm must be latched inactive by the tick")
	}
	if s.Document().Alarms[0].Active {
		t.Fatal("deactivation must be persisted")
	}
}

func keyMsg(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuitKeys(t *testing.T) {
	m := newModel(fixtureStore(t), fixedClock(t, "09:30"))
	if _, cmd := m.Update(keyMsg("q")); cmd == nil {
		t.Fatal("q must quit")
	}
}
