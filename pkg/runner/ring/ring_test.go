package ring

import (
	"errors"
	"testing"
	"time"

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

type recordingRinger struct {
	labels []string
}

func (r *recordingRinger) Ring(label string) {
	r.labels = append(r.labels, label)
}

func TestTickFiresDueAlarmsOnce(t *testing.T) {
	s := store.NewWithBackend(&memBackend{data: map[string][]byte{}})
	due, err := document.ParseClock("07:30")
	if err != nil {
		t.Fatalf("parse clock: %v", err)
	}
	if _, err := s.AddAlarm(document.Alarm{Time: due, Label: "Wake up"}); err != nil {
		t.Fatalf("add alarm: %v", err)
	}

	r := &Ring{Persistence: s}
	ringer := &recordingRinger{}
	at := time.Date(2026, 9, 1, 7, 30, 12, 0, time.Local)

	if err := r.tick(at, ringer); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(ringer.labels) != 1 || ringer.labels[0] != "Wake up" {
		t.Fatalf("expected one firing, got %v", ringer.labels)
	}

	// The alarm latched inactive, so a later poll in the same minute
	// stays silent.
	if err := r.tick(at.Add(20*time.Second), ringer); err != nil {
		t.Fatalf("second tick: %v", err)
	}
	if len(ringer.labels) != 1 {
		t.Fatalf("alarm fired twice: %v", ringer.labels)
	}

	if s.Document().Alarms[0].Active {
		t.Fatal("fired alarm must be inactive")
	}
}

func TestTickIgnoresInactiveAndOffMinuteAlarms(t *testing.T) {
	s := store.NewWithBackend(&memBackend{data: map[string][]byte{}})
	at, err := document.ParseClock("08:00")
	if err != nil {
		t.Fatalf("parse clock: %v", err)
	}
	alarms, err := s.AddAlarm(document.Alarm{Time: at, Label: "Off"})
	if err != nil {
		t.Fatalf("add alarm: %v", err)
	}
	if err := s.DeactivateAlarm(alarms[0].ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	r := &Ring{Persistence: s}
	ringer := &recordingRinger{}

	if err := r.tick(time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local), ringer); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if len(ringer.labels) != 0 {
		t.Fatalf("inactive alarm fired: %v", ringer.labels)
	}
}
