package store

import (
	"context"
	"testing"
	"time"

	"github.com/studeolab/studeo/pkg/document"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestWatchObservesExternalWrites(t *testing.T) {
	base := t.TempDir()

	watching, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := watching.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	// A second store over the same directory stands in for another
	// process writing the shared document.
	writer, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load writer store: %v", err)
	}
	if _, err := writer.AddTask(document.LaneTodo, "written elsewhere"); err != nil {
		t.Fatalf("add task: %v", err)
	}

	select {
	case <-events:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	// The event handler reloads before delivering, so the watching store
	// already sees the external write.
	board := watching.Document().Board
	if len(board.Todo) != 1 || board.Todo[0].Text != "written elsewhere" {
		t.Fatalf("expected reloaded board, got %+v", board)
	}
}

func TestRoundTripAcrossProcesses(t *testing.T) {
	base := t.TempDir()

	first, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	if _, err := first.AddScheduleEntry(document.ScheduleEntry{
		Time:  mustClock(t, "09:00"),
		Title: "Math",
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	second, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload store: %v", err)
	}
	schedule := second.Document().Schedule
	if len(schedule) != 1 || schedule[0].Title != "Math" {
		t.Fatalf("expected persisted schedule, got %+v", schedule)
	}
}
