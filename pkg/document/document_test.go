package document

import (
	"encoding/json"
	"testing"
)

func TestDefaultDocument(t *testing.T) {
	d := Default()
	if d.Theme != ThemeLight {
		t.Fatalf("expected light theme, got %q", d.Theme)
	}
	if d.Schedule == nil || d.Alarms == nil || d.Areas == nil || d.Blocks == nil ||
		d.Subjects == nil || d.Agenda == nil || d.Timetable == nil ||
		d.Board.Todo == nil || d.Board.Done == nil {
		t.Fatal("default document must have no nil collections")
	}
}

func TestNormalizeFillsHoles(t *testing.T) {
	var d Document
	if err := json.Unmarshal([]byte(`{"theme":"neon","subjects":[{"id":"s1","name":"Math"}]}`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	d.Normalize()

	if d.Theme != ThemeLight {
		t.Fatalf("unknown theme must fall back to light, got %q", d.Theme)
	}
	if d.Subjects[0].Grades == nil {
		t.Fatal("missing grades must default to an empty slice")
	}
	if d.Agenda == nil || d.Timetable == nil {
		t.Fatal("missing collections must default to empty")
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := Default()
	d.Subjects = []Subject{{ID: "s1", Name: "Math", Grades: []int{90}}}
	d.Timetable[Monday] = []Assignment{{BlockID: "b1", SubjectID: "s1"}}

	c := d.Clone()
	c.Subjects[0].Grades[0] = 10
	c.Timetable[Monday][0].SubjectID = "changed"
	c.Schedule = append(c.Schedule, ScheduleEntry{ID: "x", Title: "X"})

	if d.Subjects[0].Grades[0] != 90 {
		t.Fatal("clone shares grade storage with the original")
	}
	if d.Timetable[Monday][0].SubjectID != "s1" {
		t.Fatal("clone shares timetable storage with the original")
	}
	if len(d.Schedule) != 0 {
		t.Fatal("clone shares schedule storage with the original")
	}
}

func TestAreaNameFallsBackToGeneral(t *testing.T) {
	d := Default()
	d.Areas = []Area{{ID: "a1", Name: "Chores"}}

	if got := d.AreaName("a1"); got != "Chores" {
		t.Fatalf("expected Chores, got %q", got)
	}
	if got := d.AreaName("deleted"); got != "General" {
		t.Fatalf("dangling reference must render General, got %q", got)
	}
	if got := d.AreaName(""); got != "General" {
		t.Fatalf("empty reference must render General, got %q", got)
	}
}

func TestResolveID(t *testing.T) {
	d := Default()
	d.Agenda = []AgendaItem{
		{ID: "abc123", Title: "one"},
		{ID: "abd456", Title: "two"},
	}

	if id, ok := d.ResolveID(CollectionAgenda, "abc123"); !ok || id != "abc123" {
		t.Fatalf("exact id must resolve, got %q (%v)", id, ok)
	}
	if id, ok := d.ResolveID(CollectionAgenda, "abc"); !ok || id != "abc123" {
		t.Fatalf("unique prefix must resolve, got %q (%v)", id, ok)
	}
	if _, ok := d.ResolveID(CollectionAgenda, "ab"); ok {
		t.Fatal("ambiguous prefix must not resolve")
	}
	if _, ok := d.ResolveID(CollectionAgenda, "zz"); ok {
		t.Fatal("unknown prefix must not resolve")
	}
}

func TestParseWeekday(t *testing.T) {
	if d, err := ParseWeekday("monday"); err != nil || d != Monday {
		t.Fatalf("expected Monday, got %q (%v)", d, err)
	}
	if d, err := ParseWeekday("Tue"); err != nil || d != Tuesday {
		t.Fatalf("expected Tuesday, got %q (%v)", d, err)
	}
	if _, err := ParseWeekday("t"); err == nil {
		t.Fatal("expected ambiguity error for t")
	}
	if _, err := ParseWeekday("noday"); err == nil {
		t.Fatal("expected error for unknown day")
	}
}

func TestRecordValidation(t *testing.T) {
	if err := (ScheduleEntry{Title: "Math"}).Validate(); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}
	if err := (ScheduleEntry{}).Validate(); err == nil {
		t.Fatal("entry without title must be rejected")
	}
	if err := (AgendaItem{Title: "x", Date: "not-a-date"}).Validate(); err == nil {
		t.Fatal("bad date must be rejected")
	}
	if err := (AgendaItem{Title: "x", Date: "2026-09-01"}).Validate(); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}
	if err := (Area{Name: "Chores", Kind: "weird"}).Validate(); err == nil {
		t.Fatal("unknown area kind must be rejected")
	}
	if err := ValidateGrade(101); err == nil {
		t.Fatal("grade above 100 must be rejected")
	}
}
