package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/printers"
	"github.com/studeolab/studeo/pkg/projection"
	"github.com/studeolab/studeo/pkg/store"
)

// Get prints one collection, or every collection when none is named.
type Get struct {
	Persistence *store.Store
	Collection  document.Collection
	ShowID      bool

	// Agenda filters, combined conjunctively when set.
	Pending   bool
	AreaID    string
	SubjectID string
	On        string

	// Calendar switches the agenda view to a month grid.
	Calendar bool
	Month    time.Time
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	doc := n.Persistence.Document()
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	switch n.Collection {
	case document.CollectionSchedule:
		pp.Title("Schedule")
		pp.Schedule(doc.Schedule...)
	case document.CollectionAlarms:
		pp.Title("Alarms")
		pp.Alarms(doc.Alarms...)
	case document.CollectionBoard:
		pp.Board(doc.Board)
	case document.CollectionAreas:
		pp.Title("Areas")
		pp.Areas(doc.Areas...)
	case document.CollectionBlocks:
		pp.Title("Blocks")
		pp.Blocks(doc.Blocks...)
	case document.CollectionTimetable:
		pp.Title("Timetable")
		pp.Timetable(doc)
	case document.CollectionSubjects:
		pp.Title("Subjects")
		pp.Subjects(doc.Subjects...)
	case document.CollectionAgenda:
		n.agenda(pp, doc)
	case "":
		pp.Title("Schedule")
		pp.Schedule(doc.Schedule...)
		pp.Title("Alarms")
		pp.Alarms(doc.Alarms...)
		pp.Board(doc.Board)
		pp.Title("Timetable")
		pp.Timetable(doc)
		pp.Title("Subjects")
		pp.Subjects(doc.Subjects...)
		n.agenda(pp, doc)
	default:
		return fmt.Errorf("unknown collection %q", n.Collection)
	}

	return nil
}

func (n *Get) agenda(pp printers.PrettyPrint, doc *document.Document) {
	if n.Calendar {
		month := n.Month
		if month.IsZero() {
			month = time.Now()
		}
		pp.AgendaCalendar(month, doc.Agenda)
		return
	}

	var preds []projection.Predicate
	if n.Pending {
		preds = append(preds, projection.Pending())
	}
	if n.AreaID != "" {
		preds = append(preds, projection.ByArea(n.AreaID))
	}
	if n.SubjectID != "" {
		preds = append(preds, projection.BySubject(n.SubjectID))
	}
	if n.On != "" {
		preds = append(preds, projection.OnDate(n.On))
	}

	var items []document.AgendaItem
	for item := range projection.FilterAgenda(doc.Agenda, projection.And(preds...)) {
		items = append(items, item)
	}

	pp.Title("Agenda")
	pp.Agenda(doc, items...)
}
