package add

import (
	"context"
	"errors"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/printers"
	"github.com/studeolab/studeo/pkg/store"
)

// Add inserts one record into whichever collection field is set, then
// prints the updated collection.
type Add struct {
	Persistence *store.Store
	ShowID      bool

	Class   *document.ScheduleEntry
	Alarm   *document.Alarm
	Task    *string
	Lane    document.Lane
	Area    *document.Area
	Block   *document.TimeBlock
	Subject *document.Subject
	Agenda  *document.AgendaItem
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	switch {
	case n.Class != nil:
		all, err := n.Persistence.AddScheduleEntry(*n.Class)
		if err != nil {
			return err
		}
		pp.Title("Schedule")
		pp.Schedule(all...)
	case n.Alarm != nil:
		all, err := n.Persistence.AddAlarm(*n.Alarm)
		if err != nil {
			return err
		}
		pp.Title("Alarms")
		pp.Alarms(all...)
	case n.Task != nil:
		board, err := n.Persistence.AddTask(n.Lane, *n.Task)
		if err != nil {
			return err
		}
		pp.Board(board)
	case n.Area != nil:
		all, err := n.Persistence.AddArea(*n.Area)
		if err != nil {
			return err
		}
		pp.Title("Areas")
		pp.Areas(all...)
	case n.Block != nil:
		all, err := n.Persistence.AddBlock(*n.Block)
		if err != nil {
			return err
		}
		pp.Title("Blocks")
		pp.Blocks(all...)
	case n.Subject != nil:
		all, err := n.Persistence.AddSubject(*n.Subject)
		if err != nil {
			return err
		}
		pp.Title("Subjects")
		pp.Subjects(all...)
	case n.Agenda != nil:
		all, err := n.Persistence.AddAgendaItem(*n.Agenda)
		if err != nil {
			return err
		}
		pp.Title("Agenda")
		pp.Agenda(n.Persistence.Document(), all...)
	default:
		return errors.New("nothing to add")
	}

	return nil
}
