package assign

import (
	"context"
	"errors"
	"fmt"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/printers"
	"github.com/studeolab/studeo/pkg/store"
)

// Assign binds a subject to a (day, block) timetable slot, or clears the
// slot. Assigning an occupied slot replaces the prior subject.
type Assign struct {
	Persistence *store.Store
	Day         document.Weekday
	BlockID     string
	SubjectID   string
	Clear       bool
	ShowID      bool
}

func (n *Assign) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not assign, no persistence")
	}

	doc := n.Persistence.Document()

	blockID, ok := doc.ResolveID(document.CollectionBlocks, n.BlockID)
	if !ok {
		return fmt.Errorf("no block matches %q", n.BlockID)
	}

	if n.Clear {
		if err := n.Persistence.ClearSlot(n.Day, blockID); err != nil {
			return err
		}
	} else {
		subjectID, ok := doc.ResolveID(document.CollectionSubjects, n.SubjectID)
		if !ok {
			return fmt.Errorf("no subject matches %q", n.SubjectID)
		}
		if err := n.Persistence.AssignToSlot(n.Day, blockID, subjectID); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Timetable")
	pp.Timetable(n.Persistence.Document())
	return nil
}
