package toggle

import (
	"context"
	"errors"
	"fmt"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/printers"
	"github.com/studeolab/studeo/pkg/store"
)

// Toggle flips an agenda item's done flag or an alarm's active flag.
type Toggle struct {
	Persistence *store.Store
	Collection  document.Collection
	ID          string
	ShowID      bool
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not toggle, no persistence")
	}

	id, ok := n.Persistence.Document().ResolveID(n.Collection, n.ID)
	if !ok {
		fmt.Printf("no %s entry matches %q\n", n.Collection, n.ID)
		return nil
	}

	if err := n.Persistence.ToggleField(n.Collection, id); err != nil {
		return err
	}

	doc := n.Persistence.Document()
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	switch n.Collection {
	case document.CollectionAgenda:
		pp.Title("Agenda")
		pp.Agenda(doc, doc.Agenda...)
	case document.CollectionAlarms:
		pp.Title("Alarms")
		pp.Alarms(doc.Alarms...)
	}
	return nil
}
