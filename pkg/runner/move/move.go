package move

import (
	"context"
	"errors"
	"fmt"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/printers"
	"github.com/studeolab/studeo/pkg/store"
)

// Move transfers a board item between lanes, preserving its text.
type Move struct {
	Persistence *store.Store
	From        document.Lane
	To          document.Lane
	ID          string
	ShowID      bool
}

func (n *Move) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not move, no persistence")
	}

	id, ok := n.Persistence.Document().ResolveID(document.CollectionBoard, n.ID)
	if !ok {
		fmt.Printf("no board item matches %q\n", n.ID)
		return nil
	}

	if err := n.Persistence.MoveBetweenLanes(n.From, n.To, id); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Board(n.Persistence.Document().Board)
	return nil
}
