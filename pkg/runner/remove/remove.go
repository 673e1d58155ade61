package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/store"
)

// Remove deletes one record by id or unambiguous id prefix. A missing id
// is reported but is not a failure; the document is simply unchanged.
type Remove struct {
	Persistence *store.Store
	Collection  document.Collection
	ID          string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	id, ok := n.Persistence.Document().ResolveID(n.Collection, n.ID)
	if !ok {
		fmt.Printf("no %s entry matches %q, nothing removed\n", n.Collection, n.ID)
		return nil
	}

	if err := n.Persistence.RemoveEntry(n.Collection, id); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", id)
	return nil
}
