package grade

import (
	"context"
	"errors"
	"fmt"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/printers"
	"github.com/studeolab/studeo/pkg/store"
)

// Grade records a grade percentage or an absence against a subject.
type Grade struct {
	Persistence *store.Store
	SubjectID   string
	Grade       *int
	Absences    int
	ShowID      bool
}

func (n *Grade) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not grade, no persistence")
	}

	id, ok := n.Persistence.Document().ResolveID(document.CollectionSubjects, n.SubjectID)
	if !ok {
		return fmt.Errorf("no subject matches %q", n.SubjectID)
	}

	if n.Grade != nil {
		if err := n.Persistence.RecordGrade(id, *n.Grade); err != nil {
			return err
		}
	}
	if n.Absences != 0 {
		if err := n.Persistence.RecordAbsence(id, n.Absences); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Subjects")
	pp.Subjects(n.Persistence.Document().Subjects...)
	return nil
}
