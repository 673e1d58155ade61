// Package dashboard renders the live "today" view: a once-per-second poll
// of the document's projections. The tick is the planner's only background
// activity; each tick reads the current document, rings due alarms, and
// persists the deactivation before the next tick is scheduled.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studeolab/studeo/pkg/store"
)

// Dashboard runs the live view until the user quits.
type Dashboard struct {
	Persistence *store.Store

	// Now supplies wall-clock time; nil means time.Now.
	Now func() time.Time

	// Once prints a single snapshot instead of entering the live view.
	Once bool
}

func (n *Dashboard) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show dashboard, no persistence")
	}
	now := n.Now
	if now == nil {
		now = time.Now
	}

	m := newModel(n.Persistence, now)

	if n.Once {
		fmt.Print(m.View())
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())

	// External writers (another terminal mutating the same document) are
	// folded in through the store watcher; each event has already reloaded
	// the in-memory document by the time it arrives.
	if events, err := n.Persistence.Watch(ctx); err == nil {
		go func() {
			for range events {
				p.Send(refreshMsg{})
			}
		}()
	}

	_, err := p.Run()
	return err
}
