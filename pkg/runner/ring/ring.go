// Package ring runs the alarm poll loop: once per interval it reads the
// current document, fires every due alarm through the Ringer, and latches
// each fired alarm inactive before the next tick can observe it.
package ring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/studeolab/studeo/pkg/document"
	"github.com/studeolab/studeo/pkg/projection"
	"github.com/studeolab/studeo/pkg/store"
)

// Ringer is the playback boundary. The store side only promises to deliver
// the alarm's label once per firing.
type Ringer interface {
	Ring(label string)
}

// BellRinger prints the label and sounds the terminal bell.
type BellRinger struct{}

func (BellRinger) Ring(label string) {
	a := color.New(color.FgHiYellow, color.Bold)
	_, _ = a.Printf("\a⏰ %s\n", label)
}

// Ring polls until ctx is cancelled.
type Ring struct {
	Persistence *store.Store
	Ringer      Ringer
	Interval    time.Duration

	// Now supplies wall-clock time; nil means time.Now. Injected so the
	// loop is testable.
	Now func() time.Time
}

func (n *Ring) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not ring, no persistence")
	}
	ringer := n.Ringer
	if ringer == nil {
		ringer = BellRinger{}
	}
	interval := n.Interval
	if interval <= 0 {
		interval = time.Second
	}
	now := n.Now
	if now == nil {
		now = time.Now
	}

	fmt.Println("watching alarms, ctrl-c to stop")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := n.tick(now(), ringer); err != nil {
				return err
			}
		}
	}
}

// tick runs one poll. Each due alarm is deactivated as it fires so a later
// tick within the same minute cannot fire it again.
func (n *Ring) tick(at time.Time, ringer Ringer) error {
	doc := n.Persistence.Document()
	for _, a := range projection.DueAlarms(doc.Alarms, document.ClockOf(at)) {
		if err := n.Persistence.DeactivateAlarm(a.ID); err != nil {
			return err
		}
		ringer.Ring(a.Label)
	}
	return nil
}
