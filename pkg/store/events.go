package store

import "github.com/studeolab/studeo/pkg/document"

// Event notifies that the document changed. Collection scopes the change;
// it is empty when the whole document was replaced (external write, theme
// and settings changes aside).
type Event struct {
	Collection document.Collection
}

// Subscribe registers an in-process listener for document changes. The
// returned cancel func must be called when done. Events are dropped rather
// than block a slow consumer; consumers re-derive views from the current
// document, so a dropped event is only a deferred refresh.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	ch := make(chan Event, 16)
	s.subs[id] = ch
	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(c document.Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- Event{Collection: c}:
		default:
		}
	}
}
