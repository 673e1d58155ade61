package projection

import (
	"iter"

	"github.com/studeolab/studeo/pkg/document"
)

// Predicate selects agenda items.
type Predicate func(document.AgendaItem) bool

// FilterAgenda yields the items matching keep, in source order. The
// sequence is lazy and restartable: each range walks the slice fresh, so
// callers always see the collection they were handed, never a cache.
func FilterAgenda(items []document.AgendaItem, keep Predicate) iter.Seq[document.AgendaItem] {
	return func(yield func(document.AgendaItem) bool) {
		for _, item := range items {
			if keep != nil && !keep(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// ByArea matches items referencing the area id.
func ByArea(areaID string) Predicate {
	return func(i document.AgendaItem) bool { return i.AreaID == areaID }
}

// BySubject matches items referencing the subject id.
func BySubject(subjectID string) Predicate {
	return func(i document.AgendaItem) bool { return i.SubjectID == subjectID }
}

// OnDate matches items due on the ISO date.
func OnDate(date string) Predicate {
	return func(i document.AgendaItem) bool { return i.Date == date }
}

// Pending matches items not yet done.
func Pending() Predicate {
	return func(i document.AgendaItem) bool { return !i.Done }
}

// And combines predicates conjunctively.
func And(ps ...Predicate) Predicate {
	return func(i document.AgendaItem) bool {
		for _, p := range ps {
			if p != nil && !p(i) {
				return false
			}
		}
		return true
	}
}

// DayIndex partitions agenda items by ISO date for calendar rendering.
// Undated items group under the empty key. Order within a day follows the
// source collection.
func DayIndex(items []document.AgendaItem) map[string][]document.AgendaItem {
	index := make(map[string][]document.AgendaItem)
	for _, item := range items {
		index[item.Date] = append(index[item.Date], item)
	}
	return index
}
