package domain

import (
	"fmt"
	"sort"
)

// SortEvents returns the events in display order without mutating its
// input:
//
//   - events with a start time come first, ascending by "HH:MM" string
//     (lexical order is chronological for zero-padded 24-hour times);
//   - events without a start time follow, ascending by OrderIndex;
//   - ties keep their original relative order (stable sort).
//
// The same ordering is used by the list view and the text export.
func SortEvents(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch {
		case a.StartTime == "" && b.StartTime == "":
			return a.OrderIndex < b.OrderIndex
		case a.StartTime == "":
			return false
		case b.StartTime == "":
			return true
		default:
			return a.StartTime < b.StartTime
		}
	})
	return sorted
}

// MoveEvent moves the event with fromID to the position currently held
// by the event with toID, then rewrites every OrderIndex to its new
// list position. It returns a new slice; the input is not mutated.
//
// Positions are resolved against the input slice before the move, so
// dropping "onto" a later event inserts before it and dropping onto an
// earlier event inserts at its place — the same splice semantics a
// drag-and-drop list produces.
//
// Returns ErrNotFound when either id is absent. fromID == toID is a
// no-op (a reindexed copy is still returned).
func MoveEvent(events []Event, fromID, toID string) ([]Event, error) {
	fromIdx, toIdx := -1, -1
	for i, e := range events {
		if e.ID == fromID {
			fromIdx = i
		}
		if e.ID == toID {
			toIdx = i
		}
	}
	if fromIdx < 0 {
		return nil, fmt.Errorf("domain.MoveEvent: event %q: %w", fromID, ErrNotFound)
	}
	if toIdx < 0 {
		return nil, fmt.Errorf("domain.MoveEvent: event %q: %w", toID, ErrNotFound)
	}

	out := make([]Event, len(events))
	copy(out, events)

	if fromIdx != toIdx {
		moved := out[fromIdx]
		out = append(out[:fromIdx], out[fromIdx+1:]...)
		out = append(out[:toIdx], append([]Event{moved}, out[toIdx:]...)...)
	}

	for i := range out {
		out[i].OrderIndex = i
	}
	return out, nil
}
