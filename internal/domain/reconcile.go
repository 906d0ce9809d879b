package domain

import (
	"fmt"
	"strings"
)

// Reconcile compares a freshly produced set of analysis entries against the
// previously persisted snapshot and emits a classified changelog. Every
// object id present in either input appears exactly once in the output:
// new-entry classifications first in new-entry order, then removed entries
// in previous-snapshot order. File sets are compared by path identity only
// (implementation and test files pooled), never by content, so a moved
// file always reports as one remove plus one add.
func Reconcile(entries []AnalysisResult, previous *MappingSnapshot) []MappingChange {
	prevByID := make(map[string]AnalysisResult)
	var prevOrder []string
	if previous != nil {
		for _, e := range previous.Entries {
			if _, dup := prevByID[e.ObjectID]; !dup {
				prevOrder = append(prevOrder, e.ObjectID)
			}
			prevByID[e.ObjectID] = e
		}
	}

	changes := make([]MappingChange, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		seen[entry.ObjectID] = true

		prev, existed := prevByID[entry.ObjectID]
		if !existed {
			status := entry.Status
			changes = append(changes, MappingChange{
				ObjectID:      entry.ObjectID,
				ObjectTitle:   entry.ObjectTitle,
				ChangeType:    ChangeAdded,
				CurrentStatus: &status,
				ChangeSummary: "object analyzed for the first time",
				AddedFiles:    entry.Files(),
			})
			continue
		}

		changes = append(changes, diffEntry(prev, entry))
	}

	for _, id := range prevOrder {
		if seen[id] {
			continue
		}
		prev := prevByID[id]
		status := prev.Status
		changes = append(changes, MappingChange{
			ObjectID:       prev.ObjectID,
			ObjectTitle:    prev.ObjectTitle,
			ChangeType:     ChangeRemoved,
			PreviousStatus: &status,
			ChangeSummary:  "object no longer present in analysis",
			RemovedFiles:   prev.Files(),
		})
	}

	return changes
}

// diffEntry classifies one object present in both snapshots.
func diffEntry(prev, cur AnalysisResult) MappingChange {
	prevStatus := prev.Status
	curStatus := cur.Status

	added, removed := diffFileSets(prev.Files(), cur.Files())
	statusChanged := prevStatus != curStatus
	filesChanged := len(added) > 0 || len(removed) > 0

	change := MappingChange{
		ObjectID:       cur.ObjectID,
		ObjectTitle:    cur.ObjectTitle,
		ChangeType:     ChangeUnchanged,
		PreviousStatus: &prevStatus,
		CurrentStatus:  &curStatus,
		AddedFiles:     added,
		RemovedFiles:   removed,
	}

	if !statusChanged && !filesChanged {
		return change
	}

	change.ChangeType = ChangeChanged
	var notes []string
	if statusChanged {
		notes = append(notes, fmt.Sprintf("status changed: %s → %s", prevStatus, curStatus))
	}
	if filesChanged {
		notes = append(notes, "implementation files changed")
	}
	change.ChangeSummary = strings.Join(notes, "; ")
	return change
}

// diffFileSets returns the symmetric difference of two file sets compared
// by path only. Order follows the owning entry's file order.
func diffFileSets(prev, cur []FileRef) (added, removed []FileRef) {
	prevPaths := make(map[string]bool, len(prev))
	for _, f := range prev {
		prevPaths[f.Path] = true
	}
	curPaths := make(map[string]bool, len(cur))
	for _, f := range cur {
		curPaths[f.Path] = true
	}

	emitted := make(map[string]bool)
	for _, f := range cur {
		if !prevPaths[f.Path] && !emitted[f.Path] {
			emitted[f.Path] = true
			added = append(added, f)
		}
	}
	emitted = make(map[string]bool)
	for _, f := range prev {
		if !curPaths[f.Path] && !emitted[f.Path] {
			emitted[f.Path] = true
			removed = append(removed, f)
		}
	}
	return added, removed
}
