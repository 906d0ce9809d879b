package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusOf(s Status) *Status { return &s }

func TestReconcile_FirstScanClassifiesEverythingAdded(t *testing.T) {
	entries := []AnalysisResult{
		{ObjectID: "A", ObjectTitle: "Login", Status: StatusImplemented,
			ImplFiles: []FileRef{{Path: "login.go"}}, TestFiles: []FileRef{{Path: "login_test.go"}}},
		{ObjectID: "B", ObjectTitle: "Logout", Status: StatusNotFound},
	}

	changes := Reconcile(entries, nil)

	require.Len(t, changes, 2)
	assert.Equal(t, ChangeAdded, changes[0].ChangeType)
	assert.Equal(t, statusOf(StatusImplemented), changes[0].CurrentStatus)
	assert.Nil(t, changes[0].PreviousStatus)
	assert.Equal(t, []FileRef{{Path: "login.go"}, {Path: "login_test.go"}}, changes[0].AddedFiles)
	assert.Empty(t, changes[0].RemovedFiles)
	assert.Equal(t, ChangeAdded, changes[1].ChangeType)
}

func TestReconcile_StatusAndFileDelta(t *testing.T) {
	previous := &MappingSnapshot{Entries: []AnalysisResult{
		{ObjectID: "A", ObjectTitle: "Login", Status: StatusPartial,
			ImplFiles: []FileRef{{Path: "x.go"}}},
	}}
	entries := []AnalysisResult{
		{ObjectID: "A", ObjectTitle: "Login", Status: StatusImplemented,
			ImplFiles: []FileRef{{Path: "x.go"}, {Path: "y.go"}}},
	}

	changes := Reconcile(entries, previous)

	require.Len(t, changes, 1)
	c := changes[0]
	assert.Equal(t, ChangeChanged, c.ChangeType)
	assert.Equal(t, statusOf(StatusPartial), c.PreviousStatus)
	assert.Equal(t, statusOf(StatusImplemented), c.CurrentStatus)
	assert.Equal(t, []FileRef{{Path: "y.go"}}, c.AddedFiles)
	assert.Empty(t, c.RemovedFiles)
	assert.Contains(t, c.ChangeSummary, "partial → implemented")
	assert.Contains(t, c.ChangeSummary, "implementation files changed")
}

func TestReconcile_RemovedEntryKeepsFullFileSet(t *testing.T) {
	previous := &MappingSnapshot{Entries: []AnalysisResult{
		{ObjectID: "B", ObjectTitle: "Export", Status: StatusImplemented,
			ImplFiles: []FileRef{{Path: "export.go"}},
			TestFiles: []FileRef{{Path: "export_test.go"}}},
	}}

	changes := Reconcile(nil, previous)

	require.Len(t, changes, 1)
	c := changes[0]
	assert.Equal(t, ChangeRemoved, c.ChangeType)
	assert.Equal(t, statusOf(StatusImplemented), c.PreviousStatus)
	assert.Nil(t, c.CurrentStatus)
	assert.Equal(t, []FileRef{{Path: "export.go"}, {Path: "export_test.go"}}, c.RemovedFiles)
	assert.Empty(t, c.AddedFiles)
}

func TestReconcile_UnchangedWhenStatusAndPathsMatch(t *testing.T) {
	previous := &MappingSnapshot{Entries: []AnalysisResult{
		{ObjectID: "A", Status: StatusImplemented,
			ImplFiles: []FileRef{{Path: "a.go", Description: "old words"}}},
	}}
	entries := []AnalysisResult{
		// Description and line ranges differ; only path identity counts.
		{ObjectID: "A", Status: StatusImplemented,
			ImplFiles: []FileRef{{Path: "a.go", Description: "new words", Lines: "1-10"}}},
	}

	changes := Reconcile(entries, previous)

	require.Len(t, changes, 1)
	assert.Equal(t, ChangeUnchanged, changes[0].ChangeType)
	assert.Empty(t, changes[0].ChangeSummary)
}

func TestReconcile_MovedFileIsRemovePlusAdd(t *testing.T) {
	previous := &MappingSnapshot{Entries: []AnalysisResult{
		{ObjectID: "A", Status: StatusImplemented, ImplFiles: []FileRef{{Path: "old/a.go"}}},
	}}
	entries := []AnalysisResult{
		{ObjectID: "A", Status: StatusImplemented, ImplFiles: []FileRef{{Path: "new/a.go"}}},
	}

	changes := Reconcile(entries, previous)

	require.Len(t, changes, 1)
	assert.Equal(t, ChangeChanged, changes[0].ChangeType)
	assert.Equal(t, []FileRef{{Path: "new/a.go"}}, changes[0].AddedFiles)
	assert.Equal(t, []FileRef{{Path: "old/a.go"}}, changes[0].RemovedFiles)
}

func TestReconcile_EveryIDAppearsExactlyOnce(t *testing.T) {
	previous := &MappingSnapshot{Entries: []AnalysisResult{
		{ObjectID: "A", Status: StatusPartial},
		{ObjectID: "B", Status: StatusImplemented},
		{ObjectID: "C", Status: StatusNotFound},
	}}
	entries := []AnalysisResult{
		{ObjectID: "B", Status: StatusImplemented},
		{ObjectID: "D", Status: StatusPartial},
		{ObjectID: "A", Status: StatusPartial},
	}

	changes := Reconcile(entries, previous)

	counts := make(map[string]int)
	for _, c := range changes {
		counts[c.ObjectID]++
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1, "D": 1}, counts)

	// New entries first in input order, removed entries after in
	// previous-snapshot order.
	var order []string
	for _, c := range changes {
		order = append(order, c.ObjectID)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, order)
	assert.Equal(t, ChangeRemoved, changes[3].ChangeType)
}
