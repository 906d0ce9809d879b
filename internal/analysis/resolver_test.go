package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specmap/internal/domain"
)

func strptr(s string) *string { return &s }

func resolverTree() []*domain.TreeNode {
	flat := []domain.Node{
		{ID: "auth", Title: "Authentication"},
		{ID: "login", ParentID: strptr("auth"), Title: "Login flow"},
		{ID: "export", Title: "Export"},
		{ID: "export2", ParentID: strptr("export"), Title: "Export"},
	}
	return domain.AssembleTree(flat)
}

func TestResolveIDs_TrustsEchoedID(t *testing.T) {
	results := []domain.AnalysisResult{
		{ObjectID: "login", ObjectTitle: "a title the model mangled"},
	}

	resolved, unresolved := ResolveIDs(results, resolverTree())

	require.Len(t, resolved, 1)
	assert.Equal(t, "login", resolved[0].ObjectID)
	assert.Empty(t, unresolved)
}

func TestResolveIDs_FallsBackToTitle(t *testing.T) {
	results := []domain.AnalysisResult{
		{ObjectID: "invented-by-model", ObjectTitle: "Login flow"},
	}

	resolved, unresolved := ResolveIDs(results, resolverTree())

	require.Len(t, resolved, 1)
	assert.Equal(t, "login", resolved[0].ObjectID)
	assert.Empty(t, unresolved)
}

func TestResolveIDs_DuplicateTitleFirstMatchInPreOrder(t *testing.T) {
	results := []domain.AnalysisResult{
		{ObjectID: "", ObjectTitle: "Export"},
	}

	resolved, _ := ResolveIDs(results, resolverTree())

	require.Len(t, resolved, 1)
	assert.Equal(t, "export", resolved[0].ObjectID, "pre-order first match wins")
}

func TestResolveIDs_UnresolvedUsesTitleAsID(t *testing.T) {
	results := []domain.AnalysisResult{
		{ObjectID: "", ObjectTitle: "Never heard of it"},
	}

	resolved, unresolved := ResolveIDs(results, resolverTree())

	require.Len(t, resolved, 1)
	assert.Equal(t, "Never heard of it", resolved[0].ObjectID)
	assert.Equal(t, []string{"Never heard of it"}, unresolved)
}

func TestDuplicateTitles(t *testing.T) {
	assert.Equal(t, []string{"Export"}, DuplicateTitles(resolverTree()))
	assert.Empty(t, DuplicateTitles(resolverTree()[:1]))
}
