package analysis

import "specmap/internal/domain"

// ResolveIDs maps each result back to a stable node id. An echoed id that
// exists in the tree is trusted as-is; otherwise the result's title is
// looked up by the first exact match in pre-order; when that fails too,
// the title string itself stands in as a best-effort id. The returned
// unresolved list names the titles that fell through — callers must treat
// those synthetic ids as unreliable for subsequent merges.
func ResolveIDs(results []domain.AnalysisResult, roots []*domain.TreeNode) (resolved []domain.AnalysisResult, unresolved []string) {
	known := make(map[string]bool)
	byTitle := make(map[string]string)
	domain.WalkTree(roots, func(tn *domain.TreeNode) {
		known[tn.ID] = true
		if _, seen := byTitle[tn.Title]; !seen {
			byTitle[tn.Title] = tn.ID
		}
	})

	resolved = make([]domain.AnalysisResult, 0, len(results))
	for _, r := range results {
		if known[r.ObjectID] {
			resolved = append(resolved, r)
			continue
		}
		if id, ok := byTitle[r.ObjectTitle]; ok {
			r.ObjectID = id
			resolved = append(resolved, r)
			continue
		}
		r.ObjectID = r.ObjectTitle
		unresolved = append(unresolved, r.ObjectTitle)
		resolved = append(resolved, r)
	}
	return resolved, unresolved
}

// DuplicateTitles returns every title carried by more than one node, in
// pre-order of first occurrence. Title-based resolution silently picks the
// first match for these, so callers surface them before resolving.
func DuplicateTitles(roots []*domain.TreeNode) []string {
	counts := make(map[string]int)
	var order []string
	domain.WalkTree(roots, func(tn *domain.TreeNode) {
		counts[tn.Title]++
		if counts[tn.Title] == 2 {
			order = append(order, tn.Title)
		}
	})
	return order
}
