// Package prompt renders the specification tree into the deterministic
// textual outline and request payloads sent to the analysis service.
package prompt

import (
	"fmt"
	"strings"

	"specmap/internal/domain"
)

// RenderOutline renders the tree depth-first in pre-order, one node per
// line as `<dotted-index> <glyph> <title>[ [STATE]]  (id: <id>)`. The
// dotted index appends `.<position+1>` to the parent's index; roots count
// from 1. Downstream id resolution relies on pre-order and exact titles,
// so this shape must stay stable.
func RenderOutline(roots []*domain.TreeNode) string {
	var sb strings.Builder
	for i, root := range roots {
		renderNode(&sb, root, fmt.Sprintf("%d", i+1))
	}
	return sb.String()
}

func renderNode(sb *strings.Builder, node *domain.TreeNode, index string) {
	glyph := "[ ]"
	if node.Completed {
		glyph = "[x]"
	}
	state := ""
	if node.IsState {
		state = " [STATE]"
	}
	fmt.Fprintf(sb, "%s %s %s%s  (id: %s)\n", index, glyph, node.Title, state, node.ID)

	for i, child := range node.Children {
		renderNode(sb, child, fmt.Sprintf("%s.%d", index, i+1))
	}
}
