package prompt

import (
	"fmt"
	"strings"

	"specmap/internal/domain"
)

// Request is the prompt pair for one analysis call.
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

const systemPrompt = `You are analyzing a codebase against a specification tree.

For EVERY specification object in the outline you are given, determine how
far the codebase implements it and which files carry the implementation
and its tests.

Return ONLY a JSON object (no markdown, no code blocks) with this exact shape:
{
  "entries": [
    {
      "objectId": "the id echoed verbatim from the outline",
      "objectTitle": "the title echoed verbatim from the outline",
      "status": "implemented",
      "summary": "one or two sentences on the state of this object",
      "implFiles": [{"filePath": "path/to/file.go", "description": "what it contributes", "lines": "10-42"}],
      "testFiles": [{"filePath": "path/to/file_test.go", "description": "what it covers"}]
    }
  ]
}

Rules:
- "status" must be one of: implemented, partial, not_found, unknown.
- Echo "objectId" exactly as shown after "(id: ...)" in the outline. Never invent ids.
- "lines" is optional; omit it when you are not certain of the range.
- Include one entry per outline node, leaves and parents alike.`

// BuildRequest builds the prompt pair for the given tree. projectTree is
// the optional textual project-tree context, kept in the snapshot for
// audit.
func BuildRequest(roots []*domain.TreeNode, projectTree string) Request {
	var sb strings.Builder
	sb.WriteString("Specification outline:\n\n")
	sb.WriteString(RenderOutline(roots))
	if projectTree != "" {
		fmt.Fprintf(&sb, "\nProject structure:\n\n%s\n", projectTree)
	}
	return Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   sb.String(),
	}
}
