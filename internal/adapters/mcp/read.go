package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"specmap/internal/application/commands"
	"specmap/internal/domain"
	"specmap/internal/ports"
)

// RegisterReadTools adds all read-only specification tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.SpecRepository, annotations ports.AnnotationIndex, snapshots ports.SnapshotStore) {
	s.AddTool(treeTool(), treeHandler(repo))
	s.AddTool(detailTool(), detailHandler(repo))
	s.AddTool(annotationsTool(), annotationsHandler(annotations))
	s.AddTool(snapshotTool(), snapshotHandler(snapshots))
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the specification tree as an indented outline with completion glyphs and node ids."),
	)
}

func treeHandler(repo ports.SpecRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		roots, err := commands.NewLoadTreeCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(roots) == 0 {
			return mcp.NewToolResultText("The tree is empty."), nil
		}

		var sb strings.Builder
		for i, root := range roots {
			renderTree(&sb, root, fmt.Sprintf("%d", i+1))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.TreeNode, index string) {
	glyph := "[ ]"
	if node.Completed {
		glyph = "[x]"
	}
	var tags []string
	if node.IsState {
		tags = append(tags, "STATE")
	}
	if node.HasNotes {
		tags = append(tags, "notes")
	}
	if node.HasIssues {
		tags = append(tags, "issues")
	}
	suffix := ""
	if len(tags) > 0 {
		suffix = " [" + strings.Join(tags, ", ") + "]"
	}
	fmt.Fprintf(sb, "%s %s %s%s  (id: %s)\n", index, glyph, node.Title, suffix, node.ID)

	for i, child := range node.Children {
		renderTree(sb, child, fmt.Sprintf("%s.%d", index, i+1))
	}
}

// --- detail ---

func detailTool() mcp.Tool {
	return mcp.NewTool("detail",
		mcp.WithDescription("Read one node's metadata and body text by its id."),
		mcp.WithString("id",
			mcp.Description("Node id"),
			mcp.Required(),
		),
	)
}

func detailHandler(repo ports.SpecRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		detail, err := commands.NewReadDetailCommand(repo, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "# %s\n\n", detail.Title)
		fmt.Fprintf(&sb, "id: %s\n", detail.ID)
		if detail.ParentID != nil {
			fmt.Fprintf(&sb, "parent: %s\n", *detail.ParentID)
		}
		fmt.Fprintf(&sb, "completed: %t\n", detail.Completed)
		if detail.IsState {
			sb.WriteString("state: true\n")
		}
		if detail.HasNotes {
			sb.WriteString("notes: yes\n")
		}
		if detail.HasIssues {
			sb.WriteString("issues: yes\n")
		}
		if detail.Content != "" {
			fmt.Fprintf(&sb, "\n%s\n", detail.Content)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- annotations ---

func annotationsTool() mcp.Tool {
	return mcp.NewTool("annotations",
		mcp.WithDescription("List the note and issue annotations attached to a node."),
		mcp.WithString("id",
			mcp.Description("Node id"),
			mcp.Required(),
		),
	)
}

func annotationsHandler(annotations ports.AnnotationIndex) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		entries, err := annotations.Annotations(id)
		if err != nil {
			return toolError(err)
		}
		if len(entries) == 0 {
			return mcp.NewToolResultText("No annotations."), nil
		}

		var sb strings.Builder
		for _, a := range entries {
			fmt.Fprintf(&sb, "[%s] %s\n", a.Kind, a.Body)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- snapshot ---

func snapshotTool() mcp.Tool {
	return mcp.NewTool("snapshot",
		mcp.WithDescription("Read the last persisted mapping snapshot (analysis entries plus changelog) as JSON."),
	)
}

func snapshotHandler(snapshots ports.SnapshotStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewReadSnapshotCommand(snapshots).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Snapshot == nil {
			return mcp.NewToolResultText("No snapshot yet. Run scan first."), nil
		}

		data, err := json.MarshalIndent(result.Snapshot, "", "  ")
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
