package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"specmap/internal/analysis"
	"specmap/internal/application/commands"
	"specmap/internal/domain"
	"specmap/internal/ports"
)

// RegisterWriteTools adds all mutating specification tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.SpecRepository, annotations ports.AnnotationIndex) {
	s.AddTool(addTool(), addHandler(repo))
	s.AddTool(updateTool(), updateHandler(repo))
	s.AddTool(moveTool(), moveHandler(repo))
	s.AddTool(deleteTool(), deleteHandler(repo))
	s.AddTool(annotateTool(), annotateHandler(repo, annotations))
}

// RegisterScanTool adds the analysis scan tool. Registered separately
// because it needs the orchestrator and snapshot store, which a read-only
// deployment may not wire at all.
func RegisterScanTool(s *server.MCPServer, orchestrator *analysis.Orchestrator, snapshots ports.SnapshotStore, timeout time.Duration) {
	s.AddTool(scanTool(), scanHandler(orchestrator, snapshots, timeout))
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Add a new node to the specification tree. Omit parent_id to create a root."),
		mcp.WithString("title",
			mcp.Description("Display title for the new node"),
			mcp.Required(),
		),
		mcp.WithString("parent_id",
			mcp.Description("Id of the parent node. Omit to create a root."),
		),
		mcp.WithString("content",
			mcp.Description("Optional body text"),
		),
		mcp.WithBoolean("is_state",
			mcp.Description("Mark the node as a state node instead of a feature node"),
		),
	)
}

func addHandler(repo ports.SpecRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := req.GetString("title", "")
		var parentID *string
		if p := req.GetString("parent_id", ""); p != "" {
			parentID = &p
		}

		cmd := commands.NewAddNodeCommand(repo, uuid.NewString(), parentID, title)
		cmd.Content = req.GetString("content", "")
		cmd.IsState = req.GetBool("is_state", false)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update ---

func updateTool() mcp.Tool {
	return mcp.NewTool("update",
		mcp.WithDescription("Update a node's title, completion flag, state flag, or body. Only the arguments you pass change."),
		mcp.WithString("id",
			mcp.Description("Node id"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
		mcp.WithBoolean("completed",
			mcp.Description("New completion flag"),
		),
		mcp.WithBoolean("is_state",
			mcp.Description("New state flag"),
		),
		mcp.WithString("content",
			mcp.Description("New body text. An empty string clears the body."),
		),
	)
}

func updateHandler(repo ports.SpecRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUpdateNodeCommand(repo, req.GetString("id", ""))

		args := req.GetArguments()
		if _, ok := args["title"]; ok {
			title := req.GetString("title", "")
			cmd.Title = &title
		}
		if _, ok := args["completed"]; ok {
			completed := req.GetBool("completed", false)
			cmd.Completed = &completed
		}
		if _, ok := args["is_state"]; ok {
			isState := req.GetBool("is_state", false)
			cmd.IsState = &isState
		}
		if _, ok := args["content"]; ok {
			content := req.GetString("content", "")
			cmd.Content = &content
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Move a node under a new parent. Omit new_parent_id to move it to the root. Moves into a node's own subtree are rejected."),
		mcp.WithString("id",
			mcp.Description("Id of the node to move"),
			mcp.Required(),
		),
		mcp.WithString("new_parent_id",
			mcp.Description("Id of the new parent. Omit to move to the root."),
		),
	)
}

func moveHandler(repo ports.SpecRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var newParentID *string
		if p := req.GetString("new_parent_id", ""); p != "" {
			newParentID = &p
		}

		result, err := commands.NewMoveNodeCommand(repo, req.GetString("id", ""), newParentID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a node and all of its descendants."),
		mcp.WithString("id",
			mcp.Description("Id of the node to delete"),
			mcp.Required(),
		),
	)
}

func deleteHandler(repo ports.SpecRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteNodeCommand(repo, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- annotate ---

func annotateTool() mcp.Tool {
	return mcp.NewTool("annotate",
		mcp.WithDescription("Attach a note or issue annotation to a node. An empty body clears the annotation."),
		mcp.WithString("id",
			mcp.Description("Node id"),
			mcp.Required(),
		),
		mcp.WithString("kind",
			mcp.Description("Annotation kind: note or issue"),
			mcp.Required(),
		),
		mcp.WithString("body",
			mcp.Description("Annotation text. Empty clears the annotation."),
		),
	)
}

func annotateHandler(repo ports.SpecRepository, annotations ports.AnnotationIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAnnotateCommand(repo, annotations,
			req.GetString("id", ""),
			domain.AnnotationKind(req.GetString("kind", "")),
			req.GetString("body", ""))

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- scan ---

func scanTool() mcp.Tool {
	return mcp.NewTool("scan",
		mcp.WithDescription("Run one implementation-status analysis of the project against the specification tree, reconcile it with the previous snapshot, and persist the result."),
		mcp.WithString("project_tree",
			mcp.Description("Textual project layout to give the analysis as context. Optional."),
		),
	)
}

func scanHandler(orchestrator *analysis.Orchestrator, snapshots ports.SnapshotStore, timeout time.Duration) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewScanCommand(orchestrator, snapshots, timeout, req.GetString("project_tree", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		data, err := json.MarshalIndent(result.Snapshot.Changelog, "", "  ")
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message + "\n" + string(data)), nil
	}
}
