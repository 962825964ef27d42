package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/viselabs/vise/internal/assembly"
)

// GroundComponentTool handles the cad_ground_component MCP tool.
type GroundComponentTool struct {
	session *Session
}

// NewGroundComponentTool creates a GroundComponentTool bound to a session.
func NewGroundComponentTool(session *Session) *GroundComponentTool {
	return &GroundComponentTool{session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *GroundComponentTool) Definition() mcp.Tool {
	return mcp.NewTool("cad_ground_component",
		mcp.WithDescription(
			"Set or clear the grounded flag on an occurrence. A grounded "+
				"occurrence does not move when joints are solved. The root is "+
				"always grounded and cannot be changed.",
		),
		mcp.WithNumber("occurrence_index",
			mcp.Description("Global index of the target occurrence."),
		),
		mcp.WithString("occurrence_name",
			mcp.Description("Name of the target occurrence, checked if the index is absent."),
		),
		mcp.WithBoolean("grounded",
			mcp.Description("Desired grounded state. Defaults to true."),
		),
	)
}

// Handle processes the cad_ground_component tool call.
func (t *GroundComponentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	t.session.mu.Lock()
	defer t.session.mu.Unlock()

	if idx := optIntArg(req, "occurrence_index"); idx != nil && *idx == assembly.RootIndex {
		err := assembly.Validationf("the root component is always grounded")
		t.session.record("cad_ground_component", req, start, err.Error())
		return toolError(err), nil
	}

	occ, err := resolveOccurrence(t.session.design, req, "occurrence")
	if err != nil {
		t.session.record("cad_ground_component", req, start, err.Error())
		return toolError(err), nil
	}

	occ.Grounded = boolArg(req, "grounded", true)

	state := "grounded"
	if !occ.Grounded {
		state = "free to move"
	}
	response := fmt.Sprintf("# Grounding Updated\n\n**Occurrence:** %s\n**State:** %s\n", occ.Name, state)

	t.session.record("cad_ground_component", req, start, "")
	return mcp.NewToolResultText(response), nil
}
