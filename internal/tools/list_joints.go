package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/viselabs/vise/internal/assembly"
)

// ListJointsTool handles the cad_list_joints MCP tool.
type ListJointsTool struct {
	session *Session
}

// NewListJointsTool creates a ListJointsTool bound to a session.
func NewListJointsTool(session *Session) *ListJointsTool {
	return &ListJointsTool{session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *ListJointsTool) Definition() mcp.Tool {
	return mcp.NewTool("cad_list_joints",
		mcp.WithDescription(
			"List all joints in one combined, globally indexed list: full "+
				"joints first, then as-built joints offset by the full-joint "+
				"count. An absent occurrence reads as \"Ground\".",
		),
	)
}

// Handle processes the cad_list_joints tool call.
func (t *ListJointsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	t.session.mu.Lock()
	defer t.session.mu.Unlock()

	infos := assembly.NewBuilder(t.session.design).ListJoints()

	var b strings.Builder
	fmt.Fprintf(&b, "# Joints\n\n**Total:** %d\n\n", len(infos))
	if len(infos) == 0 {
		b.WriteString("No joints yet. Use `cad_create_joint` or `cad_create_as_built_joint`.\n\n")
	}
	b.WriteString(jsonBlock(infos))

	t.session.record("cad_list_joints", req, start, "")
	return mcp.NewToolResultText(b.String()), nil
}
