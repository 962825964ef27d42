package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/viselabs/vise/internal/assembly"
)

// AsBuiltJointTool handles the cad_create_as_built_joint MCP tool: a
// joint derived from the occurrences' current relative placement, with
// no geometry specs.
type AsBuiltJointTool struct {
	session *Session
}

// NewAsBuiltJointTool creates an AsBuiltJointTool bound to a session.
func NewAsBuiltJointTool(session *Session) *AsBuiltJointTool {
	return &AsBuiltJointTool{session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *AsBuiltJointTool) Definition() mcp.Tool {
	return mcp.NewTool("cad_create_as_built_joint",
		mcp.WithDescription(
			"Create a joint from two occurrences' current relative placement, "+
				"with no geometry selection. Position the occurrences first; "+
				"the joint snapshots the relationship as it stands. Calling "+
				"twice creates two joints.",
		),
		mcp.WithNumber("occurrence_one_index",
			mcp.Description("Global index of the first occurrence."),
		),
		mcp.WithString("occurrence_one_name",
			mcp.Description("Name of the first occurrence, checked if the index is absent."),
		),
		mcp.WithNumber("occurrence_two_index",
			mcp.Description("Global index of the second occurrence."),
		),
		mcp.WithString("occurrence_two_name",
			mcp.Description("Name of the second occurrence, checked if the index is absent."),
		),
		mcp.WithString("joint_type",
			mcp.Description("Motion kind. Defaults to rigid."),
			mcp.Enum("rigid", "revolute", "slider", "cylindrical", "ball", "planar", "pin_slot"),
		),
		mcp.WithString("direction",
			mcp.Description("Motion axis for axial joint types. Defaults to z."),
			mcp.Enum("x", "y", "z"),
		),
	)
}

// Handle processes the cad_create_as_built_joint tool call.
func (t *AsBuiltJointTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	t.session.mu.Lock()
	defer t.session.mu.Unlock()

	builder := assembly.NewBuilder(t.session.design)
	sum, err := builder.CreateAsBuiltJoint(assembly.AsBuiltRequest{
		One:       selectorArg(req, "occurrence_one"),
		Two:       selectorArg(req, "occurrence_two"),
		JointType: req.GetString("joint_type", ""),
		Direction: req.GetString("direction", ""),
	})
	if err != nil {
		t.session.record("cad_create_as_built_joint", req, start, err.Error())
		return toolError(err), nil
	}

	response := fmt.Sprintf(
		"# As-Built Joint Created\n\n**Name:** %s\n**Type:** %s\n**Connects:** %s to %s\n\n%s",
		sum.Name, sum.Type, sum.OccurrenceOne, sum.OccurrenceTwo, jsonBlock(sum),
	)

	t.session.record("cad_create_as_built_joint", req, start, "")
	return mcp.NewToolResultText(response), nil
}
