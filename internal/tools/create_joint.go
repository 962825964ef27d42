package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/viselabs/vise/internal/assembly"
)

// CreateJointTool handles the cad_create_joint MCP tool: a full joint
// built from two declarative geometry specs.
type CreateJointTool struct {
	session *Session
}

// NewCreateJointTool creates a CreateJointTool bound to a session.
func NewCreateJointTool(session *Session) *CreateJointTool {
	return &CreateJointTool{session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateJointTool) Definition() mcp.Tool {
	return mcp.NewTool("cad_create_joint",
		mcp.WithDescription(
			"Create a joint between two occurrences from explicit geometry. "+
				"Each side is a geometry spec: { kind: face|edge, body_index, "+
				"face_index or edge_index, key_point: center|start|end|middle }. "+
				"Indices come from cad_list_components and cad_list_bodies and "+
				"are only valid until the next structural edit.",
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
		mcp.WithObject("geometry_one",
			mcp.Required(),
			mcp.Description("Geometry spec on the first occurrence."),
		),
		mcp.WithObject("geometry_two",
			mcp.Required(),
			mcp.Description("Geometry spec on the second occurrence."),
		),
		mcp.WithString("joint_type",
			mcp.Description("Motion kind. Defaults to rigid."),
			mcp.Enum("rigid", "revolute", "slider", "cylindrical", "ball", "planar", "pin_slot"),
		),
		mcp.WithString("direction",
			mcp.Description("Motion axis for axial joint types. Defaults to z."),
			mcp.Enum("x", "y", "z"),
		),
		mcp.WithNumber("angle",
			mcp.Description("Joint angle in degrees. Defaults to 0."),
		),
		mcp.WithNumber("offset",
			mcp.Description("Linear offset in design units. Defaults to 0."),
		),
		mcp.WithBoolean("is_flipped",
			mcp.Description("Flip the joint alignment. Defaults to false."),
		),
	)
}

// Handle processes the cad_create_joint tool call.
func (t *CreateJointTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	t.session.mu.Lock()
	defer t.session.mu.Unlock()

	geomOne, err := geometryArg(req, "geometry_one")
	if err != nil {
		t.session.record("cad_create_joint", req, start, err.Error())
		return toolError(err), nil
	}
	geomTwo, err := geometryArg(req, "geometry_two")
	if err != nil {
		t.session.record("cad_create_joint", req, start, err.Error())
		return toolError(err), nil
	}

	builder := assembly.NewBuilder(t.session.design)
	sum, err := builder.CreateJoint(assembly.JointRequest{
		One:         selectorArg(req, "occurrence_one"),
		Two:         selectorArg(req, "occurrence_two"),
		GeometryOne: geomOne,
		GeometryTwo: geomTwo,
		JointType:   req.GetString("joint_type", ""),
		Direction:   req.GetString("direction", ""),
		AngleDeg:    req.GetFloat("angle", 0),
		Offset:      req.GetFloat("offset", 0),
		Flipped:     boolArg(req, "is_flipped", false),
	})
	if err != nil {
		t.session.record("cad_create_joint", req, start, err.Error())
		return toolError(err), nil
	}

	response := fmt.Sprintf(
		"# Joint Created\n\n**Name:** %s\n**Type:** %s\n**Connects:** %s to %s\n\n%s",
		sum.Name, sum.Type, sum.OccurrenceOne, sum.OccurrenceTwo, jsonBlock(sum),
	)

	t.session.record("cad_create_joint", req, start, "")
	return mcp.NewToolResultText(response), nil
}
