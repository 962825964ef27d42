package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/viselabs/vise/internal/assembly"
	"github.com/viselabs/vise/internal/design"
)

// AddBodyTool handles the cad_add_body MCP tool. It adds a primitive
// solid to an occurrence's component; every occurrence sharing that
// component receives the body.
type AddBodyTool struct {
	session *Session
}

// NewAddBodyTool creates an AddBodyTool bound to a session.
func NewAddBodyTool(session *Session) *AddBodyTool {
	return &AddBodyTool{session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *AddBodyTool) Definition() mcp.Tool {
	return mcp.NewTool("cad_add_body",
		mcp.WithDescription(
			"Add a primitive solid body to a component, identified by one of "+
				"its occurrences. Boxes sit with their minimum corner at the "+
				"component origin; cylinders and cones stand on the xy plane "+
				"along +z; spheres are centered on the origin. Dimensions are "+
				"in design units.",
		),
		mcp.WithNumber("occurrence_index",
			mcp.Description("Global index of the target occurrence."),
		),
		mcp.WithString("occurrence_name",
			mcp.Description("Name of the target occurrence, checked if the index is absent."),
		),
		mcp.WithString("shape",
			mcp.Required(),
			mcp.Description("Primitive kind."),
			mcp.Enum("box", "cylinder", "sphere", "cone"),
		),
		mcp.WithString("name",
			mcp.Description("Body name. Defaults to the shape name."),
		),
		mcp.WithNumber("size_x", mcp.Description("Box extent along x.")),
		mcp.WithNumber("size_y", mcp.Description("Box extent along y.")),
		mcp.WithNumber("size_z", mcp.Description("Box extent along z.")),
		mcp.WithNumber("radius", mcp.Description("Cylinder, sphere, or cone radius.")),
		mcp.WithNumber("height", mcp.Description("Cylinder or cone height.")),
	)
}

// Handle processes the cad_add_body tool call.
func (t *AddBodyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	t.session.mu.Lock()
	defer t.session.mu.Unlock()

	occ, err := resolveOccurrence(t.session.design, req, "occurrence")
	if err != nil {
		t.session.record("cad_add_body", req, start, err.Error())
		return toolError(err), nil
	}

	body, err := buildBody(req)
	if err != nil {
		t.session.record("cad_add_body", req, start, err.Error())
		return toolError(err), nil
	}
	bodyIndex := occ.Component.AddBody(body)

	response := fmt.Sprintf(
		"# Body Added\n\n**Component:** %s\n**Body:** %s (index %d)\n**Faces:** %d\n**Edges:** %d\n",
		occ.Component.Name, body.Name, bodyIndex, len(body.Faces), len(body.Edges),
	)

	t.session.record("cad_add_body", req, start, "")
	return mcp.NewToolResultText(response), nil
}

func buildBody(req mcp.CallToolRequest) (*design.Body, error) {
	shape := req.GetString("shape", "")
	name := req.GetString("name", shape)

	positive := func(key string, v float64) error {
		if v <= 0 {
			return assembly.Validationf("%s must be positive for shape %q, got %v", key, shape, v)
		}
		return nil
	}

	switch shape {
	case "box":
		dx := req.GetFloat("size_x", 1)
		dy := req.GetFloat("size_y", 1)
		dz := req.GetFloat("size_z", 1)
		for key, v := range map[string]float64{"size_x": dx, "size_y": dy, "size_z": dz} {
			if err := positive(key, v); err != nil {
				return nil, err
			}
		}
		return design.BoxBody(name, dx, dy, dz), nil
	case "cylinder":
		r := req.GetFloat("radius", 1)
		h := req.GetFloat("height", 1)
		if err := positive("radius", r); err != nil {
			return nil, err
		}
		if err := positive("height", h); err != nil {
			return nil, err
		}
		return design.CylinderBody(name, r, h), nil
	case "sphere":
		r := req.GetFloat("radius", 1)
		if err := positive("radius", r); err != nil {
			return nil, err
		}
		return design.SphereBody(name, r), nil
	case "cone":
		r := req.GetFloat("radius", 1)
		h := req.GetFloat("height", 1)
		if err := positive("radius", r); err != nil {
			return nil, err
		}
		if err := positive("height", h); err != nil {
			return nil, err
		}
		return design.ConeBody(name, r, h), nil
	default:
		return nil, assembly.Validationf("invalid shape %q: use box, cylinder, sphere, or cone", shape)
	}
}
