package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/viselabs/vise/internal/assembly"
	"github.com/viselabs/vise/internal/design"
)

// CreateComponentTool handles the cad_create_component MCP tool.
type CreateComponentTool struct {
	session *Session
}

// NewCreateComponentTool creates a CreateComponentTool bound to a session.
func NewCreateComponentTool(session *Session) *CreateComponentTool {
	return &CreateComponentTool{session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *CreateComponentTool) Definition() mcp.Tool {
	return mcp.NewTool("cad_create_component",
		mcp.WithDescription(
			"Create a new component and place one occurrence of it. "+
				"Placed under the root by default; pass parent_index or "+
				"parent_name to nest it. Rotations are in degrees, applied "+
				"x, then y, then z, before the translation.",
		),
		mcp.WithString("name",
			mcp.Description("Component name. Auto-generated when omitted."),
		),
		mcp.WithNumber("parent_index",
			mcp.Description("Global index of the parent occurrence. -1 or omitted means the root."),
		),
		mcp.WithString("parent_name",
			mcp.Description("Name of the parent occurrence, checked if parent_index is absent."),
		),
		mcp.WithNumber("x", mcp.Description("Placement x, in design units.")),
		mcp.WithNumber("y", mcp.Description("Placement y, in design units.")),
		mcp.WithNumber("z", mcp.Description("Placement z, in design units.")),
		mcp.WithNumber("rx", mcp.Description("Rotation about x, degrees.")),
		mcp.WithNumber("ry", mcp.Description("Rotation about y, degrees.")),
		mcp.WithNumber("rz", mcp.Description("Rotation about z, degrees.")),
	)
}

// Handle processes the cad_create_component tool call.
func (t *CreateComponentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	t.session.mu.Lock()
	defer t.session.mu.Unlock()

	d := t.session.design

	var parent *design.Occurrence
	sel := selectorArg(req, "parent")
	if sel.Index != nil && *sel.Index == assembly.RootIndex {
		sel.Index = nil
		sel.Name = nil
	}
	if sel.Index != nil || sel.Name != nil {
		idx := assembly.NewIndex(d)
		occ, err := resolveParent(idx, sel)
		if err != nil {
			t.session.record("cad_create_component", req, start, err.Error())
			return toolError(err), nil
		}
		parent = occ
	}

	transform := design.Placement(
		req.GetFloat("x", 0), req.GetFloat("y", 0), req.GetFloat("z", 0),
		req.GetFloat("rx", 0), req.GetFloat("ry", 0), req.GetFloat("rz", 0),
	)
	occ := d.AddComponent(parent, req.GetString("name", ""), transform)

	// Re-flatten to report the fresh global index of the new occurrence.
	index := -1
	for i, o := range assembly.Flatten(d) {
		if o == occ {
			index = i
			break
		}
	}

	response := fmt.Sprintf(
		"# Component Created\n\n**Name:** %s\n**Occurrence:** %s\n**Index:** %d\n\n%s",
		occ.Component.Name, occ.Name, index,
		jsonBlock(occurrenceEntry{
			Index:     index,
			Name:      occ.Name,
			FullPath:  occ.FullPath,
			Component: occ.Component.Name,
			Grounded:  occ.Grounded,
			Visible:   occ.Visible,
		}),
	)

	t.session.record("cad_create_component", req, start, "")
	return mcp.NewToolResultText(response), nil
}

func resolveParent(idx *assembly.Index, sel assembly.OccurrenceSelector) (*design.Occurrence, error) {
	if sel.Index != nil {
		return idx.ByIndex(*sel.Index)
	}
	return idx.ByName(*sel.Name)
}
