package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListBodiesTool handles the cad_list_bodies MCP tool. It reports every
// body of an occurrence's component with face and edge classifications,
// which is what geometry specs for cad_create_joint are written against.
type ListBodiesTool struct {
	session *Session
}

// NewListBodiesTool creates a ListBodiesTool bound to a session.
func NewListBodiesTool(session *Session) *ListBodiesTool {
	return &ListBodiesTool{session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *ListBodiesTool) Definition() mcp.Tool {
	return mcp.NewTool("cad_list_bodies",
		mcp.WithDescription(
			"List the bodies of an occurrence's component, with per-face "+
				"surface classification (plane, cylinder, cone, sphere) and "+
				"per-edge curve classification (line, circle, arc). Body, face, "+
				"and edge indices here are the ones geometry specs use.",
		),
		mcp.WithNumber("occurrence_index",
			mcp.Description("Global index of the target occurrence."),
		),
		mcp.WithString("occurrence_name",
			mcp.Description("Name of the target occurrence, checked if the index is absent."),
		),
	)
}

type faceEntry struct {
	Index   int     `json:"index"`
	Surface string  `json:"surface"`
	Radius  float64 `json:"radius,omitempty"`
}

type edgeEntry struct {
	Index  int     `json:"index"`
	Curve  string  `json:"curve"`
	Radius float64 `json:"radius,omitempty"`
}

type boundingBox struct {
	Min  [3]float64 `json:"min"`
	Max  [3]float64 `json:"max"`
	Size [3]float64 `json:"size"`
}

type bodyEntry struct {
	Index       int         `json:"index"`
	Name        string      `json:"name"`
	IsSolid     bool        `json:"is_solid"`
	Volume      float64     `json:"volume"`
	Area        float64     `json:"area"`
	BoundingBox boundingBox `json:"bounding_box"`
	Faces       []faceEntry `json:"faces"`
	Edges       []edgeEntry `json:"edges"`
}

// Handle processes the cad_list_bodies tool call.
func (t *ListBodiesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	t.session.mu.Lock()
	defer t.session.mu.Unlock()

	occ, err := resolveOccurrence(t.session.design, req, "occurrence")
	if err != nil {
		t.session.record("cad_list_bodies", req, start, err.Error())
		return toolError(err), nil
	}

	entries := make([]bodyEntry, 0, len(occ.Component.Bodies))
	for i, body := range occ.Component.Bodies {
		e := bodyEntry{
			Index:   i,
			Name:    body.Name,
			IsSolid: body.Solid,
			Volume:  body.Volume,
			Area:    body.Area,
			BoundingBox: boundingBox{
				Min:  [3]float64{body.BoxMin.X, body.BoxMin.Y, body.BoxMin.Z},
				Max:  [3]float64{body.BoxMax.X, body.BoxMax.Y, body.BoxMax.Z},
				Size: [3]float64{body.BoxMax.X - body.BoxMin.X, body.BoxMax.Y - body.BoxMin.Y, body.BoxMax.Z - body.BoxMin.Z},
			},
			Faces: make([]faceEntry, 0, len(body.Faces)),
			Edges: make([]edgeEntry, 0, len(body.Edges)),
		}
		for fi, f := range body.Faces {
			e.Faces = append(e.Faces, faceEntry{Index: fi, Surface: f.Surface.String(), Radius: f.Radius})
		}
		for ei, ed := range body.Edges {
			e.Edges = append(e.Edges, edgeEntry{Index: ei, Curve: ed.Curve.String(), Radius: ed.Radius})
		}
		entries = append(entries, e)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Bodies of %s\n\n**Component:** %s\n**Bodies:** %d\n\n",
		occ.Name, occ.Component.Name, len(entries))
	if len(entries) == 0 {
		b.WriteString("No bodies yet. Use `cad_add_body` to add one.\n\n")
	}
	b.WriteString(jsonBlock(entries))

	t.session.record("cad_list_bodies", req, start, "")
	return mcp.NewToolResultText(b.String()), nil
}
