package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/viselabs/vise/internal/assembly"
	"github.com/viselabs/vise/internal/design"
)

// CircularEdgesTool handles the cad_circular_edges MCP tool. It scans
// one body for circular edges (hole rims, shaft ends), the usual
// anchors for revolute and cylindrical joints. Every non-circular edge
// is reported with the reason it was skipped rather than dropped
// silently.
type CircularEdgesTool struct {
	session *Session
}

// NewCircularEdgesTool creates a CircularEdgesTool bound to a session.
func NewCircularEdgesTool(session *Session) *CircularEdgesTool {
	return &CircularEdgesTool{session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *CircularEdgesTool) Definition() mcp.Tool {
	return mcp.NewTool("cad_circular_edges",
		mcp.WithDescription(
			"Find the circular edges of a body, with world-space centers and "+
				"radii. Edge indices are the ones geometry specs use. Edges "+
				"that are not circular are listed separately with the reason "+
				"each was skipped.",
		),
		mcp.WithNumber("occurrence_index",
			mcp.Description("Global index of the target occurrence."),
		),
		mcp.WithString("occurrence_name",
			mcp.Description("Name of the target occurrence, checked if the index is absent."),
		),
		mcp.WithNumber("body_index",
			mcp.Description("Body to scan. Defaults to 0."),
		),
	)
}

type circularEdge struct {
	Index  int        `json:"edge_index"`
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

type skippedEdge struct {
	Index  int    `json:"edge_index"`
	Reason string `json:"reason"`
}

type circularEdgesResult struct {
	Body    string         `json:"body"`
	Edges   []circularEdge `json:"edges"`
	Skipped []skippedEdge  `json:"skipped"`
}

// Handle processes the cad_circular_edges tool call.
func (t *CircularEdgesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	t.session.mu.Lock()
	defer t.session.mu.Unlock()

	occ, err := resolveOccurrence(t.session.design, req, "occurrence")
	if err != nil {
		t.session.record("cad_circular_edges", req, start, err.Error())
		return toolError(err), nil
	}

	bodyIndex := intArg(req, "body_index", 0)
	n := len(occ.Component.Bodies)
	if n == 0 {
		err := assembly.Resolutionf("component %q has no bodies", occ.Component.Name)
		t.session.record("cad_circular_edges", req, start, err.Error())
		return toolError(err), nil
	}
	if bodyIndex < 0 || bodyIndex >= n {
		err := assembly.Validationf("invalid body index %d: component %q has %d bodies (0-%d)",
			bodyIndex, occ.Component.Name, n, n-1)
		t.session.record("cad_circular_edges", req, start, err.Error())
		return toolError(err), nil
	}
	body := occ.Component.Bodies[bodyIndex]

	world := occ.WorldTransform()
	result := circularEdgesResult{
		Body:    body.Name,
		Edges:   []circularEdge{},
		Skipped: []skippedEdge{},
	}
	for i, e := range body.Edges {
		switch e.Curve {
		case design.CurveCircle, design.CurveArc:
			c := world.MulPosition(e.Center)
			result.Edges = append(result.Edges, circularEdge{
				Index:  i,
				Center: [3]float64{c.X, c.Y, c.Z},
				Radius: e.Radius,
			})
		default:
			result.Skipped = append(result.Skipped, skippedEdge{
				Index:  i,
				Reason: fmt.Sprintf("curve is %s, not a circle or arc", e.Curve),
			})
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Circular Edges of %s / %s\n\n**Found:** %d\n**Skipped:** %d\n\n",
		occ.Name, body.Name, len(result.Edges), len(result.Skipped))
	b.WriteString(jsonBlock(result))

	t.session.record("cad_circular_edges", req, start, "")
	return mcp.NewToolResultText(b.String()), nil
}
