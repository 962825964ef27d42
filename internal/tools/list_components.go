package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/viselabs/vise/internal/assembly"
)

// ListComponentsTool handles the cad_list_components MCP tool.
// It flattens the occurrence tree and reports every occurrence with its
// current global index.
type ListComponentsTool struct {
	session *Session
}

// NewListComponentsTool creates a ListComponentsTool bound to a session.
func NewListComponentsTool(session *Session) *ListComponentsTool {
	return &ListComponentsTool{session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *ListComponentsTool) Definition() mcp.Tool {
	return mcp.NewTool("cad_list_components",
		mcp.WithDescription(
			"List all occurrences in the design with their global indices. "+
				"Indices are derived fresh on every call and shift when the tree "+
				"is edited, so always list right before referencing an index. "+
				"The root component has the reserved index -1 and is always grounded.",
		),
	)
}

type occurrenceEntry struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	FullPath  string `json:"full_path"`
	Component string `json:"component"`
	Grounded  bool   `json:"is_grounded"`
	Visible   bool   `json:"is_visible"`
	BodyCount int    `json:"body_count"`
}

// Handle processes the cad_list_components tool call.
func (t *ListComponentsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	t.session.mu.Lock()
	defer t.session.mu.Unlock()

	d := t.session.design
	occs := assembly.Flatten(d)

	entries := []occurrenceEntry{{
		Index:     assembly.RootIndex,
		Name:      d.Root().Name,
		FullPath:  "",
		Component: d.Root().Name,
		Grounded:  true,
		Visible:   true,
		BodyCount: len(d.Root().Bodies),
	}}
	for i, occ := range occs {
		entries = append(entries, occurrenceEntry{
			Index:     i,
			Name:      occ.Name,
			FullPath:  occ.FullPath,
			Component: occ.Component.Name,
			Grounded:  occ.Grounded,
			Visible:   occ.Visible,
			BodyCount: len(occ.Component.Bodies),
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Components in %q\n\n**Units:** %s\n", d.Root().Name, d.Units())
	if len(occs) == 0 {
		b.WriteString("**Occurrences:** 0 (root is -1)\n\n")
		b.WriteString("The design is empty. Use `cad_create_component` to add one.\n\n")
	} else {
		fmt.Fprintf(&b, "**Occurrences:** %d (indices 0-%d; root is -1)\n\n", len(occs), len(occs)-1)
	}
	b.WriteString(jsonBlock(entries))

	t.session.record("cad_list_components", req, start, "")
	return mcp.NewToolResultText(b.String()), nil
}
