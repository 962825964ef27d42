// Package tools implements the MCP tool handlers for the CAD session.
//
// Each tool is a struct that receives its dependencies via constructor
// and exposes Definition() for registration plus Handle() compatible
// with mcp-go's CallToolRequest signature. One file = one tool.
//
// All tools share a Session: the live design, the unit setting, and the
// command journal. The underlying design engine is not reentrant, so
// the session serializes commands; each one runs to completion before
// the next begins.
package tools

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/viselabs/vise/internal/assembly"
	"github.com/viselabs/vise/internal/config"
	"github.com/viselabs/vise/internal/design"
	"github.com/viselabs/vise/internal/journal"
)

// Session is the shared state behind all CAD tools.
type Session struct {
	mu      sync.Mutex
	design  *design.Design
	journal *journal.Store
}

// NewSession creates a session with a fresh design using the configured
// name and units. journal may be nil, in which case commands are simply
// not recorded.
func NewSession(settings config.Settings, j *journal.Store) *Session {
	return &Session{
		design:  design.NewDesign(settings.DesignName, settings.Units),
		journal: j,
	}
}

// Design returns the session's design.
func (s *Session) Design() *design.Design { return s.design }

// record journals one finished command. Journal failures are dropped:
// a broken journal must not fail the command it records.
func (s *Session) record(action string, req mcp.CallToolRequest, start time.Time, errText string) {
	if s.journal == nil {
		return
	}
	params, _ := json.Marshal(req.GetArguments())
	_ = s.journal.Record(action, string(params), errText == "", errText, time.Since(start))
}

// intArg extracts an integer argument, returning defaultVal if the key
// is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// boolArg extracts a boolean argument.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// optIntArg extracts an optional integer argument, nil when absent.
func optIntArg(req mcp.CallToolRequest, key string) *int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return nil
	}
	i := int(v)
	return &i
}

// optStrArg extracts an optional non-empty string argument, nil when
// absent or empty.
func optStrArg(req mcp.CallToolRequest, key string) *string {
	v, ok := req.GetArguments()[key].(string)
	if !ok || v == "" {
		return nil
	}
	return &v
}

// selectorArg builds an occurrence selector from <prefix>_index and
// <prefix>_name arguments.
func selectorArg(req mcp.CallToolRequest, prefix string) assembly.OccurrenceSelector {
	return assembly.OccurrenceSelector{
		Index: optIntArg(req, prefix+"_index"),
		Name:  optStrArg(req, prefix+"_name"),
	}
}

// resolveOccurrence resolves a required <prefix>_index / <prefix>_name
// selector against a fresh flattening of the design. The index is
// checked first when both are supplied.
func resolveOccurrence(d *design.Design, req mcp.CallToolRequest, prefix string) (*design.Occurrence, error) {
	sel := selectorArg(req, prefix)
	idx := assembly.NewIndex(d)
	switch {
	case sel.Index != nil:
		return idx.ByIndex(*sel.Index)
	case sel.Name != nil:
		return idx.ByName(*sel.Name)
	default:
		return nil, assembly.Validationf("%s: provide an occurrence index or name", prefix)
	}
}

// geometryArg extracts a GeometrySpec object argument, nil when absent.
// A value of any other type is a validation error rather than a silent nil.
func geometryArg(req mcp.CallToolRequest, key string) (*assembly.GeometrySpec, error) {
	val, present := req.GetArguments()[key]
	if !present {
		return nil, nil
	}
	raw, ok := val.(map[string]any)
	if !ok {
		return nil, assembly.Validationf("%s must be an object", key)
	}
	spec := &assembly.GeometrySpec{}
	if v, ok := raw["kind"].(string); ok {
		spec.Kind = v
	}
	if v, ok := raw["body_index"].(float64); ok {
		spec.BodyIndex = int(v)
	}
	if v, ok := raw["face_index"].(float64); ok {
		spec.FaceIndex = int(v)
	}
	if v, ok := raw["edge_index"].(float64); ok {
		spec.EdgeIndex = int(v)
	}
	if v, ok := raw["key_point"].(string); ok {
		spec.KeyPoint = v
	}
	return spec, nil
}

// jsonBlock renders v as a fenced JSON block for the result body.
func jsonBlock(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("```\nencoding error: %v\n```", err)
	}
	return fmt.Sprintf("```json\n%s\n```", data)
}

// toolError converts an assembly failure into a tool error result,
// prefixed with its classification code.
func toolError(err error) *mcp.CallToolResult {
	if code := assembly.CodeOf(err); code != "" {
		return mcp.NewToolResultError(fmt.Sprintf("[%s] %v", code, err))
	}
	return mcp.NewToolResultError(err.Error())
}
