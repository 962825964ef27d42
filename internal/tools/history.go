package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// SessionHistoryTool handles the cad_session_history MCP tool. It reads
// back the command journal of the current session.
type SessionHistoryTool struct {
	session *Session
}

// NewSessionHistoryTool creates a SessionHistoryTool bound to a session.
func NewSessionHistoryTool(session *Session) *SessionHistoryTool {
	return &SessionHistoryTool{session: session}
}

// Definition returns the MCP tool definition for registration.
func (t *SessionHistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("cad_session_history",
		mcp.WithDescription(
			"Show the most recent commands of this session from the journal, "+
				"newest first, with success flags and durations.",
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum entries to return. Defaults to 20."),
		),
	)
}

// Handle processes the cad_session_history tool call.
func (t *SessionHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t.session.mu.Lock()
	defer t.session.mu.Unlock()

	if t.session.journal == nil {
		return mcp.NewToolResultError("command journaling is disabled for this session"), nil
	}

	entries, err := t.session.journal.Recent(intArg(req, "limit", 20))
	if err != nil {
		return nil, fmt.Errorf("reading session history: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Session History\n\n**Session:** %s\n**Commands:** %d\n\n",
		t.session.journal.SessionID(), len(entries))
	b.WriteString(jsonBlock(entries))

	return mcp.NewToolResultText(b.String()), nil
}
