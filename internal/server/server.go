// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it resolves concrete implementations
// (settings, journal, design session) and injects them into the tools
// that depend on them. No business logic lives here, only wiring.
package server

import (
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/viselabs/vise/internal/config"
	"github.com/viselabs/vise/internal/journal"
	"github.com/viselabs/vise/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all CAD tools
// registered. The returned cleanup function closes the journal database
// and must be called on shutdown (typically via defer). It is always
// non-nil and safe to call even if the journal failed to open.
func New() (*server.MCPServer, func(), error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, noop, err
	}

	s := server.NewMCPServer(
		"vise",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// The journal is an independent subsystem: if it fails to open,
	// CAD tools continue working. We log a warning and run without
	// command history.
	cleanup := noop
	var j *journal.Store
	if !settings.JournalDisabled {
		j, err = journal.New(journal.Config{DataDir: settings.DataDir, Design: settings.DesignName})
		if err != nil {
			log.Printf("WARNING: command journal disabled: %v", err)
			j = nil
		} else {
			store := j
			cleanup = func() {
				if err := store.Close(); err != nil {
					log.Printf("WARNING: journal close: %v", err)
				}
			}
		}
	}

	session := tools.NewSession(settings, j)
	registerTools(s, session)

	return s, cleanup, nil
}

// loadSettings reads the config file from the default data directory,
// falling back to defaults when none exists.
func loadSettings() (config.Settings, error) {
	defaults := config.Default()
	settings, err := config.NewFileStore().Load(defaults.DataDir)
	if err != nil {
		return config.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return settings, nil
}

func registerTools(s *server.MCPServer, session *tools.Session) {
	listComponents := tools.NewListComponentsTool(session)
	s.AddTool(listComponents.Definition(), listComponents.Handle)

	createComponent := tools.NewCreateComponentTool(session)
	s.AddTool(createComponent.Definition(), createComponent.Handle)

	addBody := tools.NewAddBodyTool(session)
	s.AddTool(addBody.Definition(), addBody.Handle)

	ground := tools.NewGroundComponentTool(session)
	s.AddTool(ground.Definition(), ground.Handle)

	listBodies := tools.NewListBodiesTool(session)
	s.AddTool(listBodies.Definition(), listBodies.Handle)

	circularEdges := tools.NewCircularEdgesTool(session)
	s.AddTool(circularEdges.Definition(), circularEdges.Handle)

	createJoint := tools.NewCreateJointTool(session)
	s.AddTool(createJoint.Definition(), createJoint.Handle)

	asBuiltJoint := tools.NewAsBuiltJointTool(session)
	s.AddTool(asBuiltJoint.Definition(), asBuiltJoint.Handle)

	listJoints := tools.NewListJointsTool(session)
	s.AddTool(listJoints.Definition(), listJoints.Handle)

	history := tools.NewSessionHistoryTool(session)
	s.AddTool(history.Definition(), history.Handle)
}

// noop is a no-op cleanup function used as the default when the journal
// never opened.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to drive the CAD session correctly.
func serverInstructions() string {
	return `You have access to Vise, a parametric CAD assembly MCP server.

## CORE RULE: INDICES ARE EPHEMERAL

Occurrence, body, face, and edge indices are re-derived on every call
and shift whenever the tree is edited. There are no stable handles.
Always call cad_list_components (and cad_list_bodies for geometry)
immediately before any command that takes an index. Never reuse an
index from an earlier exchange after a structural edit.

The root component has the reserved index -1 and is always grounded.

## BUILDING AN ASSEMBLY

1. cad_create_component for each part (placement in design units,
   rotations in degrees).
2. cad_add_body to give each component solid geometry.
3. cad_ground_component to fix the base part.
4. cad_list_bodies / cad_circular_edges to find faces and edges for
   joint geometry.
5. cad_create_joint with two geometry specs, or
   cad_create_as_built_joint to capture the current relative placement.
6. cad_list_joints to verify.

## JOINTS

Joint types: rigid, revolute, slider, cylindrical, ball, planar,
pin_slot. Angles are given in degrees. Offsets are in design units.
A joint connected to an absent occurrence reads as "Ground".
Creating a joint is not idempotent: repeating a command creates a
second joint.

## ERRORS

Errors are classified [validation], [resolution], [engine], or
[unsupported] and always name the offending parameter. A failed
command commits nothing; correct the parameter and retry.`
}
