// Vise: parametric CAD assembly MCP server
//
// An MCP server that lets AI tools build and joint parametric CAD
// assemblies through structured commands: components, occurrences,
// primitive bodies, and the seven kinematic joint types.
//
// Usage:
//
//	vise serve     # Start MCP server (stdio transport)
//	vise version   # Print the version
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	viseserver "github.com/viselabs/vise/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("vise v%s\n", viseserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	s, cleanup, err := viseserver.New()
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Flush the journal on interrupt. The stdio server itself exits
	// when its stdin closes.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(0)
	}()

	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Println(`vise - parametric CAD assembly MCP server

Usage:
  vise serve      Start the MCP server (stdio transport)
  vise version    Print the version
  vise help       Show this help

MCP client configuration:
  {
    "mcpServers": {
      "vise": {
        "command": "vise",
        "args": ["serve"]
      }
    }
  }`)
}
