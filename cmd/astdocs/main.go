package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/config"
)

// CLI flags parsed from command line.
type cliFlags struct {
	Root             string
	Output           string
	GraphOutput      string
	GraphJSONOutput  string
	GraphDB          string
	Workers          int
	MettaOnly        bool
	IncludeVariables bool
	Mermaid          bool
	Verbose          bool
	ServeMCP         bool
	MCPAddr          string
	Version          bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("astdocs", flag.ContinueOnError)
	fs.StringVar(&flags.Root, "root", ".", "path to the directory to scan")
	fs.StringVar(&flags.Output, "out", "docs/ast_summary.json", "output path for the document tree JSON")
	fs.StringVar(&flags.GraphOutput, "graph-out", "docs/ast_graph.graphml", "output path for the GraphML graph (empty to skip)")
	fs.StringVar(&flags.GraphJSONOutput, "graph-json", "", "output path for the graph as JSON (empty to skip)")
	fs.StringVar(&flags.GraphDB, "graph-db", "", "directory for a persistent graph database (empty to skip)")
	fs.IntVar(&flags.Workers, "workers", 1, "number of concurrent file workers")
	fs.BoolVar(&flags.MettaOnly, "metta-only", false, "restrict the tree output to MeTTa files")
	fs.BoolVar(&flags.IncludeVariables, "include-variables", false, "add variable nodes and uses edges to the graph")
	fs.BoolVar(&flags.Mermaid, "mermaid", false, "print a Mermaid diagram of the graph to stdout")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable per-file progress output")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server instead of a one-shot scan")
	fs.StringVar(&flags.MCPAddr, "mcp-addr", "localhost:8137", "listen address for the MCP server")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	// Load the project config once; both modes share it.
	cfg, err := config.Load(flags.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: bad config file: %v\n", err)
		cfg = &config.ProjectConfig{}
	}
	applyConfig(&flags, fs, cfg)

	if flags.ServeMCP {
		return runServe(flags, cfg)
	}
	return runScan(flags, cfg)
}
