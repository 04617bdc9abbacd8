package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/config"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/doctree"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/export"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/graph"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/language"
)

// applyConfig fills in flags the user did not set from the project config.
// Explicit flags always win.
func applyConfig(flags *cliFlags, fs *flag.FlagSet, cfg *config.ProjectConfig) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["out"] && cfg.OutputPath != "" {
		flags.Output = cfg.OutputPath
	}
	if !set["graph-out"] && cfg.GraphOutput != "" {
		flags.GraphOutput = cfg.GraphOutput
	}
	if !set["graph-json"] && cfg.GraphJSONOutput != "" {
		flags.GraphJSONOutput = cfg.GraphJSONOutput
	}
	if !set["workers"] && cfg.Workers > 0 {
		flags.Workers = cfg.Workers
	}
	if !set["metta-only"] && cfg.MettaOnly {
		flags.MettaOnly = true
	}
	if !set["include-variables"] && cfg.IncludeVariables {
		flags.IncludeVariables = true
	}
	if !set["verbose"] && cfg.Verbose {
		flags.Verbose = true
	}
}

// runScan performs the one-shot pipeline: walk, derive graph, write outputs.
func runScan(flags cliFlags, cfg *config.ProjectConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	walker := doctree.NewWalker(registryFrom(cfg))
	walker.Workers = flags.Workers

	var reporter *doctree.ProgressReporter
	var progressDone chan struct{}
	if flags.Verbose {
		reporter = doctree.NewProgressReporter()
		progressDone = make(chan struct{})
		walker.OnProgress = reporter.Emit
		go func() {
			defer close(progressDone)
			for ev := range reporter.Subscribe() {
				fmt.Fprintln(os.Stderr, doctree.FormatProgress(ev))
			}
		}()
	}

	tree, err := walker.Walk(ctx, flags.Root)
	if reporter != nil {
		reporter.Close()
		<-progressDone
	}
	if err != nil {
		return fmt.Errorf("walk %s: %w", flags.Root, err)
	}

	outTree := tree
	if flags.MettaOnly {
		outTree = doctree.FilterMetta(tree)
		if outTree == nil {
			fmt.Fprintln(os.Stderr, "warning: no MeTTa files found; writing empty tree")
			outTree = &doctree.Node{Name: tree.Name, Path: tree.Path, Type: doctree.TypeFolder, Children: []*doctree.Node{}}
		}
	}

	if err := export.WriteTreeJSON(flags.Output, outTree); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", flags.Output)

	builder := graph.NewBuilder()
	builder.IncludeVariables = flags.IncludeVariables
	g := builder.Build(tree)

	if flags.GraphOutput != "" {
		if err := export.WriteGraphML(flags.GraphOutput, g); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", flags.GraphOutput)
	}
	if flags.GraphJSONOutput != "" {
		if err := export.WriteGraphJSON(flags.GraphJSONOutput, g); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", flags.GraphJSONOutput)
	}
	if flags.Mermaid {
		fmt.Print(export.GenerateMermaid(g))
	}

	if flags.GraphDB != "" {
		store, err := graph.OpenStore(flags.GraphDB)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := graph.LoadGraph(ctx, store, g); err != nil {
			return fmt.Errorf("load graph db: %w", err)
		}
		fmt.Printf("loaded graph into %s\n", flags.GraphDB)
	}

	fmt.Println(doctree.Summarize(tree))
	return nil
}

// registryFrom builds the parser registry, restricted to the configured
// language list when one is set.
func registryFrom(cfg *config.ProjectConfig) *language.Registry {
	if cfg == nil || len(cfg.Languages) == 0 {
		return language.NewRegistry()
	}
	langs := make([]language.Language, 0, len(cfg.Languages))
	for _, l := range cfg.Languages {
		langs = append(langs, language.Language(l))
	}
	return language.NewRegistryFor(langs)
}
