package doctree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/extract"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/language"
	"github.com/Tesfalegnp/Auto-Document-Generation/internal/metta"
)

// Walker assembles the hierarchical document for a root path. The tree shape
// is always built sequentially; with Workers > 1 the per-file parse+extract
// step runs on an errgroup pool, landing results in pre-built name-sorted
// slots so the output is identical to a sequential walk.
type Walker struct {
	registry *language.Registry

	// Workers bounds concurrent per-file processing. Values <= 1 mean
	// sequential.
	Workers int

	// OnProgress, when set, receives one working and one terminal event per
	// processed file.
	OnProgress func(ProgressEvent)
}

// NewWalker creates a sequential walker using the given registry.
func NewWalker(registry *language.Registry) *Walker {
	return &Walker{registry: registry, Workers: 1}
}

// Walk builds the tree rooted at rootPath. Directories become folder nodes
// with name-sorted children, hidden entries excluded; files become file
// nodes. Every failure while reading, parsing, or extracting one file is
// recorded on that file's node as ParseError and never aborts the rest of
// the walk.
func (w *Walker) Walk(ctx context.Context, rootPath string) (*Node, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}

	var files []*Node
	root, err := w.buildSkeleton(rootPath, info.IsDir(), &files)
	if err != nil {
		return nil, err
	}

	if w.Workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(w.Workers)
		for _, f := range files {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				w.processFile(f)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			w.processFile(f)
		}
	}

	return root, nil
}

// buildSkeleton creates the folder/file shape without touching file contents,
// collecting file nodes for later processing.
func (w *Walker) buildSkeleton(path string, isDir bool, files *[]*Node) (*Node, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if !isDir {
		node := &Node{
			Name: filepath.Base(path),
			Path: abs,
			Type: TypeFile,
		}
		*files = append(*files, node)
		return node, nil
	}

	node := &Node{
		Name:     filepath.Base(path),
		Path:     abs,
		Type:     TypeFolder,
		Children: []*Node{},
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", path, err)
	}

	// os.ReadDir returns entries sorted by name.
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		child, err := w.buildSkeleton(filepath.Join(path, entry.Name()), entry.IsDir(), files)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// processFile resolves, parses, and extracts one file in place. All failures,
// including panics escaping cgo grammar code, are downgraded to ParseError on
// the node.
func (w *Walker) processFile(node *Node) {
	lang, ok := language.Detect(node.Path)
	if !ok {
		return
	}

	w.emit(ProgressEvent{Path: node.Path, Status: ProgressWorking})

	defs, kind, err := w.extractFile(node.Path, lang)
	if err != nil {
		node.ParseError = err.Error()
		w.emit(ProgressEvent{Path: node.Path, Status: ProgressFailed, Message: err.Error()})
		return
	}

	node.Language = lang
	node.Definitions = defs
	node.ParserKind = kind
	w.emit(ProgressEvent{Path: node.Path, Status: ProgressComplete})
}

// extractFile runs the per-file pipeline: read, resolve parser, parse,
// extract. It returns a result rather than unwinding, so the walker's
// per-file boundary is the only place errors surface.
func (w *Walker) extractFile(path string, lang language.Language) (defs Definitions, kind ParserKind, err error) {
	defer func() {
		if r := recover(); r != nil {
			defs, kind = nil, ""
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}

	handle, err := w.registry.ResolveParser(lang)
	if err != nil {
		return nil, "", err
	}

	if handle.Metta {
		ast := metta.NewParser().Parse(source)
		return metta.Extract(ast), ParserDSL, nil
	}

	record, err := extract.FromSource(source, handle.Grammar, lang)
	if err != nil {
		return nil, "", err
	}
	return record, ParserExternal, nil
}

func (w *Walker) emit(ev ProgressEvent) {
	if w.OnProgress != nil {
		w.OnProgress(ev)
	}
}
