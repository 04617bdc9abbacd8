// Package language maps file extensions to languages and resolves the parser
// responsible for each one: a tree-sitter grammar for conventional languages,
// or the built-in MeTTa front-end for the DSL.
package language

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Language identifies a source language supported by the pipeline.
type Language string

const (
	LangGo         Language = "go"
	LangPython     Language = "python"
	LangRust       Language = "rust"
	LangTypeScript Language = "typescript"
	LangMetta      Language = "metta"
)

// ErrParserUnavailable is returned by ResolveParser when a language is known
// but no parser for it is registered. Callers are expected to record it as a
// per-file error rather than aborting a whole run.
var ErrParserUnavailable = errors.New("parser unavailable")

// extTable maps lowercase file extensions to languages.
var extTable = map[string]Language{
	".go":    LangGo,
	".py":    LangPython,
	".rs":    LangRust,
	".ts":    LangTypeScript,
	".tsx":   LangTypeScript,
	".metta": LangMetta,
	".mta":   LangMetta,
}

// Detect returns the language for a file path based on its extension.
// Matching is case-insensitive. The second return value is false when the
// extension is not recognized.
func Detect(path string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := extTable[ext]
	return lang, ok
}

// IsMetta reports whether the language uses the built-in MeTTa front-end.
func IsMetta(lang Language) bool {
	return lang == LangMetta
}

// ParserHandle identifies the parser to use for one language: either the
// MeTTa front-end sentinel or a tree-sitter grammar.
type ParserHandle struct {
	Metta   bool
	Grammar *tree_sitter.Language
}

// Registry resolves languages to parser handles. It is immutable after
// construction and safe for concurrent readers.
type Registry struct {
	grammars map[Language]*tree_sitter.Language
}

// NewRegistry creates a Registry with all supported tree-sitter grammars
// registered.
func NewRegistry() *Registry {
	return &Registry{
		grammars: map[Language]*tree_sitter.Language{
			LangGo:         tree_sitter.NewLanguage(tree_sitter_go.Language()),
			LangPython:     tree_sitter.NewLanguage(tree_sitter_python.Language()),
			LangRust:       tree_sitter.NewLanguage(tree_sitter_rust.Language()),
			LangTypeScript: tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
		},
	}
}

// NewRegistryFor creates a Registry restricted to the given languages.
// LangMetta needs no grammar and is always resolvable.
func NewRegistryFor(langs []Language) *Registry {
	full := NewRegistry()
	restricted := make(map[Language]*tree_sitter.Language, len(langs))
	for _, l := range langs {
		if g, ok := full.grammars[l]; ok {
			restricted[l] = g
		}
	}
	return &Registry{grammars: restricted}
}

// ResolveParser returns the parser handle for a language. The MeTTa DSL
// resolves to the front-end sentinel; conventional languages resolve to their
// registered tree-sitter grammar, or ErrParserUnavailable when none is
// registered.
func (r *Registry) ResolveParser(lang Language) (ParserHandle, error) {
	if IsMetta(lang) {
		return ParserHandle{Metta: true}, nil
	}
	grammar, ok := r.grammars[lang]
	if !ok {
		return ParserHandle{}, fmt.Errorf("%w: %s", ErrParserUnavailable, lang)
	}
	return ParserHandle{Grammar: grammar}, nil
}

// Languages returns the resolvable languages, sorted, including the DSL.
func (r *Registry) Languages() []Language {
	out := make([]Language, 0, len(r.grammars)+1)
	for l := range r.grammars {
		out = append(out, l)
	}
	out = append(out, LangMetta)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
