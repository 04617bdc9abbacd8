package language

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		lang Language
		ok   bool
	}{
		{"main.go", LangGo, true},
		{"src/app.py", LangPython, true},
		{"lib.rs", LangRust, true},
		{"index.ts", LangTypeScript, true},
		{"view.tsx", LangTypeScript, true},
		{"kb.metta", LangMetta, true},
		{"kb.mta", LangMetta, true},
		{"KB.METTA", LangMetta, true}, // case-insensitive
		{"notes.txt", "", false},
		{"Makefile", "", false},
		{"archive.tar.go", LangGo, true}, // last extension wins
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			lang, ok := Detect(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.lang, lang)
		})
	}
}

func TestRegistry_ResolveParser(t *testing.T) {
	r := NewRegistry()

	for _, lang := range []Language{LangGo, LangPython, LangRust, LangTypeScript} {
		handle, err := r.ResolveParser(lang)
		require.NoError(t, err, "language %s", lang)
		assert.False(t, handle.Metta)
		assert.NotNil(t, handle.Grammar)
	}

	handle, err := r.ResolveParser(LangMetta)
	require.NoError(t, err)
	assert.True(t, handle.Metta)
	assert.Nil(t, handle.Grammar)
}

func TestRegistry_Restricted(t *testing.T) {
	r := NewRegistryFor([]Language{LangGo})

	_, err := r.ResolveParser(LangGo)
	require.NoError(t, err)

	_, err = r.ResolveParser(LangPython)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParserUnavailable))

	// The DSL front-end needs no grammar and always resolves.
	handle, err := r.ResolveParser(LangMetta)
	require.NoError(t, err)
	assert.True(t, handle.Metta)
}

func TestRegistry_Languages(t *testing.T) {
	assert.Equal(t,
		[]Language{LangGo, LangMetta, LangPython, LangRust, LangTypeScript},
		NewRegistry().Languages())

	assert.Equal(t,
		[]Language{LangMetta, LangRust},
		NewRegistryFor([]Language{LangRust}).Languages())
}
