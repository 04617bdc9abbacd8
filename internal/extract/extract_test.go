package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tesfalegnp/Auto-Document-Generation/internal/language"
)

// extractFixture parses a testdata file with the real grammar for lang.
func extractFixture(t *testing.T, relPath string, lang language.Language) *Definitions {
	t.Helper()
	source, err := os.ReadFile(filepath.Join("..", "..", "testdata", "fixtures", relPath))
	require.NoError(t, err)
	return extractSource(t, source, lang)
}

func extractSource(t *testing.T, source []byte, lang language.Language) *Definitions {
	t.Helper()
	handle, err := language.NewRegistry().ResolveParser(lang)
	require.NoError(t, err)
	defs, err := FromSource(source, handle.Grammar, lang)
	require.NoError(t, err)
	return defs
}

func classNames(defs *Definitions) []string {
	out := make([]string, len(defs.Classes))
	for i, c := range defs.Classes {
		out[i] = c.Name
	}
	return out
}

func funcNames(fns []FunctionDef) []string {
	out := make([]string, len(fns))
	for i, f := range fns {
		out[i] = f.Name
	}
	return out
}

func TestFromSource_GoModel(t *testing.T) {
	defs := extractFixture(t, filepath.Join("go_project", "model.go"), language.LangGo)

	assert.Equal(t, []string{"User", "Repository"}, classNames(defs))
	assert.Equal(t, 4, defs.Classes[0].Line)
	assert.Equal(t, 11, defs.Classes[1].Line)

	require.Len(t, defs.Functions, 1)
	fn := defs.Functions[0]
	assert.Equal(t, "newUser", fn.Name)
	assert.Equal(t, 16, fn.Line)
	assert.Equal(t, 3, fn.LineCount)
	assert.Empty(t, fn.Variables)
}

func TestFromSource_GoService(t *testing.T) {
	defs := extractFixture(t, filepath.Join("go_project", "service.go"), language.LangGo)

	// Go methods are not lexically nested in the type declaration, so they
	// land in the top-level function list.
	assert.Equal(t, []string{"UserService"}, classNames(defs))
	assert.Empty(t, defs.Classes[0].Functions)
	assert.Equal(t, []string{"NewUserService", "GetUser", "CreateUser"}, funcNames(defs.Functions))

	getUser := defs.Functions[1]
	assert.Equal(t, 16, getUser.Line)
	assert.Equal(t, 7, getUser.LineCount)
	assert.Equal(t, []string{"user"}, getUser.Variables)

	createUser := defs.Functions[2]
	assert.Equal(t, []string{"user", "err"}, createUser.Variables)
}

func TestFromSource_Python(t *testing.T) {
	defs := extractFixture(t, filepath.Join("py_project", "app.py"), language.LangPython)

	require.Len(t, defs.Classes, 1)
	greeter := defs.Classes[0]
	assert.Equal(t, "Greeter", greeter.Name)
	assert.Equal(t, 4, greeter.Line)
	assert.Equal(t, []string{"__init__", "greet"}, funcNames(greeter.Functions))
	assert.Equal(t, []string{"self.name"}, greeter.Functions[0].Variables)
	assert.Equal(t, []string{"message"}, greeter.Functions[1].Variables)

	require.Len(t, defs.Functions, 1)
	run := defs.Functions[0]
	assert.Equal(t, "run", run.Name)
	assert.Equal(t, 13, run.Line)
	assert.Equal(t, 3, run.LineCount)
	assert.Equal(t, []string{"g"}, run.Variables)
}

func TestFromSource_TypeScript(t *testing.T) {
	source := []byte(`class Greeter {
  greet(name: string): string {
    const message = "hi " + name;
    return message;
  }
}

function run(): string {
  const g = new Greeter();
  return g.greet("world");
}
`)
	defs := extractSource(t, source, language.LangTypeScript)

	require.Len(t, defs.Classes, 1)
	assert.Equal(t, "Greeter", defs.Classes[0].Name)
	require.Len(t, defs.Classes[0].Functions, 1)
	greet := defs.Classes[0].Functions[0]
	assert.Equal(t, "greet", greet.Name)
	assert.Equal(t, 2, greet.Line)
	assert.Equal(t, 4, greet.LineCount)
	assert.Equal(t, []string{"message"}, greet.Variables)

	require.Len(t, defs.Functions, 1)
	assert.Equal(t, "run", defs.Functions[0].Name)
	assert.Equal(t, []string{"g"}, defs.Functions[0].Variables)
}

func TestFromSource_Rust(t *testing.T) {
	source := []byte(`struct Point { x: i32, y: i32 }

fn origin() -> Point {
    let p = Point { x: 0, y: 0 };
    p
}
`)
	defs := extractSource(t, source, language.LangRust)

	assert.Equal(t, []string{"Point"}, classNames(defs))
	require.Len(t, defs.Functions, 1)
	origin := defs.Functions[0]
	assert.Equal(t, "origin", origin.Name)
	assert.Equal(t, 3, origin.Line)
	assert.Equal(t, 4, origin.LineCount)
	assert.Equal(t, []string{"p"}, origin.Variables)
}

func TestFromTree_UnknownLanguage(t *testing.T) {
	handle, err := language.NewRegistry().ResolveParser(language.LangGo)
	require.NoError(t, err)

	_, err = FromSource([]byte("package x"), handle.Grammar, language.Language("cobol"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no extraction table")
}

func TestFromSource_EmptySource(t *testing.T) {
	defs := extractSource(t, nil, language.LangGo)
	assert.Empty(t, defs.Classes)
	assert.Empty(t, defs.Functions)
}
