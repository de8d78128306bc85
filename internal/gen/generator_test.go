package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflection-assert/internal/analyze"
	"reflection-assert/internal/diagnostic"
)

var (
	int64Type  = &analyze.TypeInfo{ID: analyze.TypeID{Name: "int64"}, Kind: analyze.TypeKindBasic}
	stringType = &analyze.TypeInfo{ID: analyze.TypeID{Name: "string"}, Kind: analyze.TypeKindBasic}
)

func testGraph() *analyze.TypeGraph {
	base := &analyze.TypeInfo{
		ID:       analyze.TypeID{PkgPath: "example/shop", Name: "Base"},
		Kind:     analyze.TypeKindStruct,
		Exported: true,
		Fields: []analyze.FieldInfo{
			{Name: "ID", Exported: true, Type: int64Type},
		},
	}

	order := &analyze.TypeInfo{
		ID:       analyze.TypeID{PkgPath: "example/shop", Name: "Order"},
		Kind:     analyze.TypeKindStruct,
		Exported: true,
		Fields: []analyze.FieldInfo{
			{Name: "Base", Exported: true, Embedded: true, Type: base},
			{Name: "Name", Exported: true, Type: stringType},
			{Name: "Version", Exported: true, Type: int64Type, Tag: `refeq:"-"`},
			{Name: "secret", Type: stringType},
		},
	}

	empty := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example/shop", Name: "Marker"},
		Kind: analyze.TypeKindStruct,
	}

	return &analyze.TypeGraph{
		Types: map[analyze.TypeID]*analyze.TypeInfo{
			base.ID:  base,
			order.ID: order,
			empty.ID: empty,
		},
		Packages: map[string]*analyze.PackageInfo{
			"example/shop": {
				Path:  "example/shop",
				Name:  "shop",
				Dir:   "/src/shop",
				Types: []analyze.TypeID{base.ID, empty.ID, order.ID},
			},
			"example/empty": {Path: "example/empty", Name: "empty", Dir: "/src/empty"},
		},
	}
}

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator(Config{})

	files, err := g.Generate(testGraph())
	require.NoError(t, err)
	require.Len(t, files, 1)

	file := files[0]
	assert.Equal(t, "/src/shop", file.Dir)
	assert.Equal(t, DefaultFilename, file.Filename)

	want := `// Code generated by refeq-gen. DO NOT EDIT.

package shop

import "reflection-assert/fields"

func init() {
	fields.MustRegister(fields.Default,
		fields.Accessor[Base]{Name: "ID", Get: func(v *Base) any { return v.ID }},
	)
	fields.MustRegister(fields.Default,
		fields.Accessor[Order]{Name: "Base", Get: func(v *Order) any { return v.Base }, Embedded: true},
		fields.Accessor[Order]{Name: "Name", Get: func(v *Order) any { return v.Name }},
		fields.Accessor[Order]{Name: "Version", Get: func(v *Order) any { return v.Version }, Transient: true},
	)
}
`
	assert.Equal(t, want, string(file.Content))
}

func TestGenerator_Diagnostics(t *testing.T) {
	g := NewGenerator(Config{})

	_, err := g.Generate(testGraph())
	require.NoError(t, err)

	diags := g.Diagnostics()
	assert.False(t, diags.HasErrors())
	assert.ElementsMatch(t, []string{
		diagnostic.CodeNoTypes,
		diagnostic.CodeUnexportedField,
		diagnostic.CodeNoFields,
		diagnostic.CodeTransientField,
	}, diags.Codes())

	for _, w := range diags.Warnings {
		if w.Code == diagnostic.CodeUnexportedField {
			assert.Equal(t, "Order.secret", w.FieldPath)
			assert.Equal(t, "example/shop.Order", w.TypeName)
		}
	}
}

func TestGenerator_Unexported(t *testing.T) {
	g := NewGenerator(Config{Unexported: true, OutputDir: "/out", Filename: "fields_gen.go"})

	files, err := g.Generate(testGraph())
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "/out", files[0].Dir)
	assert.Equal(t, "fields_gen.go", files[0].Filename)
	assert.Contains(t, string(files[0].Content),
		`fields.Accessor[Order]{Name: "secret", Get: func(v *Order) any { return v.secret }},`)
	diags := g.Diagnostics()
	assert.NotContains(t, diags.Codes(), diagnostic.CodeUnexportedField)
}

func TestGenerator_TypeFilter(t *testing.T) {
	g := NewGenerator(Config{Types: []string{"Order", "Ordr"}})

	files, err := g.Generate(testGraph())
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)
	assert.Contains(t, content, "fields.Accessor[Order]")
	assert.NotContains(t, content, "fields.Accessor[Base]")

	var unknown []diagnostic.Diagnostic
	for _, w := range g.Diagnostics().Warnings {
		if w.Code == diagnostic.CodeUnknownType {
			unknown = append(unknown, w)
		}
	}

	require.Len(t, unknown, 1)
	assert.Equal(t, "no struct type named Ordr", unknown[0].Message)
	assert.Equal(t, []string{"Order"}, unknown[0].Suggestions)
}

func TestGenerator_GenericTypeSkipped(t *testing.T) {
	graph := testGraph()
	graph.Types[analyze.TypeID{PkgPath: "example/shop", Name: "Order"}].Generic = true

	g := NewGenerator(Config{})

	files, err := g.Generate(graph)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.NotContains(t, string(files[0].Content), "Accessor[Order]")
	diags := g.Diagnostics()
	assert.Contains(t, diags.Codes(), diagnostic.CodeGenericType)
}

func TestGenerator_FieldsPkg(t *testing.T) {
	g := NewGenerator(Config{FieldsPkg: "example.com/vendored/fields"})

	files, err := g.Generate(testGraph())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, string(files[0].Content), `import "example.com/vendored/fields"`)
}

// The registration checked in next to the store types must be what the
// generator produces for them.
func TestGenerator_StoreUpToDate(t *testing.T) {
	graph, err := analyze.NewAnalyzer(analyze.Config{}).LoadPackages("reflection-assert/store")
	require.NoError(t, err)

	g := NewGenerator(Config{Unexported: true})

	files, err := g.Generate(graph)
	require.NoError(t, err)
	require.Len(t, files, 1)

	current, err := os.ReadFile(filepath.Join(files[0].Dir, files[0].Filename))
	require.NoError(t, err)
	assert.Equal(t, string(current), string(files[0].Content), "run go generate ./store")

	diags := g.Diagnostics()
	assert.Contains(t, diags.Codes(), diagnostic.CodeGenericType)
	assert.Contains(t, diags.Codes(), diagnostic.CodeTransientField)
}

func TestFormatSource_Sidecar(t *testing.T) {
	dir := t.TempDir()

	_, err := formatSource(dir, "broken.go", []byte("package x\nfunc {"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formatting code")

	sidecar, err := os.ReadFile(filepath.Join(dir, "broken.unformatted.go"))
	require.NoError(t, err)
	assert.Equal(t, "package x\nfunc {", string(sidecar))
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "pkg")

	err := WriteFiles([]GeneratedFile{{Dir: dir, Filename: DefaultFilename, Content: []byte("package pkg\n")}})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, DefaultFilename))
	require.NoError(t, err)
	assert.Equal(t, "package pkg\n", string(content))
}
