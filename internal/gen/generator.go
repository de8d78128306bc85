package gen

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"text/template"

	"reflection-assert/internal/analyze"
	"reflection-assert/internal/common"
	"reflection-assert/internal/diagnostic"
	"reflection-assert/internal/match"
)

const (
	// DefaultFilename is the name of the generated file in each package.
	DefaultFilename = "zz_refeq_fields.go"
	// DefaultFieldsPkg is the import path of the descriptor registry.
	DefaultFieldsPkg = "reflection-assert/fields"
)

// Config holds configuration for code generation.
type Config struct {
	// OutputDir overrides the package directory as destination.
	OutputDir string
	// Filename of the generated file, DefaultFilename when empty.
	Filename string
	// Types restricts generation to the named types, all struct types when
	// empty.
	Types []string
	// Unexported emits accessors for unexported fields too.
	Unexported bool
	// FieldsPkg is the import path of the registry package,
	// DefaultFieldsPkg when empty.
	FieldsPkg string
}

// Generator generates accessor registrations from a type graph.
type Generator struct {
	config Config
	diags  diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Filename == "" {
		config.Filename = DefaultFilename
	}

	if config.FieldsPkg == "" {
		config.FieldsPkg = DefaultFieldsPkg
	}

	return &Generator{config: config}
}

// Diagnostics returns what the last Generate call reported.
func (g *Generator) Diagnostics() diagnostic.Diagnostics {
	return g.diags
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "zz_refeq_fields.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// templateData holds all data needed for the registration template.
type templateData struct {
	PackageName string
	FieldsPkg   string
	Types       []typeData
}

type typeData struct {
	Name   string
	Fields []fieldData
}

type fieldData struct {
	Name      string
	Embedded  bool
	Transient bool
}

// Generate emits one file per package of the graph, packages sorted by
// import path. Packages without eligible types produce no file.
func (g *Generator) Generate(graph *analyze.TypeGraph) ([]GeneratedFile, error) {
	g.diags = diagnostic.Diagnostics{}

	wanted := make(map[string]bool, len(g.config.Types))
	for _, name := range g.config.Types {
		wanted[name] = false
	}

	var files []GeneratedFile

	for _, pkgPath := range slices.Sorted(maps.Keys(graph.Packages)) {
		pkg := graph.Packages[pkgPath]

		data := templateData{
			PackageName: pkg.Name,
			FieldsPkg:   g.config.FieldsPkg,
		}

		if data.PackageName == "" {
			data.PackageName = common.PkgAlias(pkgPath)
		}

		for _, t := range graph.Structs(pkgPath) {
			if len(wanted) > 0 {
				if _, ok := wanted[t.ID.Name]; !ok {
					continue
				}

				wanted[t.ID.Name] = true
			}

			if td, ok := g.buildType(t); ok {
				data.Types = append(data.Types, td)
			}
		}

		if len(data.Types) == 0 {
			g.diags.AddInfo(diagnostic.CodeNoTypes, "no struct types to register", pkgPath, "")

			continue
		}

		file, err := g.render(pkg, data)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", pkgPath, err)
		}

		files = append(files, *file)
	}

	g.reportUnknownTypes(graph, wanted)

	return files, nil
}

// buildType collects the accessors of one struct type.
func (g *Generator) buildType(t *analyze.TypeInfo) (typeData, bool) {
	typeName := t.ID.String()

	if t.Generic {
		g.diags.AddWarning(diagnostic.CodeGenericType,
			"types with type parameters are compared by reflection", typeName, "")

		return typeData{}, false
	}

	td := typeData{Name: t.ID.Name}

	for _, f := range t.Fields {
		path := analyze.FieldPath(t.ID.Name, f.Name)

		if f.Name == "_" {
			continue
		}

		if !f.Exported && !g.config.Unexported {
			g.diags.AddWarning(diagnostic.CodeUnexportedField,
				"unexported field skipped, generate with -unexported to compare it", typeName, path)

			continue
		}

		if f.Transient() {
			g.diags.AddInfo(diagnostic.CodeTransientField, "field excluded from comparisons", typeName, path)
		}

		td.Fields = append(td.Fields, fieldData{
			Name:      f.Name,
			Embedded:  f.EmbeddedStruct(),
			Transient: f.Transient(),
		})
	}

	if len(td.Fields) == 0 {
		g.diags.AddWarning(diagnostic.CodeNoFields,
			"no fields to register, the type is compared by reflection", typeName, "")

		return typeData{}, false
	}

	return td, true
}

// reportUnknownTypes warns about requested names matching no struct type.
func (g *Generator) reportUnknownTypes(graph *analyze.TypeGraph, wanted map[string]bool) {
	var known []string

	for _, t := range graph.Types {
		if t.Kind == analyze.TypeKindStruct {
			known = append(known, t.ID.Name)
		}
	}

	for _, name := range slices.Sorted(maps.Keys(wanted)) {
		if wanted[name] {
			continue
		}

		var suggestions []string
		if s := match.Suggest(name, known); s != "" {
			suggestions = append(suggestions, s)
		}

		g.diags.AddWarning(diagnostic.CodeUnknownType,
			fmt.Sprintf("no struct type named %s", name), "", "", suggestions...)
	}
}

// render executes the template and formats the result.
func (g *Generator) render(pkg *analyze.PackageInfo, data templateData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := fieldsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	dir := pkg.Dir
	if g.config.OutputDir != "" {
		dir = g.config.OutputDir
	}

	content, err := formatSource(dir, g.config.Filename, buf.Bytes())
	if err != nil {
		return nil, err
	}

	return &GeneratedFile{
		Dir:      dir,
		Filename: g.config.Filename,
		Content:  content,
	}, nil
}

// Template for the registration file

var fieldsTemplate = template.Must(template.New("fields").Parse(`// Code generated by refeq-gen. DO NOT EDIT.

package {{.PackageName}}

import "{{.FieldsPkg}}"

func init() {
{{- range .Types}}
{{- $type := .Name}}
	fields.MustRegister(fields.Default,
{{- range .Fields}}
		fields.Accessor[{{$type}}]{Name: "{{.Name}}", Get: func(v *{{$type}}) any { return v.{{.Name}} }{{if .Embedded}}, Embedded: true{{end}}{{if .Transient}}, Transient: true{{end}}},
{{- end}}
	)
{{- end}}
}
`))
