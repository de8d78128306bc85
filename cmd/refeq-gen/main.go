// Command refeq-gen emits field accessor registrations for refeq.
//
// For every loaded package it writes zz_refeq_fields.go, registering one
// fields.Accessor per struct field with fields.Default. Comparisons of the
// registered types then read fields through plain Go code, and with
// -unexported they cover unexported fields too.
//
// Usage:
//
//	refeq-gen -pkg ./store,./billing [-types Order,Invoice] [-unexported] [-out dir] [-v]
//
// Typically run through a go:generate directive in the package itself:
//
//	//go:generate go run reflection-assert/cmd/refeq-gen -pkg .
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"reflection-assert/internal/analyze"
	"reflection-assert/internal/diagnostic"
	"reflection-assert/internal/gen"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	os.Exit(run(os.Args[1:], log))
}

type cliOptions struct {
	patterns   []string
	types      []string
	unexported bool
	out        string
	verbose    bool
}

func parseArgs(args []string, output io.Writer) (cliOptions, error) {
	var (
		opts     cliOptions
		patterns string
		typeList string
	)

	fs := flag.NewFlagSet("refeq-gen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&patterns, "pkg", ".", "comma separated package patterns to generate for")
	fs.StringVar(&typeList, "types", "", "comma separated struct type names, all struct types when empty")
	fs.BoolVar(&opts.unexported, "unexported", false, "emit accessors for unexported fields")
	fs.StringVar(&opts.out, "out", "", "output directory, the package directory when empty")
	fs.BoolVar(&opts.verbose, "v", false, "log every registered field")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	if fs.NArg() > 0 {
		return cliOptions{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	opts.patterns = splitList(patterns)
	opts.types = splitList(typeList)

	if len(opts.patterns) == 0 {
		return cliOptions{}, errors.New("-pkg must name at least one package")
	}

	return opts, nil
}

func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func run(args []string, log *logrus.Logger) int {
	opts, err := parseArgs(args, log.Out)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		log.WithError(err).Error("invalid arguments")

		return 2
	}

	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	graph, err := analyze.NewAnalyzer(analyze.Config{}).LoadPackages(opts.patterns...)
	if err != nil {
		log.WithError(err).Error("loading packages")

		return 1
	}

	g := gen.NewGenerator(gen.Config{
		OutputDir:  opts.out,
		Types:      opts.types,
		Unexported: opts.unexported,
	})

	files, err := g.Generate(graph)
	if err != nil {
		log.WithError(err).Error("generating accessors")

		return 1
	}

	diags := g.Diagnostics()
	report(log, diags)

	if diags.HasErrors() {
		return 1
	}

	if opts.verbose {
		logFields(log, graph, opts)
	}

	if err := gen.WriteFiles(files); err != nil {
		log.WithError(err).Error("writing files")

		return 1
	}

	for _, f := range files {
		log.WithField("dir", f.Dir).Infof("wrote %s", f.Filename)
	}

	return 0
}

func report(log logrus.FieldLogger, diags diagnostic.Diagnostics) {
	entry := func(d diagnostic.Diagnostic) *logrus.Entry {
		e := log.WithField("code", d.Code)
		if d.TypeName != "" {
			e = e.WithField("type", d.TypeName)
		}

		if d.FieldPath != "" {
			e = e.WithField("field", d.FieldPath)
		}

		if len(d.Suggestions) > 0 {
			e = e.WithField("suggest", strings.Join(d.Suggestions, ","))
		}

		return e
	}

	for _, d := range diags.Errors {
		entry(d).Error(d.Message)
	}

	for _, d := range diags.Warnings {
		entry(d).Warn(d.Message)
	}

	for _, d := range diags.Infos {
		entry(d).Debug(d.Message)
	}
}

func logFields(log logrus.FieldLogger, graph *analyze.TypeGraph, opts cliOptions) {
	for _, pkg := range graph.Packages {
		for _, t := range graph.Structs(pkg.Path) {
			for _, f := range t.Fields {
				if !f.Exported && !opts.unexported {
					continue
				}

				log.WithFields(logrus.Fields{
					"type":  t.ID.Name,
					"field": f.Name,
				}).Debugf("field of type %s", analyze.TypeString(f.Type, pkg.Path))
			}
		}
	}
}
