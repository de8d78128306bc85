package options

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	schemafs "reflection-assert/options/schema"
)

const schemaName = "options.schema.json"

var (
	optionsSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// document is the YAML form of Options.
type document struct {
	IgnoreDefaults   bool     `yaml:"ignoreDefaults"`
	LenientDates     bool     `yaml:"lenientDates"`
	LenientOrder     bool     `yaml:"lenientOrder"`
	LenientNumbers   bool     `yaml:"lenientNumbers"`
	PlatformPackages []string `yaml:"platformPackages"`
}

func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile(schemaName)
		if err != nil {
			compileErr = fmt.Errorf("read options schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal options schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaName, doc); err != nil {
			compileErr = fmt.Errorf("add options schema resource: %w", err)
			return
		}

		optionsSchema, err = compiler.Compile(schemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile options schema: %w", err)
		}
	})

	return compileErr
}

// Validate checks a YAML (or JSON) options document against the schema.
func Validate(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	if raw == nil {
		raw = map[string]any{}
	}

	if m, ok := raw.(map[string]any); ok {
		if err := checkKeys(m); err != nil {
			return err
		}
	}

	// round trip through JSON to get the value shapes the validator expects
	j, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(j))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	if err := optionsSchema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	return nil
}

func checkKeys(m map[string]any) error {
	known := Keys()

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		if !slices.Contains(known, k) {
			return unknownKey(k)
		}
	}

	return nil
}

// Parse validates and decodes a YAML options document. Unknown keys are
// reported as ErrUnknownOption.
func Parse(data []byte) (Options, error) {
	if err := Validate(data); err != nil {
		return Options{}, err
	}

	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %w", ErrUnknownOption, err)
	}

	return Options(doc), nil
}

// LoadFile reads and parses a YAML options file.
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	return Parse(data)
}
