package gen

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

// formatSource runs gofmt on src. On failure the unformatted code is written
// to a sidecar next to the intended output to aid debugging.
func formatSource(outDir, filename string, src []byte) ([]byte, error) {
	formatted, err := format.Source(src)
	if err == nil {
		return formatted, nil
	}

	if werr := writeDebugUnformatted(outDir, filename, src); werr != nil {
		return nil, fmt.Errorf("formatting code: %w (sidecar not written: %w)", err, werr)
	}

	return nil, fmt.Errorf("formatting code: %w (unformatted code written next to %s)", err, filename)
}

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// Keep it a .go file so editors can syntax highlight, but avoid colliding with
	// real output.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
