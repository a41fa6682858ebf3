package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jn9e9/parsec-client-go/internal/strcase"
	"github.com/jn9e9/parsec-client-go/internal/wire"
)

// Marshal renders suite as the document the runner reads: two-space
// indentation, keys in declaration order, trailing newline.
func Marshal(suite *TestSuite) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(suite); err != nil {
		return nil, fmt.Errorf("failed to encode %v suite: %w", suite.OpCode, err)
	}
	return buf.Bytes(), nil
}

// FileName is the file a suite for op is stored in, e.g. "list_clients.json".
func FileName(op wire.Opcode) string {
	return strcase.ToSnakeCase(op.String()) + ".json"
}

type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WriteSuite writes suite into the output directory and returns the path.
func (w *Writer) WriteSuite(suite *TestSuite) (string, error) {
	content, err := Marshal(suite)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.outputDir, FileName(suite.OpCode))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
