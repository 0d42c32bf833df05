package dagio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rtsched/dagsched/schedlog"
)

// NewRunID returns a fresh collision-free run identifier: output files are
// named by timestamp, and a uuid is embedded alongside so concurrent runs
// in the same second never collide.
func NewRunID() string {
	return uuid.NewString()
}

// WriteDocument renders doc to YAML and writes it under outputDirPath,
// creating the directory if needed, and returns the path written.
func WriteDocument(doc *schedlog.Document, outputDirPath string) (string, error) {
	if err := os.MkdirAll(outputDirPath, 0o755); err != nil {
		return "", err
	}
	data, err := doc.ToYAML()
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%s.yaml", time.Now().UTC().Format("20060102T150405Z"), doc.RunID)
	path := filepath.Join(outputDirPath, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
