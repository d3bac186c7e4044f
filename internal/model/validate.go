package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaWarnings validates a generic payload against resume.schema.json and
// returns one message per violation. The check is advisory: callers attach
// the warnings to their response and continue, they never reject on them.
func SchemaWarnings(tplDir string, payload map[string]interface{}) ([]string, error) {
	// Use an absolute canonical file:// path so loaders on all platforms
	// resolve the reference correctly.
	schemaFile := filepath.Join(tplDir, "resume.schema.json")
	if _, err := os.Stat(schemaFile); err != nil {
		return nil, fmt.Errorf("schema not found: %w", err)
	}
	abs, err := filepath.Abs(schemaFile)
	if err != nil {
		return nil, err
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
	docLoader := gojsonschema.NewGoLoader(payload)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, err
	}
	if res.Valid() {
		return nil, nil
	}
	warnings := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		warnings = append(warnings, e.String())
	}
	return warnings, nil
}
