// Package project handles persistence: project files, application config,
// cabinet templates, and backup export/import. Everything is JSON on disk
// under ~/.cabinetry, matching the project document an external editor
// round-trips.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/woodbyte/cabinetry/internal/model"
)

// Save writes a project to a JSON file, creating parent directories as
// needed.
func Save(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// Load reads a project from a JSON file. Depth numbering of the interior
// tree is normalized after load so stale documents cannot violate the
// parent+1 invariant.
func Load(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if p.Materials == nil {
		p.Materials = model.DefaultMaterials()
	}
	if p.Interior != nil && p.Interior.RootZone != nil {
		model.AssignDepths(p.Interior.RootZone, 0)
	}
	return p, nil
}
