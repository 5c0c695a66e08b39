package model

import (
	"time"

	"github.com/google/uuid"
)

// CabinetTemplate is a reusable cabinet configuration: parameters plus
// interior layout, without derived parts.
type CabinetTemplate struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	Cabinet     CabinetParams   `json:"cabinet"`
	Interior    *InteriorConfig `json:"interior,omitempty"`
}

// NewCabinetTemplate creates a template from the given cabinet and interior.
// The interior tree is cloned so later edits to the source project do not
// leak into the template.
func NewCabinetTemplate(name, description string, cabinet CabinetParams, interior *InteriorConfig) CabinetTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return CabinetTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Cabinet:     cabinet,
		Interior:    cloneInterior(interior),
	}
}

// ToProject creates a new Project from this template. The interior tree and
// the cabinet get fresh IDs so the project is independent of the template.
func (t CabinetTemplate) ToProject(projectName string) Project {
	p := NewProject()
	p.Name = projectName
	p.Cabinet = t.Cabinet
	p.Cabinet.ID = uuid.New().String()[:8]
	if t.Interior != nil && t.Interior.RootZone != nil {
		root := CloneWithFreshIDs(*t.Interior.RootZone)
		p.Interior = &InteriorConfig{RootZone: &root}
	}
	return p
}

func cloneInterior(interior *InteriorConfig) *InteriorConfig {
	if interior == nil || interior.RootZone == nil {
		return nil
	}
	root := CloneWithFreshIDs(*interior.RootZone)
	return &InteriorConfig{RootZone: &root}
}

// TemplateStore holds a collection of cabinet templates.
type TemplateStore struct {
	Templates []CabinetTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []CabinetTemplate{}}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t CabinetTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *CabinetTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name,
// or nil.
func (ts *TemplateStore) FindByName(name string) *CabinetTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns template names for UI dropdowns.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// BuiltinTemplates returns the templates shipped with the application.
func BuiltinTemplates() []CabinetTemplate {
	prefs := DefaultPreferences()

	shelfZone := NewDefaultZone(ContentShelves, prefs)
	shelfZone.Shelves.Count = 3
	shelfRoot := NewNestedZone(DivisionHorizontal, shelfZone)

	drawerZone := NewDefaultZone(ContentDrawers, prefs)
	drawerZone.Drawers.Zones = []DrawerZone{
		NewDrawerZone(1),
		NewDrawerZone(1),
		NewDrawerZone(1.5),
	}
	drawerRoot := NewNestedZone(DivisionHorizontal, drawerZone)

	return []CabinetTemplate{
		NewCabinetTemplate("Base 600 shelves", "600mm base cabinet with 3 shelves",
			DefaultCabinet(), &InteriorConfig{RootZone: &shelfRoot}),
		NewCabinetTemplate("Base 600 drawers", "600mm base cabinet with 3-drawer stack",
			DefaultCabinet(), &InteriorConfig{RootZone: &drawerRoot}),
	}
}
