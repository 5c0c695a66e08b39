package model

// Project ties a cabinet, its interior layout, and its material catalog
// together for save/load. Generated parts are derived data; they are stored
// only when the caller explicitly keeps the last generation result.
type Project struct {
	Name      string          `json:"name"`
	Cabinet   CabinetParams   `json:"cabinet"`
	Interior  *InteriorConfig `json:"interior,omitempty"`
	Materials []Material      `json:"materials"`
	Parts     []GeneratedPart `json:"parts,omitempty"`
}

// NewProject creates an empty project with a default cabinet and the
// built-in material catalog.
func NewProject() Project {
	return Project{
		Name:      "Untitled",
		Cabinet:   DefaultCabinet(),
		Materials: DefaultMaterials(),
	}
}

// MaterialByID returns the material with the given ID, or false when the
// catalog does not contain it.
func (p Project) MaterialByID(id string) (Material, bool) {
	for _, m := range p.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}
