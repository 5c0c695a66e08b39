package model

// Preferences carries the user's last-used defaults into zone creation.
// It is injected explicitly rather than read from global state so zone
// construction stays a pure function.
type Preferences struct {
	BodyMaterialID   string      `json:"body_material_id"`
	FrontMaterialID  string      `json:"front_material_id"`
	ShelfDepthPreset DepthPreset `json:"shelf_depth_preset"`
	SlideType        string      `json:"slide_type"`
}

// DefaultPreferences returns preferences matching the default cabinet.
func DefaultPreferences() Preferences {
	return Preferences{
		BodyMaterialID:   "melamine-white-18",
		FrontMaterialID:  "mdf-19",
		ShelfDepthPreset: DepthFull,
		SlideType:        "BallBearing",
	}
}

// NewDefaultZone creates a zone of the given content type populated with
// the preference-derived defaults: one shelf for SHELVES, one fronted
// drawer for DRAWERS, two ratio-1 children for NESTED.
func NewDefaultZone(contentType ContentType, prefs Preferences) Zone {
	z := NewZone(contentType)
	switch contentType {
	case ContentShelves:
		z.Shelves = &ShelvesConfig{
			Distribution: ShelvesUniform,
			Count:        1,
			DepthPreset:  prefs.ShelfDepthPreset,
			MaterialID:   prefs.BodyMaterialID,
		}
	case ContentDrawers:
		z.Drawers = &DrawerConfig{
			SlideType: prefs.SlideType,
			Zones:     []DrawerZone{NewDrawerZone(1)},
		}
	case ContentNested:
		z.Division = DivisionHorizontal
		z.Children = []Zone{NewZone(ContentEmpty), NewZone(ContentEmpty)}
		AssignDepths(&z, 0)
	}
	return z
}
