package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default cabinet dimensions applied to new projects
	DefaultCabinetWidth   float64 `json:"default_cabinet_width"`
	DefaultCabinetHeight  float64 `json:"default_cabinet_height"`
	DefaultCabinetDepth   float64 `json:"default_cabinet_depth"`
	DefaultBodyThickness  float64 `json:"default_body_thickness"`
	DefaultFrontThickness float64 `json:"default_front_thickness"`

	// Last-used material and hardware choices, fed into zone creation
	// as Preferences
	LastBodyMaterialID   string      `json:"last_body_material_id"`
	LastFrontMaterialID  string      `json:"last_front_material_id"`
	LastShelfDepthPreset DepthPreset `json:"last_shelf_depth_preset"`
	LastSlideType        string      `json:"last_slide_type"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
	MaxZoneDepth   int      `json:"max_zone_depth"` // editor nesting cap, not an engine limit
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching DefaultCabinet and DefaultPreferences.
func DefaultAppConfig() AppConfig {
	cab := DefaultCabinet()
	prefs := DefaultPreferences()
	return AppConfig{
		DefaultCabinetWidth:   cab.Width,
		DefaultCabinetHeight:  cab.Height,
		DefaultCabinetDepth:   cab.Depth,
		DefaultBodyThickness:  cab.BodyThickness,
		DefaultFrontThickness: cab.FrontThickness,
		LastBodyMaterialID:    prefs.BodyMaterialID,
		LastFrontMaterialID:   prefs.FrontMaterialID,
		LastShelfDepthPreset:  prefs.ShelfDepthPreset,
		LastSlideType:         prefs.SlideType,
		RecentProjects:        []string{},
		MaxZoneDepth:          3,
	}
}

// Preferences converts the stored last-used values into a Preferences
// value for zone creation.
func (c AppConfig) Preferences() Preferences {
	return Preferences{
		BodyMaterialID:   c.LastBodyMaterialID,
		FrontMaterialID:  c.LastFrontMaterialID,
		ShelfDepthPreset: c.LastShelfDepthPreset,
		SlideType:        c.LastSlideType,
	}
}

// ApplyToCabinet copies the default dimensions from AppConfig into a
// cabinet. Used when creating a new project so it inherits the user's
// saved defaults.
func (c AppConfig) ApplyToCabinet(cab *CabinetParams) {
	cab.Width = c.DefaultCabinetWidth
	cab.Height = c.DefaultCabinetHeight
	cab.Depth = c.DefaultCabinetDepth
	cab.BodyThickness = c.DefaultBodyThickness
	cab.FrontThickness = c.DefaultFrontThickness
}
