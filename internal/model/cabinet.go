package model

import "github.com/google/uuid"

// Canonical geometry constants. The shelf front setback and the body panel
// thickness are conceptually distinct and must stay independently named:
// the setback keeps shelf front edges behind the door plane, the body
// thickness is a property of the carcass material.
const (
	ShelfFrontSetbackMM    = 10.0
	DefaultBodyThicknessMM = 18.0
	MinShelfDepthMM        = 50.0

	// FrontRevealMM is the total gap around a drawer front.
	FrontRevealMM = 3.0

	// Drawer box construction thicknesses.
	DrawerBoxPanelThicknessMM = 15.0
	DrawerBottomThicknessMM   = 3.0

	DefaultBackThicknessMM = 3.0
)

// CabinetParams holds the cabinet-level scalars supplied by the surrounding
// cabinet-parameter system. All dimensions are outer dimensions in mm.
type CabinetParams struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Depth          float64 `json:"depth"`
	BodyThickness  float64 `json:"body_thickness"`
	FrontThickness float64 `json:"front_thickness"`

	BodyMaterialID  string `json:"body_material_id"`
	FrontMaterialID string `json:"front_material_id"`
	BackMaterialID  string `json:"back_material_id"`
}

// DefaultCabinet returns a standard 600mm base cabinet.
func DefaultCabinet() CabinetParams {
	return CabinetParams{
		ID:              uuid.New().String()[:8],
		Name:            "Base cabinet 600",
		Width:           600,
		Height:          720,
		Depth:           560,
		BodyThickness:   DefaultBodyThicknessMM,
		FrontThickness:  19,
		BodyMaterialID:  "melamine-white-18",
		FrontMaterialID: "mdf-19",
		BackMaterialID:  "hdf-3",
	}
}

// InteriorWidth returns the clear width between the side panels.
func (c CabinetParams) InteriorWidth() float64 {
	return c.Width - 2*c.BodyThickness
}

// InteriorHeight returns the clear height between the bottom and top panels.
func (c CabinetParams) InteriorHeight() float64 {
	return c.Height - 2*c.BodyThickness
}

// InteriorOrigin returns the cabinet-space X/Y of the interior's bottom-left
// corner. Interior-local bounds are translated by this offset when parts
// are positioned.
func (c CabinetParams) InteriorOrigin() (x, y float64) {
	return c.BodyThickness, c.BodyThickness
}

// Material describes a sheet good in the material catalog.
type Material struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ThicknessMM   float64 `json:"thickness_mm"`
	PricePerSheet float64 `json:"price_per_sheet,omitempty"`
}

// DefaultMaterials returns the built-in material catalog.
func DefaultMaterials() []Material {
	return []Material{
		{ID: "melamine-white-18", Name: "Melamine White 18mm", ThicknessMM: 18, PricePerSheet: 52},
		{ID: "mdf-19", Name: "MDF 19mm", ThicknessMM: 19, PricePerSheet: 48},
		{ID: "plywood-15", Name: "Birch Plywood 15mm", ThicknessMM: 15, PricePerSheet: 74},
		{ID: "hdf-3", Name: "HDF 3mm", ThicknessMM: 3, PricePerSheet: 14},
	}
}

// SlideType defines the clearances and available lengths for a drawer slide
// family.
type SlideType struct {
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	SideClearanceMM     float64   `json:"side_clearance_mm"`     // per side, between box and cabinet side
	VerticalClearanceMM float64   `json:"vertical_clearance_mm"` // between box top and zone top
	LengthsMM           []float64 `json:"lengths_mm"`            // available slide lengths
}

// Built-in slide types.
var SlideTypes = []SlideType{
	{
		Name:                "BallBearing",
		Description:         "Side-mount ball bearing slides",
		SideClearanceMM:     12.7,
		VerticalClearanceMM: 20,
		LengthsMM:           []float64{250, 300, 350, 400, 450, 500, 550, 600},
	},
	{
		Name:                "Undermount",
		Description:         "Concealed undermount slides",
		SideClearanceMM:     6,
		VerticalClearanceMM: 15,
		LengthsMM:           []float64{270, 300, 350, 400, 450, 500, 550},
	},
	{
		Name:                "Roller",
		Description:         "Epoxy roller slides",
		SideClearanceMM:     12.7,
		VerticalClearanceMM: 25,
		LengthsMM:           []float64{250, 300, 350, 400, 450, 500, 550},
	},
}

// GetSlideType returns a slide type by name, or the first built-in type if
// the name is unknown.
func GetSlideType(name string) SlideType {
	for _, s := range SlideTypes {
		if s.Name == name {
			return s
		}
	}
	return SlideTypes[0]
}

// SlideLength returns the longest available slide that fits the cabinet
// depth with a 10mm rear allowance, or the shortest length when nothing
// fits.
func (s SlideType) SlideLength(cabinetDepth float64) float64 {
	best := 0.0
	for _, l := range s.LengthsMM {
		if l <= cabinetDepth-10 && l > best {
			best = l
		}
	}
	if best == 0 && len(s.LengthsMM) > 0 {
		return s.LengthsMM[0]
	}
	return best
}
