package engine

import (
	"math"

	"github.com/woodbyte/cabinetry/internal/model"
)

// GenerateCarcass emits the cabinet body panels: two sides, bottom, top,
// and back. Interior parts from GenerateInterior assume exactly this
// construction (sides run full height, bottom/top sit between them, back
// overlays the rear edge).
func GenerateCarcass(cab model.CabinetParams) []model.GeneratedPart {
	t := cab.BodyThickness
	meta := func(role model.PartRole, index int) model.CabinetMetadata {
		return model.CabinetMetadata{CabinetID: cab.ID, Role: role, Index: index}
	}

	sideRot := [3]float64{0, math.Pi / 2, 0}
	flatRot := [3]float64{-math.Pi / 2, 0, 0}

	return []model.GeneratedPart{
		{
			Name: "Side left", ShapeType: model.ShapeRect,
			Width: cab.Depth, Height: cab.Height, Depth: t,
			Position:    [3]float64{0, 0, 0},
			Rotation:    sideRot,
			MaterialID:  cab.BodyMaterialID,
			EdgeBanding: model.EdgeBanding{Front: true},
			Metadata:    meta(model.RoleSide, 0),
		},
		{
			Name: "Side right", ShapeType: model.ShapeRect,
			Width: cab.Depth, Height: cab.Height, Depth: t,
			Position:    [3]float64{cab.Width - t, 0, 0},
			Rotation:    sideRot,
			MaterialID:  cab.BodyMaterialID,
			EdgeBanding: model.EdgeBanding{Front: true},
			Metadata:    meta(model.RoleSide, 1),
		},
		{
			Name: "Bottom", ShapeType: model.ShapeRect,
			Width: cab.InteriorWidth(), Height: cab.Depth, Depth: t,
			Position:    [3]float64{t, 0, 0},
			Rotation:    flatRot,
			MaterialID:  cab.BodyMaterialID,
			EdgeBanding: model.EdgeBanding{Front: true},
			Metadata:    meta(model.RoleBottom, 0),
		},
		{
			Name: "Top", ShapeType: model.ShapeRect,
			Width: cab.InteriorWidth(), Height: cab.Depth, Depth: t,
			Position:    [3]float64{t, cab.Height - t, 0},
			Rotation:    flatRot,
			MaterialID:  cab.BodyMaterialID,
			EdgeBanding: model.EdgeBanding{Front: true},
			Metadata:    meta(model.RoleTop, 0),
		},
		{
			Name: "Back", ShapeType: model.ShapeRect,
			Width: cab.Width, Height: cab.Height, Depth: model.DefaultBackThicknessMM,
			Position:   [3]float64{0, 0, -model.DefaultBackThicknessMM},
			Rotation:   [3]float64{0, 0, 0},
			MaterialID: cab.BackMaterialID,
			Metadata:   meta(model.RoleBack, 0),
		},
	}
}

// GenerateCabinet returns the complete cut list for a cabinet: carcass
// panels followed by the interior parts.
func GenerateCabinet(cab model.CabinetParams, interior *model.InteriorConfig) []model.GeneratedPart {
	parts := GenerateCarcass(cab)
	return append(parts, GenerateInterior(cab, interior)...)
}
