package engine

import (
	"fmt"
	"math"

	"github.com/woodbyte/cabinetry/internal/model"
)

// BoxWidth returns the outer drawer box width for a cabinet of the given
// width: the interior span minus the slide clearance on both sides. Pure
// function of (cabinetWidth, bodyThickness, slideType).
func BoxWidth(cabinetWidth, bodyThickness float64, slide model.SlideType) float64 {
	return cabinetWidth - 2*bodyThickness - 2*slide.SideClearanceMM
}

// GenerateDrawers emits box, front, and slide parts for every drawer zone
// of a DRAWERS zone. A missing config or empty zone list generates nothing.
//
// Drawer zone heights are resolved by Distribute over the height ratios;
// index 0 is the bottom-most zone, matching the zone-children convention.
// A nil Front means an internal drawer: the box takes the full zone height
// and no front part is emitted. BoxToFrontRatio < 1 shortens the box to
// that fraction of the zone height, and any AboveBox shelves fill the
// remainder (first shelf directly above the box, the rest spread evenly).
func GenerateDrawers(zone *model.Zone, b model.Bounds, cab model.CabinetParams) []model.GeneratedPart {
	cfg := zone.Drawers
	if cfg == nil || len(cfg.Zones) == 0 {
		return nil
	}

	slide := model.GetSlideType(cfg.SlideType)
	slideLen := slide.SlideLength(cab.Depth)
	boxW := BoxWidth(b.Width+2*cab.BodyThickness, cab.BodyThickness, slide)
	ox, oy := cab.InteriorOrigin()

	boxMaterial := cfg.BoxMaterialID
	if boxMaterial == "" {
		boxMaterial = "plywood-15"
	}
	bottomMaterial := cfg.BottomMaterialID
	if bottomMaterial == "" {
		bottomMaterial = cab.BackMaterialID
	}

	specs := make([]SizingSpec, len(cfg.Zones))
	for i, dz := range cfg.Zones {
		specs[i] = RatioSpec(dz.HeightRatio)
	}
	heights := Distribute(b.Height, specs)

	var parts []model.GeneratedPart
	y := b.StartY

	for i, dz := range cfg.Zones {
		zoneH := heights[i]

		boxRatio := dz.BoxToFrontRatio
		if boxRatio <= 0 || boxRatio > 1 {
			boxRatio = 1
		}
		boxH := zoneH
		if dz.Front != nil {
			boxH = zoneH * boxRatio
		}

		parts = append(parts, generateBoxes(dz, i, boxH, boxW, y, slide, slideLen, cab, b, boxMaterial, bottomMaterial)...)

		if dz.Front != nil {
			frontMaterial := dz.Front.MaterialID
			if frontMaterial == "" {
				frontMaterial = cab.FrontMaterialID
			}
			parts = append(parts, model.GeneratedPart{
				Name:        fmt.Sprintf("Drawer front %d", i+1),
				ShapeType:   model.ShapeRect,
				Width:       b.Width - model.FrontRevealMM,
				Height:      zoneH - model.FrontRevealMM,
				Depth:       cab.FrontThickness,
				Position:    [3]float64{ox + b.StartX + model.FrontRevealMM/2, oy + y + model.FrontRevealMM/2, cab.Depth},
				Rotation:    [3]float64{0, 0, 0},
				MaterialID:  frontMaterial,
				EdgeBanding: model.EdgeBanding{Front: true, Back: true, Left: true, Right: true},
				Metadata: model.CabinetMetadata{
					CabinetID: cab.ID,
					Role:      model.RoleDrawerFront,
					Index:     i,
				},
			})

			parts = append(parts, generateAboveBoxShelves(dz, i, zoneH, boxH, y, b, cab)...)
		}

		y += zoneH
	}

	return parts
}

// generateBoxes emits the box panels and slide hardware for one drawer
// zone. Multiple boxes subdivide the zone's box height by their own height
// ratios (drawer-in-drawer stacking).
func generateBoxes(dz model.DrawerZone, drawerIdx int, boxH, boxW, zoneY float64, slide model.SlideType, slideLen float64, cab model.CabinetParams, b model.Bounds, boxMaterial, bottomMaterial string) []model.GeneratedPart {
	boxes := dz.Boxes
	if len(boxes) == 0 {
		boxes = []model.DrawerZoneBox{{HeightRatio: 1}}
	}

	specs := make([]SizingSpec, len(boxes))
	for j, box := range boxes {
		specs[j] = RatioSpec(box.HeightRatio)
	}
	boxHeights := Distribute(boxH, specs)

	ox, oy := cab.InteriorOrigin()
	boxX := ox + b.StartX + slide.SideClearanceMM
	boxZ := cab.Depth - slideLen
	t := model.DrawerBoxPanelThicknessMM

	var parts []model.GeneratedPart
	by := zoneY

	for j := range boxes {
		h := boxHeights[j] - slide.VerticalClearanceMM
		if h <= t {
			by += boxHeights[j]
			continue
		}

		prefix := fmt.Sprintf("Drawer %d", drawerIdx+1)
		if len(boxes) > 1 {
			prefix = fmt.Sprintf("%s box %d", prefix, j+1)
		}

		meta := model.CabinetMetadata{CabinetID: cab.ID, Role: model.RoleDrawerBox, Index: drawerIdx}
		sideRot := [3]float64{0, math.Pi / 2, 0}

		parts = append(parts,
			model.GeneratedPart{
				Name: prefix + " side left", ShapeType: model.ShapeRect,
				Width: slideLen, Height: h, Depth: t,
				Position:   [3]float64{boxX, oy + by, boxZ},
				Rotation:   sideRot,
				MaterialID: boxMaterial, Metadata: meta,
			},
			model.GeneratedPart{
				Name: prefix + " side right", ShapeType: model.ShapeRect,
				Width: slideLen, Height: h, Depth: t,
				Position:   [3]float64{boxX + boxW - t, oy + by, boxZ},
				Rotation:   sideRot,
				MaterialID: boxMaterial, Metadata: meta,
			},
			model.GeneratedPart{
				Name: prefix + " back", ShapeType: model.ShapeRect,
				Width: boxW - 2*t, Height: h, Depth: t,
				Position:   [3]float64{boxX + t, oy + by, boxZ},
				Rotation:   [3]float64{0, 0, 0},
				MaterialID: boxMaterial, Metadata: meta,
			},
			model.GeneratedPart{
				Name: prefix + " front", ShapeType: model.ShapeRect,
				Width: boxW - 2*t, Height: h, Depth: t,
				Position:   [3]float64{boxX + t, oy + by, boxZ + slideLen - t},
				Rotation:   [3]float64{0, 0, 0},
				MaterialID: boxMaterial, Metadata: meta,
			},
			model.GeneratedPart{
				Name: prefix + " bottom", ShapeType: model.ShapeRect,
				Width: boxW - 2*t, Height: slideLen - 2*t, Depth: model.DrawerBottomThicknessMM,
				Position:   [3]float64{boxX + t, oy + by + model.DrawerBottomThicknessMM, boxZ + t},
				Rotation:   [3]float64{-math.Pi / 2, 0, 0},
				MaterialID: bottomMaterial, Metadata: meta,
			},
		)

		slideMeta := model.CabinetMetadata{CabinetID: cab.ID, Role: model.RoleDrawerSlide, Index: drawerIdx}
		parts = append(parts,
			model.GeneratedPart{
				Name: prefix + " slide left", ShapeType: model.ShapeBox,
				Width: slide.SideClearanceMM, Height: 45, Depth: slideLen,
				Position: [3]float64{ox + b.StartX, oy + by, boxZ},
				Metadata: slideMeta,
			},
			model.GeneratedPart{
				Name: prefix + " slide right", ShapeType: model.ShapeBox,
				Width: slide.SideClearanceMM, Height: 45, Depth: slideLen,
				Position: [3]float64{ox + b.StartX + b.Width - slide.SideClearanceMM, oy + by, boxZ},
				Metadata: slideMeta,
			},
		)

		by += boxHeights[j]
	}

	return parts
}

// generateAboveBoxShelves fills the void above a shortened drawer box.
// Shelf k of m sits at boxTop + k/m of the remaining height, so the first
// shelf lands directly on top of the box.
func generateAboveBoxShelves(dz model.DrawerZone, drawerIdx int, zoneH, boxH, zoneY float64, b model.Bounds, cab model.CabinetParams) []model.GeneratedPart {
	if dz.AboveBox == nil || len(dz.AboveBox.Shelves) == 0 || boxH >= zoneH {
		return nil
	}

	remaining := zoneH - boxH
	m := len(dz.AboveBox.Shelves)
	ox, oy := cab.InteriorOrigin()

	parts := make([]model.GeneratedPart, 0, m)
	for k, shelf := range dz.AboveBox.Shelves {
		yk := zoneY + boxH + remaining*float64(k)/float64(m)
		depth := resolveDepth(shelf.DepthPreset, shelf.CustomDepth, cab.Depth)

		parts = append(parts, model.GeneratedPart{
			Name:        fmt.Sprintf("Drawer %d shelf %d", drawerIdx+1, k+1),
			ShapeType:   model.ShapeRect,
			Width:       b.Width,
			Height:      depth,
			Depth:       cab.BodyThickness,
			Position:    [3]float64{ox + b.StartX, oy + yk, (cab.Depth - depth) / 2},
			Rotation:    [3]float64{-math.Pi / 2, 0, 0},
			MaterialID:  cab.BodyMaterialID,
			EdgeBanding: model.EdgeBanding{Front: true},
			Metadata: model.CabinetMetadata{
				CabinetID: cab.ID,
				Role:      model.RoleShelf,
				Index:     k,
			},
		})
	}

	return parts
}
