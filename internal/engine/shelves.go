package engine

import (
	"fmt"
	"math"

	"github.com/woodbyte/cabinetry/internal/model"
)

// GenerateShelves emits one part per shelf of a SHELVES zone. A missing or
// zero-count config generates nothing.
//
// Shelf i of n sits at fractional height i/n of the zone, measured from the
// zone bottom — except a single shelf, which sits at the vertical midpoint.
// The bottom-edge rule for n>1 exists because the zone floor itself acts as
// the first storage surface.
func GenerateShelves(zone *model.Zone, b model.Bounds, cab model.CabinetParams) []model.GeneratedPart {
	cfg := zone.Shelves
	if cfg == nil {
		return nil
	}

	n := cfg.Count
	if cfg.Distribution == model.ShelvesManual && len(cfg.Overrides) > 0 {
		n = len(cfg.Overrides)
	}
	if n <= 0 {
		return nil
	}

	ox, oy := cab.InteriorOrigin()
	parts := make([]model.GeneratedPart, 0, n)

	for i := 0; i < n; i++ {
		var y float64
		if n == 1 {
			y = b.StartY + b.Height/2
		} else {
			y = b.StartY + b.Height*float64(i)/float64(n)
		}

		preset, custom, materialID := cfg.DepthPreset, cfg.CustomDepth, cfg.MaterialID
		if cfg.Distribution == model.ShelvesManual && i < len(cfg.Overrides) {
			ov := cfg.Overrides[i]
			if ov.DepthPreset != "" {
				preset = ov.DepthPreset
				custom = ov.CustomDepth
			}
			if ov.MaterialID != "" {
				materialID = ov.MaterialID
			}
		}
		if materialID == "" {
			materialID = cab.BodyMaterialID
		}

		shelfDepth := resolveDepth(preset, custom, cab.Depth)

		parts = append(parts, model.GeneratedPart{
			Name:      fmt.Sprintf("Shelf %d", i+1),
			ShapeType: model.ShapeRect,
			Width:     b.Width,
			Height:    shelfDepth,
			Depth:     cab.BodyThickness,
			// Shallow shelves sit centered in the depth envelope rather
			// than flush to the back.
			Position:    [3]float64{ox + b.StartX, oy + y, (cab.Depth - shelfDepth) / 2},
			Rotation:    [3]float64{-math.Pi / 2, 0, 0},
			MaterialID:  materialID,
			EdgeBanding: model.EdgeBanding{Front: true},
			Metadata: model.CabinetMetadata{
				CabinetID: cab.ID,
				Role:      model.RoleShelf,
				Index:     i,
			},
		})
	}

	return parts
}
