package engine

import (
	"math"

	"github.com/woodbyte/cabinetry/internal/model"
)

// ZoneBounds pairs a leaf zone with its resolved bounds.
type ZoneBounds struct {
	Zone   *model.Zone
	Bounds model.Bounds
}

// PartitionBounds pairs a partition with its resolved bounds. ParentID is
// the nested zone that owns the partition; Index is the boundary index
// (between children Index and Index+1).
type PartitionBounds struct {
	Partition model.PartitionConfig
	ParentID  string
	Index     int
	Bounds    model.Bounds
}

// BoundsResult is the output of a bounds calculation: every leaf zone and
// every enabled partition with absolute interior-local bounds, in pre-order
// traversal order.
type BoundsResult struct {
	Leaves     []ZoneBounds
	Partitions []PartitionBounds
}

// CalculateBounds recursively resolves the bounding rectangle of every leaf
// zone and enabled partition under the given zone. parent is the rectangle
// the zone occupies; HORIZONTAL divisions stack children's heights
// bottom-to-top, VERTICAL divisions split the width left-to-right. The
// depth axis is never subdivided by the tree: every zone inherits the
// parent depth envelope, and only shelf/partition depth presets vary
// within it.
func CalculateBounds(zone *model.Zone, parent model.Bounds, bodyThickness, cabinetDepth float64) BoundsResult {
	var result BoundsResult
	collectBounds(zone, parent, bodyThickness, cabinetDepth, &result)
	return result
}

func collectBounds(zone *model.Zone, parent model.Bounds, bodyThickness, cabinetDepth float64, result *BoundsResult) {
	if zone == nil {
		return
	}

	if zone.ContentType != model.ContentNested || len(zone.Children) == 0 {
		result.Leaves = append(result.Leaves, ZoneBounds{Zone: zone, Bounds: parent})
		return
	}

	switch zone.Division {
	case model.DivisionVertical:
		sizes := Distribute(parent.Width, widthSpecs(zone.Children))
		x := parent.StartX
		for i := range zone.Children {
			child := model.Bounds{
				StartX:  x,
				StartY:  parent.StartY,
				Width:   sizes[i],
				Height:  parent.Height,
				DepthMM: parent.DepthMM,
			}
			collectBounds(&zone.Children[i], child, bodyThickness, cabinetDepth, result)
			x += sizes[i]

			// Partition i sits on the boundary after child i. Entries past
			// the last boundary (stale trees) are skipped.
			if i >= len(zone.Children)-1 || i >= len(zone.Partitions) {
				continue
			}
			p := zone.Partitions[i]
			if !p.Enabled {
				continue
			}
			depth := resolveDepth(p.DepthPreset, p.CustomDepth, cabinetDepth)
			result.Partitions = append(result.Partitions, PartitionBounds{
				Partition: p,
				ParentID:  zone.ID,
				Index:     i,
				Bounds: model.Bounds{
					StartX:  x - bodyThickness/2,
					StartY:  parent.StartY,
					Width:   bodyThickness,
					Height:  parent.Height,
					DepthMM: depth,
				},
			})
		}

	default: // HORIZONTAL
		sizes := Distribute(parent.Height, heightSpecs(zone.Children))
		y := parent.StartY
		for i := range zone.Children {
			child := model.Bounds{
				StartX:  parent.StartX,
				StartY:  y,
				Width:   parent.Width,
				Height:  sizes[i],
				DepthMM: parent.DepthMM,
			}
			collectBounds(&zone.Children[i], child, bodyThickness, cabinetDepth, result)
			y += sizes[i]
		}
	}
}

// resolveDepth converts a depth preset into a concrete depth-into-cabinet
// in mm. FULL is the cabinet depth minus the shelf front setback; HALF is
// half of FULL, rounded; CUSTOM is the explicit value clamped to
// [MinShelfDepthMM, FULL].
func resolveDepth(preset model.DepthPreset, customMM, cabinetDepth float64) float64 {
	full := cabinetDepth - model.ShelfFrontSetbackMM
	switch preset {
	case model.DepthHalf:
		return math.Round(full / 2)
	case model.DepthCustom:
		if customMM < model.MinShelfDepthMM {
			return model.MinShelfDepthMM
		}
		if customMM > full {
			return full
		}
		return customMM
	default:
		return full
	}
}
