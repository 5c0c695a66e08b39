package engine

import "github.com/woodbyte/cabinetry/internal/model"

// GenerateInterior turns a cabinet's interior zone tree into the flat list
// of manufacturable parts. It is a pure function: the tree is walked, never
// mutated, and a fresh slice is returned on every call.
//
// A nil interior config, a nil root zone, or a root with no populated
// content all yield an empty (non-nil) slice. Emission order is
// deterministic: leaf zones in pre-order with children in index order,
// then partitions in the same traversal order. Consumers group by role,
// not position in the slice.
func GenerateInterior(cab model.CabinetParams, interior *model.InteriorConfig) []model.GeneratedPart {
	parts := []model.GeneratedPart{}
	if interior == nil || interior.RootZone == nil {
		return parts
	}

	rootBounds := model.Bounds{
		StartX:  0,
		StartY:  0,
		Width:   cab.InteriorWidth(),
		Height:  cab.InteriorHeight(),
		DepthMM: cab.Depth,
	}

	result := CalculateBounds(interior.RootZone, rootBounds, cab.BodyThickness, cab.Depth)

	for _, leaf := range result.Leaves {
		switch leaf.Zone.ContentType {
		case model.ContentShelves:
			parts = append(parts, GenerateShelves(leaf.Zone, leaf.Bounds, cab)...)
		case model.ContentDrawers:
			parts = append(parts, GenerateDrawers(leaf.Zone, leaf.Bounds, cab)...)
		}
		// EMPTY zones contribute nothing.
	}

	for i, pb := range result.Partitions {
		parts = append(parts, GeneratePartition(pb, i, cab))
	}

	return parts
}
