package engine

import (
	"fmt"

	"github.com/woodbyte/cabinetry/internal/model"
)

// Constraints are the minimum usable zone dimensions checked by Validate.
type Constraints struct {
	MinZoneWidthMM  float64 `json:"min_zone_width_mm"`
	MinZoneHeightMM float64 `json:"min_zone_height_mm"`
}

// DefaultConstraints returns the editor's standard minimums.
func DefaultConstraints() Constraints {
	return Constraints{MinZoneWidthMM: 100, MinZoneHeightMM: 60}
}

// Violation is one user-facing validation failure.
type Violation struct {
	ZoneID  string `json:"zone_id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Violation kinds.
const (
	ViolationZoneTooNarrow  = "ZONE_TOO_NARROW"
	ViolationZoneTooShort   = "ZONE_TOO_SHORT"
	ViolationBadRatio       = "NON_POSITIVE_RATIO"
	ViolationFixedOverflow  = "FIXED_SIZE_OVERFLOW"
	ViolationDepthExceeded  = "DEPTH_MISMATCH"
	ViolationOrphanedConfig = "CONTENT_CONFIG_MISMATCH"
)

// ValidationResult reports whether a tree is manufacturable and lists every
// violation found. Generation itself is total and never fails; this is the
// layer that surfaces invalid input to users.
type ValidationResult struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

// Validate walks the same bounds computation as generation and checks every
// leaf zone against the minimum dimensions, every sizing spec for positive
// ratios, and every nested zone for fixed sizes exceeding the available
// span.
func Validate(cab model.CabinetParams, interior *model.InteriorConfig, constraints Constraints) ValidationResult {
	result := ValidationResult{Valid: true, Violations: []Violation{}}
	if interior == nil || interior.RootZone == nil {
		return result
	}

	rootBounds := model.Bounds{
		Width:   cab.InteriorWidth(),
		Height:  cab.InteriorHeight(),
		DepthMM: cab.Depth,
	}

	bounds := CalculateBounds(interior.RootZone, rootBounds, cab.BodyThickness, cab.Depth)
	for _, leaf := range bounds.Leaves {
		if leaf.Bounds.Width < constraints.MinZoneWidthMM {
			result.add(leaf.Zone.ID, ViolationZoneTooNarrow,
				fmt.Sprintf("zone is %.0fmm wide, minimum is %.0fmm", leaf.Bounds.Width, constraints.MinZoneWidthMM))
		}
		if leaf.Bounds.Height < constraints.MinZoneHeightMM {
			result.add(leaf.Zone.ID, ViolationZoneTooShort,
				fmt.Sprintf("zone is %.0fmm tall, minimum is %.0fmm", leaf.Bounds.Height, constraints.MinZoneHeightMM))
		}
	}

	validateTree(interior.RootZone, rootBounds, &result)
	return result
}

// validateTree checks structural sizing rules that the total generation
// pipeline deliberately tolerates.
func validateTree(zone *model.Zone, b model.Bounds, result *ValidationResult) {
	checkContentConfig(zone, result)

	if zone.ContentType != model.ContentNested || len(zone.Children) == 0 {
		return
	}

	span := b.Height
	specs := heightSpecs(zone.Children)
	if zone.Division == model.DivisionVertical {
		span = b.Width
		specs = widthSpecs(zone.Children)
	}

	var fixedTotal float64
	for i, s := range specs {
		if s.Fixed {
			fixedTotal += s.MM
		} else if s.Ratio <= 0 {
			result.add(zone.Children[i].ID, ViolationBadRatio,
				fmt.Sprintf("sizing ratio must be positive, got %g", s.Ratio))
		}
	}
	if fixedTotal > span {
		result.add(zone.ID, ViolationFixedOverflow,
			fmt.Sprintf("fixed sizes total %.0fmm but only %.0fmm is available", fixedTotal, span))
	}

	for i := range zone.Children {
		if zone.Children[i].Depth != zone.Depth+1 {
			result.add(zone.Children[i].ID, ViolationDepthExceeded,
				fmt.Sprintf("child depth %d does not follow parent depth %d", zone.Children[i].Depth, zone.Depth))
		}
	}

	sizes := Distribute(span, specs)
	if zone.Division == model.DivisionVertical {
		x := b.StartX
		for i := range zone.Children {
			child := b
			child.StartX = x
			child.Width = sizes[i]
			validateTree(&zone.Children[i], child, result)
			x += sizes[i]
		}
	} else {
		y := b.StartY
		for i := range zone.Children {
			child := b
			child.StartY = y
			child.Height = sizes[i]
			validateTree(&zone.Children[i], child, result)
			y += sizes[i]
		}
	}
}

// checkContentConfig flags a declared content type whose config is absent.
// Generation treats these as no-ops; validation points them out.
func checkContentConfig(zone *model.Zone, result *ValidationResult) {
	switch zone.ContentType {
	case model.ContentShelves:
		if zone.Shelves == nil {
			result.add(zone.ID, ViolationOrphanedConfig, "SHELVES zone has no shelves config")
		}
	case model.ContentDrawers:
		if zone.Drawers == nil {
			result.add(zone.ID, ViolationOrphanedConfig, "DRAWERS zone has no drawer config")
		}
	case model.ContentNested:
		if len(zone.Children) == 0 {
			result.add(zone.ID, ViolationOrphanedConfig, "NESTED zone has no children")
		}
	}
}

func (r *ValidationResult) add(zoneID, kind, message string) {
	r.Valid = false
	r.Violations = append(r.Violations, Violation{ZoneID: zoneID, Kind: kind, Message: message})
}
