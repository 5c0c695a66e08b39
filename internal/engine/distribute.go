// Package engine implements the zone-tree geometry core: size distribution,
// recursive bounds calculation, content generators, and the interior
// orchestrator. Everything here is pure, synchronous computation over
// immutable-in/immutable-out values; generation never returns an error so a
// transiently invalid mid-edit tree cannot crash a caller.
package engine

import (
	"math"

	"github.com/woodbyte/cabinetry/internal/model"
)

// SizingSpec is one sibling's claim on a shared span: either a fixed mm
// value or a relative ratio.
type SizingSpec struct {
	Fixed bool
	MM    float64
	Ratio float64
}

// RatioSpec returns a ratio-based sizing spec.
func RatioSpec(ratio float64) SizingSpec {
	return SizingSpec{Ratio: ratio}
}

// FixedSpec returns a fixed-mm sizing spec.
func FixedSpec(mm float64) SizingSpec {
	return SizingSpec{Fixed: true, MM: mm}
}

// SpecFromSize converts a model.SizeSpec into a SizingSpec. A nil spec
// means a default ratio-1 share.
func SpecFromSize(s *model.SizeSpec) SizingSpec {
	if s == nil {
		return RatioSpec(1)
	}
	if s.Mode == model.SizeFixed {
		return FixedSpec(s.MM)
	}
	return RatioSpec(s.Ratio)
}

// Distribute computes a concrete size in mm for each sizing spec against a
// total span. Fixed specs are honored first; the remaining space (clamped
// to zero) is split between ratio specs proportionally to their weights.
// When all ratio weights sum to zero every ratio spec is treated as weight
// 1. Each ratio share is rounded half up independently; the rounded sizes
// may therefore sum to within ±(n-1) mm of the span. Fixed sizes exceeding
// the span are not clamped here — surfacing that is Validate's job.
func Distribute(totalSpan float64, specs []SizingSpec) []float64 {
	if len(specs) == 0 {
		return nil
	}

	sizes := make([]float64, len(specs))

	var fixedTotal, totalRatio float64
	for _, s := range specs {
		if s.Fixed {
			fixedTotal += s.MM
		} else if s.Ratio > 0 {
			totalRatio += s.Ratio
		}
	}

	remaining := totalSpan - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	for i, s := range specs {
		if s.Fixed {
			sizes[i] = s.MM
			continue
		}
		ratio := s.Ratio
		if totalRatio <= 0 {
			// All-zero weights degrade to equal shares.
			ratio = 1
			sizes[i] = math.Round(remaining / float64(countFlexible(specs)))
			continue
		}
		if ratio < 0 {
			ratio = 0
		}
		sizes[i] = math.Round(ratio / totalRatio * remaining)
	}

	return sizes
}

func countFlexible(specs []SizingSpec) int {
	n := 0
	for _, s := range specs {
		if !s.Fixed {
			n++
		}
	}
	return n
}

// heightSpecs extracts the sizing specs of a nested zone's children along a
// HORIZONTAL division.
func heightSpecs(children []model.Zone) []SizingSpec {
	specs := make([]SizingSpec, len(children))
	for i := range children {
		h := children[i].Height
		specs[i] = SpecFromSize(&h)
	}
	return specs
}

// widthSpecs extracts the sizing specs of a nested zone's children along a
// VERTICAL division. A missing width config defaults to ratio 1.
func widthSpecs(children []model.Zone) []SizingSpec {
	specs := make([]SizingSpec, len(children))
	for i := range children {
		specs[i] = SpecFromSize(children[i].Width)
	}
	return specs
}
