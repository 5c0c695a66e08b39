package model

import "math"

// EdgeBandingSummary holds the calculated edge banding requirements for a
// generated part list.
type EdgeBandingSummary struct {
	TotalLinearMM    float64 `json:"total_linear_mm"`     // Total banding length in mm (no waste)
	TotalLinearM     float64 `json:"total_linear_m"`      // Total banding length in meters (no waste)
	WastePercent     float64 `json:"waste_percent"`       // Waste percentage applied
	TotalWithWasteMM float64 `json:"total_with_waste_mm"` // Total with waste in mm
	TotalWithWasteM  float64 `json:"total_with_waste_m"`  // Total with waste in meters
	PartCount        int     `json:"part_count"`          // Number of parts needing banding
	EdgeCount        int     `json:"edge_count"`          // Total number of edges needing banding
}

// CalculateEdgeBanding computes the total edge banding needed for a list of
// generated parts. wastePercent is the additional percentage to add for
// waste (e.g., 10 for 10%).
func CalculateEdgeBanding(parts []GeneratedPart, wastePercent float64) EdgeBandingSummary {
	var totalMM float64
	var partCount, edgeCount int

	for _, p := range parts {
		if !p.EdgeBanding.HasAny() {
			continue
		}
		totalMM += p.EdgeBanding.LinearLength(p.Width, p.Height)
		partCount++
		edgeCount += p.EdgeBanding.EdgeCount()
	}

	wasteFactor := 1.0 + (wastePercent / 100.0)
	totalWithWaste := totalMM * wasteFactor

	return EdgeBandingSummary{
		TotalLinearMM:    totalMM,
		TotalLinearM:     totalMM / 1000.0,
		WastePercent:     wastePercent,
		TotalWithWasteMM: math.Ceil(totalWithWaste), // Round up
		TotalWithWasteM:  math.Ceil(totalWithWaste) / 1000.0,
		PartCount:        partCount,
		EdgeCount:        edgeCount,
	}
}

// PerPartEdgeBanding is a per-part breakdown of edge banding needs.
type PerPartEdgeBanding struct {
	Name          string  `json:"name"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Edges         string  `json:"edges"` // e.g., "F+L+R"
	LengthPerUnit float64 `json:"length_per_unit"`
}

// CalculatePerPartEdgeBanding returns a breakdown of banding per part.
func CalculatePerPartEdgeBanding(parts []GeneratedPart) []PerPartEdgeBanding {
	var results []PerPartEdgeBanding
	for _, p := range parts {
		if !p.EdgeBanding.HasAny() {
			continue
		}
		results = append(results, PerPartEdgeBanding{
			Name:          p.Name,
			Width:         p.Width,
			Height:        p.Height,
			Edges:         p.EdgeBanding.String(),
			LengthPerUnit: p.EdgeBanding.LinearLength(p.Width, p.Height),
		})
	}
	return results
}
