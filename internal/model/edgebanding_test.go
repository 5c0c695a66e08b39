package model

import "testing"

func TestEdgeBandingLinearLength(t *testing.T) {
	e := EdgeBanding{Front: true, Left: true, Right: true}
	// Front runs the width, left+right run the height.
	if got := e.LinearLength(600, 400); got != 600+400+400 {
		t.Errorf("linear length = %g", got)
	}
	if e.EdgeCount() != 3 {
		t.Errorf("edge count = %d", e.EdgeCount())
	}
	if e.String() != "F+L+R" {
		t.Errorf("string = %q", e.String())
	}
	if (EdgeBanding{}).String() != "-" {
		t.Error("empty banding should render as dash")
	}
}

func TestCalculateEdgeBanding(t *testing.T) {
	parts := []GeneratedPart{
		{Name: "Shelf 1", Width: 564, Height: 550, EdgeBanding: EdgeBanding{Front: true}},
		{Name: "Shelf 2", Width: 564, Height: 550, EdgeBanding: EdgeBanding{Front: true}},
		{Name: "Front", Width: 597, Height: 339, EdgeBanding: EdgeBanding{Front: true, Back: true, Left: true, Right: true}},
		{Name: "Slide", Width: 13, Height: 45}, // no banding
	}

	s := CalculateEdgeBanding(parts, 10)

	wantMM := 564.0 + 564.0 + (2*597 + 2*339)
	if s.TotalLinearMM != wantMM {
		t.Errorf("total = %g, want %g", s.TotalLinearMM, wantMM)
	}
	if s.PartCount != 3 {
		t.Errorf("part count = %d", s.PartCount)
	}
	if s.EdgeCount != 6 {
		t.Errorf("edge count = %d", s.EdgeCount)
	}
	// Waste total is rounded up to a whole millimeter.
	if s.TotalWithWasteMM < wantMM*1.1 || s.TotalWithWasteMM >= wantMM*1.1+1 {
		t.Errorf("waste total = %g", s.TotalWithWasteMM)
	}
}

func TestCalculatePerPartEdgeBanding(t *testing.T) {
	parts := []GeneratedPart{
		{Name: "Shelf 1", Width: 564, Height: 550, EdgeBanding: EdgeBanding{Front: true}},
		{Name: "Slide", Width: 13, Height: 45},
	}
	rows := CalculatePerPartEdgeBanding(parts)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Edges != "F" || rows[0].LengthPerUnit != 564 {
		t.Errorf("row = %+v", rows[0])
	}
}
