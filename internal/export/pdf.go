package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/woodbyte/cabinetry/internal/engine"
	"github.com/woodbyte/cabinetry/internal/model"
)

// zoneColor represents an RGB color for a rendered zone.
type zoneColor struct {
	R, G, B int
}

// zoneColors cycles through the elevation diagram's zone fills.
var zoneColors = []zoneColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportCutListPDF generates a PDF document for a generated cabinet: a
// front-elevation diagram of the interior zones, a parts table, and a
// summary with role counts and edge banding totals.
func ExportCutListPDF(path string, project model.Project, parts []model.GeneratedPart) error {
	if len(parts) == 0 {
		return fmt.Errorf("no parts to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)

	pdf.AddPage()
	renderElevationPage(pdf, project)

	pdf.AddPage()
	renderPartsTable(pdf, project, parts)

	renderSummary(pdf, parts)

	return pdf.OutputFileAndClose(path)
}

// renderElevationPage draws the cabinet front elevation with every leaf
// zone and partition at scale.
func renderElevationPage(pdf *fpdf.Fpdf, project model.Project) {
	cab := project.Cabinet

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%.0f x %.0f x %.0f mm)", cab.Name, cab.Width, cab.Height, cab.Depth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5,
		"Interior: "+model.InteriorSummary(project.Interior), "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 40

	scale := math.Min(drawWidth/cab.Width, drawHeight/cab.Height)
	canvasW := cab.Width * scale
	canvasH := cab.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop + 10

	// Carcass outline (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	if project.Interior == nil || project.Interior.RootZone == nil {
		return
	}

	rootBounds := model.Bounds{
		Width:   cab.InteriorWidth(),
		Height:  cab.InteriorHeight(),
		DepthMM: cab.Depth,
	}
	bounds := engine.CalculateBounds(project.Interior.RootZone, rootBounds, cab.BodyThickness, cab.Depth)

	// PDF Y grows downward; cabinet Y grows upward, so zones are flipped.
	toPage := func(b model.Bounds) (x, y, w, h float64) {
		ix, iy := cab.InteriorOrigin()
		x = offsetX + (ix+b.StartX)*scale
		y = offsetY + canvasH - (iy+b.StartY+b.Height)*scale
		return x, y, b.Width * scale, b.Height * scale
	}

	for i, leaf := range bounds.Leaves {
		col := zoneColors[i%len(zoneColors)]
		x, y, w, h := toPage(leaf.Bounds)

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(x, y, w, h, "FD")

		if w > 15 && h > 8 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(0, 0, 0)
			label := zoneLabel(leaf.Zone)
			labelW := pdf.GetStringWidth(label)
			if labelW < w-2 {
				pdf.SetXY(x+(w-labelW)/2, y+h/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	for _, pb := range bounds.Partitions {
		x, y, w, h := toPage(pb.Bounds)
		pdf.SetFillColor(120, 90, 60)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(x, y, w, h, "FD")
	}

	drawDimensions(pdf, cab, scale, offsetX, offsetY, canvasW, canvasH)
}

// zoneLabel returns the short text drawn inside a zone rectangle.
func zoneLabel(z *model.Zone) string {
	switch z.ContentType {
	case model.ContentShelves:
		if z.Shelves != nil {
			return fmt.Sprintf("%d shelves", z.Shelves.Count)
		}
	case model.ContentDrawers:
		if z.Drawers != nil {
			return fmt.Sprintf("%d drawers", len(z.Drawers.Zones))
		}
	}
	return "empty"
}

// drawDimensions adds width and height annotations outside the cabinet
// rectangle.
func drawDimensions(pdf *fpdf.Fpdf, cab model.CabinetParams, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f mm", cab.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f mm", cab.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// renderPartsTable draws the parts table, one row per part.
func renderPartsTable(pdf *fpdf.Fpdf, project model.Project, parts []model.GeneratedPart) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Cut List", "", 1, "L", false, 0, "")

	colWidths := []float64{8, 58, 26, 38, 16, 16, 18}
	headers := []string{"#", "Name", "Role", "Material", "W", "H", "Thk"}

	y := marginTop + headerHeight
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 8)
	for i, p := range SortForCutList(parts) {
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}

		material := p.MaterialID
		if m, ok := project.MaterialByID(p.MaterialID); ok {
			material = m.Name
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			p.Name,
			string(p.Metadata.Role),
			material,
			fmt.Sprintf("%.0f", p.Width),
			fmt.Sprintf("%.0f", p.Height),
			fmt.Sprintf("%.0f", p.Depth),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		x = marginLeft
		for j, cell := range row {
			align := "L"
			if j == 0 || j >= 4 {
				align = "R"
			}
			pdf.SetXY(x, y)
			pdf.CellFormat(colWidths[j], 5, cell, "1", 0, align, true, 0, "")
			x += colWidths[j]
		}
		y += 5
	}

	pdf.SetY(y + 5)
}

// renderSummary appends role counts and edge banding totals below the
// parts table.
func renderSummary(pdf *fpdf.Fpdf, parts []model.GeneratedPart) {
	counts := map[model.PartRole]int{}
	for _, p := range parts {
		counts[p.Metadata.Role]++
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(100, 7, "Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, role := range []model.PartRole{
		model.RoleSide, model.RoleBottom, model.RoleTop, model.RoleBack,
		model.RolePartition, model.RoleShelf, model.RoleDrawerFront,
		model.RoleDrawerBox, model.RoleDrawerSlide,
	} {
		if counts[role] == 0 {
			continue
		}
		pdf.CellFormat(80, 5, fmt.Sprintf("%s: %d", role, counts[role]), "", 1, "L", false, 0, "")
	}

	banding := model.CalculateEdgeBanding(parts, 10)
	if banding.EdgeCount > 0 {
		pdf.CellFormat(120, 5,
			fmt.Sprintf("Edge banding: %d edges, %.2f m (+10%% waste: %.2f m)",
				banding.EdgeCount, banding.TotalLinearM, banding.TotalWithWasteM),
			"", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by Cabinetry - Parametric Cabinet Configurator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
