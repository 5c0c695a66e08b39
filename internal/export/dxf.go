package export

import (
	"fmt"

	"github.com/woodbyte/cabinetry/internal/model"
	"github.com/yofu/dxf"
	dxfdrawing "github.com/yofu/dxf/drawing"
)

// dxfGapMM is the spacing between part outlines in the exported drawing.
const dxfGapMM = 50.0

// ExportDXF writes a single DXF drawing with the rectangular outline of
// every cut panel, laid out left to right with a fixed gap. Hardware units
// (slides) are skipped. The drawing is meant for CAM import; nesting onto
// stock sheets is the optimizer's job, not ours.
func ExportDXF(path string, parts []model.GeneratedPart) error {
	panels := make([]model.GeneratedPart, 0, len(parts))
	for _, p := range SortForCutList(parts) {
		if p.ShapeType == model.ShapeRect {
			panels = append(panels, p)
		}
	}
	if len(panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	drawing := dxf.NewDrawing()
	if _, err := drawing.AddLayer("PANELS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer: %w", err)
	}

	x := 0.0
	for _, p := range panels {
		if err := drawRect(drawing, x, 0, p.Width, p.Height); err != nil {
			return fmt.Errorf("failed to draw outline for %q: %w", p.Name, err)
		}
		x += p.Width + dxfGapMM
	}

	if err := drawing.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// drawRect draws a closed rectangle from four line entities.
func drawRect(drawing *dxfdrawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := drawing.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}
