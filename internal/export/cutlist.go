// Package export writes generated cabinet parts to the formats the workshop
// consumes: XLSX cut lists, PDF documents, QR-coded part labels, and DXF
// panel outlines.
package export

import (
	"fmt"
	"sort"

	"github.com/woodbyte/cabinetry/internal/model"
	"github.com/xuri/excelize/v2"
)

// roleOrder controls cut-list grouping: carcass first, then interior, then
// hardware.
var roleOrder = map[model.PartRole]int{
	model.RoleSide:        0,
	model.RoleBottom:      1,
	model.RoleTop:         2,
	model.RoleBack:        3,
	model.RolePartition:   4,
	model.RoleShelf:       5,
	model.RoleDrawerFront: 6,
	model.RoleDrawerBox:   7,
	model.RoleDrawerSlide: 8,
}

// SortForCutList returns the parts ordered by role group, then by name.
// The input slice is not modified.
func SortForCutList(parts []model.GeneratedPart) []model.GeneratedPart {
	sorted := append([]model.GeneratedPart(nil), parts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		oi, oj := roleOrder[sorted[i].Metadata.Role], roleOrder[sorted[j].Metadata.Role]
		if oi != oj {
			return oi < oj
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// ExportCutListXLSX writes the cut list workbook: a "Cut List" sheet with
// one row per part, an "Edge Banding" sheet with the banding breakdown, and
// a "Materials" sheet with the project's catalog.
func ExportCutListXLSX(path string, project model.Project, parts []model.GeneratedPart) error {
	if len(parts) == 0 {
		return fmt.Errorf("no parts to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const cutSheet = "Cut List"
	f.SetSheetName("Sheet1", cutSheet)

	headers := []string{"#", "Name", "Role", "Material", "Width (mm)", "Height (mm)", "Thickness (mm)", "Edge Banding"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(cutSheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for i, p := range SortForCutList(parts) {
		material := p.MaterialID
		if m, ok := project.MaterialByID(p.MaterialID); ok {
			material = m.Name
		}
		values := []interface{}{
			i + 1, p.Name, string(p.Metadata.Role), material,
			p.Width, p.Height, p.Depth, p.EdgeBanding.String(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(cutSheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	if err := writeBandingSheet(f, parts); err != nil {
		return err
	}
	if err := writeMaterialsSheet(f, project.Materials); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeBandingSheet(f *excelize.File, parts []model.GeneratedPart) error {
	const sheet = "Edge Banding"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Name", "Width (mm)", "Height (mm)", "Edges", "Length (mm)"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, b := range model.CalculatePerPartEdgeBanding(parts) {
		values := []interface{}{b.Name, b.Width, b.Height, b.Edges, b.LengthPerUnit}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}

	summary := model.CalculateEdgeBanding(parts, 10)
	totalCell, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, totalCell,
		fmt.Sprintf("Total with 10%% waste: %.2f m", summary.TotalWithWasteM))
}

func writeMaterialsSheet(f *excelize.File, materials []model.Material) error {
	const sheet = "Materials"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"ID", "Name", "Thickness (mm)", "Price per Sheet"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, m := range materials {
		values := []interface{}{m.ID, m.Name, m.ThicknessMM, m.PricePerSheet}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
