package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "materials.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportCSV_WithHeader(t *testing.T) {
	path := writeTempCSV(t, "ID,Name,Thickness,Price\nmel-18,Melamine 18,18,52\nply-15,Plywood 15,15,74\n")

	result := ImportCSV(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(result.Materials))
	}
	m := result.Materials[0]
	if m.ID != "mel-18" || m.Name != "Melamine 18" || m.ThicknessMM != 18 || m.PricePerSheet != 52 {
		t.Errorf("material = %+v", m)
	}
	if len(result.Warnings) == 0 {
		t.Error("header detection should produce a warning")
	}
}

func TestImportCSV_HeaderAliases(t *testing.T) {
	path := writeTempCSV(t, "SKU,Material,Thickness (mm),Cost\nmdf-19,MDF,19,48\n")

	result := ImportCSV(path)

	if len(result.Materials) != 1 {
		t.Fatalf("materials = %+v, errors = %v", result.Materials, result.Errors)
	}
	if result.Materials[0].ID != "mdf-19" || result.Materials[0].ThicknessMM != 19 {
		t.Errorf("material = %+v", result.Materials[0])
	}
}

func TestImportCSV_NoHeaderPositional(t *testing.T) {
	path := writeTempCSV(t, "hdf-3,HDF 3mm,3,14\n")

	result := ImportCSV(path)

	if len(result.Materials) != 1 {
		t.Fatalf("materials = %+v, errors = %v", result.Materials, result.Errors)
	}
	if result.Materials[0].Name != "HDF 3mm" {
		t.Errorf("material = %+v", result.Materials[0])
	}
}

func TestImportCSV_GeneratesIDFromName(t *testing.T) {
	path := writeTempCSV(t, "Name,Thickness\nBirch Plywood,15\n")

	result := ImportCSV(path)

	if len(result.Materials) != 1 {
		t.Fatalf("materials = %+v, errors = %v", result.Materials, result.Errors)
	}
	if result.Materials[0].ID != "birch-plywood" {
		t.Errorf("id = %q", result.Materials[0].ID)
	}
}

func TestImportCSV_BadRowsReported(t *testing.T) {
	path := writeTempCSV(t, "Name,Thickness,Price\nGood,18,50\n,18,50\nBad thickness,zero,50\nBad price,18,abc\n")

	result := ImportCSV(path)

	if len(result.Materials) != 1 {
		t.Errorf("expected 1 good material, got %d", len(result.Materials))
	}
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 row errors, got %v", result.Errors)
	}
}

func TestImportCSV_EmptyAndMissing(t *testing.T) {
	path := writeTempCSV(t, "   \n")
	if result := ImportCSV(path); len(result.Errors) == 0 {
		t.Error("empty file should report an error")
	}
	if result := ImportCSV(filepath.Join(t.TempDir(), "nope.csv")); len(result.Errors) == 0 {
		t.Error("missing file should report an error")
	}
}

func TestImportCSV_HeaderMissingRequiredColumns(t *testing.T) {
	path := writeTempCSV(t, "ID,Price\nx,10\n")
	result := ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Error("header without name/thickness columns should error")
	}
	if len(result.Materials) != 0 {
		t.Errorf("materials = %+v", result.Materials)
	}
}

func TestImportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"ID", "Name", "Thickness", "Price"},
		{"osb-12", "OSB 12mm", 12, 22},
		{"mdf-22", "MDF 22mm", 22, 55},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	result := ImportExcel(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(result.Materials))
	}
	if result.Materials[1].ID != "mdf-22" || result.Materials[1].ThicknessMM != 22 {
		t.Errorf("material = %+v", result.Materials[1])
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("missing file should report an error")
	}
}

func TestDetectColumns(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Name", "thickness", "PRICE"})
	if !isHeader {
		t.Fatal("expected header detection")
	}
	if mapping.Name != 0 || mapping.Thickness != 1 || mapping.Price != 2 || mapping.ID != -1 {
		t.Errorf("mapping = %+v", mapping)
	}

	mapping, isHeader = DetectColumns([]string{"mel-18", "Melamine", "18", "52"})
	if isHeader {
		t.Error("data row misdetected as header")
	}
	if mapping.ID != 0 || mapping.Name != 1 {
		t.Errorf("positional mapping = %+v", mapping)
	}
}
