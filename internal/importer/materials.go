// Package importer provides CSV and Excel import for material catalogs.
// It supports flexible column mapping with case-insensitive header
// recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/woodbyte/cabinetry/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Materials []model.Material
	Errors    []string
	Warnings  []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	ID        int
	Name      int
	Thickness int
	Price     int
}

// headerAliases maps canonical column names to their accepted aliases (all
// lowercase).
var headerAliases = map[string][]string{
	"id":        {"id", "code", "sku", "material id"},
	"name":      {"name", "material", "description", "desc"},
	"thickness": {"thickness", "thickness (mm)", "thick", "t", "mm"},
	"price":     {"price", "cost", "price per sheet", "sheet price"},
}

// DetectColumns examines a header row and returns a ColumnMapping. It
// performs case-insensitive matching against known aliases for each column
// role. Returns the mapping and true if a header was detected, or a default
// positional mapping (ID, Name, Thickness, Price) and false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{ID: -1, Name: -1, Thickness: -1, Price: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "id":
					if mapping.ID == -1 {
						mapping.ID = i
					}
				case "name":
					if mapping.Name == -1 {
						mapping.Name = i
					}
				case "thickness":
					if mapping.Thickness == -1 {
						mapping.Thickness = i
					}
				case "price":
					if mapping.Price == -1 {
						mapping.Price = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{ID: 0, Name: 1, Thickness: 2, Price: 3}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a Material from a row using the given column mapping.
// Returns the material and any error message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (model.Material, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		return model.Material{}, fmt.Sprintf("%s: Missing material name", rowLabel)
	}

	thicknessStr := getCell(row, mapping.Thickness)
	if thicknessStr == "" {
		return model.Material{}, fmt.Sprintf("%s: Missing thickness value", rowLabel)
	}
	thickness, err := strconv.ParseFloat(thicknessStr, 64)
	if err != nil || thickness <= 0 {
		return model.Material{}, fmt.Sprintf("%s: Invalid thickness '%s'", rowLabel, thicknessStr)
	}

	id := getCell(row, mapping.ID)
	if id == "" {
		id = strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	}

	m := model.Material{ID: id, Name: name, ThicknessMM: thickness}

	if priceStr := getCell(row, mapping.Price); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			return model.Material{}, fmt.Sprintf("%s: Invalid price '%s'", rowLabel, priceStr)
		}
		m.PricePerSheet = price
	}

	return m, ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports materials from a CSV file with comma delimiters and
// header-based column mapping.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line")
}

// ImportExcel imports materials from an Excel (.xlsx) file. Reads the first
// sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row")
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string) ImportResult {
	result := ImportResult{}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		if mapping.Name == -1 {
			missing = append(missing, "Name")
		}
		if mapping.Thickness == -1 {
			missing = append(missing, "Thickness")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		material, errMsg := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Materials = append(result.Materials, material)
	}

	return result
}
