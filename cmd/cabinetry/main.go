// Cabinetry — Parametric Cabinet Configurator
//
// Command-line front end for the cabinet interior engine: loads a
// project file, generates the part list, validates the zone layout and
// exports cut lists in XLSX, PDF, label-sheet and DXF formats.
//
// Build:
//   go build -o cabinetry ./cmd/cabinetry
//
// Examples:
//   cabinetry -project kitchen.json -validate
//   cabinetry -project kitchen.json -xlsx cutlist.xlsx -pdf cutlist.pdf
//   cabinetry -new -project fresh.json
//   cabinetry -project kitchen.json -import-materials sheets.csv

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/woodbyte/cabinetry/internal/engine"
	"github.com/woodbyte/cabinetry/internal/export"
	"github.com/woodbyte/cabinetry/internal/importer"
	"github.com/woodbyte/cabinetry/internal/model"
	"github.com/woodbyte/cabinetry/internal/project"
)

func main() {
	var (
		projectPath = flag.String("project", "", "path to the project JSON file")
		newProject  = flag.Bool("new", false, "create a new project with defaults and save it to -project")
		validate    = flag.Bool("validate", false, "validate the interior layout and print violations")
		noCarcass   = flag.Bool("no-carcass", false, "exclude carcass panels from generated parts")
		xlsxPath    = flag.String("xlsx", "", "export cut list to an Excel file")
		pdfPath     = flag.String("pdf", "", "export cut list with elevation drawing to a PDF file")
		labelsPath  = flag.String("labels", "", "export part labels with QR codes to a PDF file")
		dxfPath     = flag.String("dxf", "", "export panel outlines to a DXF file")
		importPath  = flag.String("import-materials", "", "import a material catalog (CSV or XLSX) into the project")
		showParts   = flag.Bool("parts", false, "print the generated part list")
		showSummary = flag.Bool("summary", false, "print an interior summary")
	)
	flag.Parse()

	if *projectPath == "" {
		fmt.Fprintln(os.Stderr, "cabinetry: -project is required")
		flag.Usage()
		os.Exit(2)
	}

	if *newProject {
		p := model.NewProject()
		p.Name = strings.TrimSuffix(filepath.Base(*projectPath), filepath.Ext(*projectPath))
		if err := project.Save(*projectPath, p); err != nil {
			fatal(err)
		}
		fmt.Printf("Created project %q at %s\n", p.Name, *projectPath)
		return
	}

	p, err := project.Load(*projectPath)
	if err != nil {
		fatal(err)
	}

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err == nil {
		project.RememberRecentProject(&config, *projectPath)
		_ = project.SaveAppConfig(project.DefaultConfigPath(), config)
	}

	if *importPath != "" {
		if err := importMaterials(&p, *importPath); err != nil {
			fatal(err)
		}
		if err := project.Save(*projectPath, p); err != nil {
			fatal(err)
		}
	}

	if *validate {
		result := engine.Validate(p.Cabinet, p.Interior, engine.DefaultConstraints())
		if result.Valid {
			fmt.Println("Layout OK: no violations")
		} else {
			for _, v := range result.Violations {
				fmt.Printf("%s  zone=%s  %s\n", v.Kind, v.ZoneID, v.Message)
			}
			os.Exit(1)
		}
	}

	if *showSummary {
		fmt.Printf("%s: %s, interior %s\n", p.Cabinet.Name,
			cabinetDims(p.Cabinet), model.InteriorSummary(p.Interior))
	}

	parts := engine.GenerateInterior(p.Cabinet, p.Interior)
	if !*noCarcass {
		parts = append(engine.GenerateCarcass(p.Cabinet), parts...)
	}
	p.Parts = parts

	if *showParts {
		printParts(parts)
	}

	if *xlsxPath != "" {
		if err := export.ExportCutListXLSX(*xlsxPath, p, parts); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote cut list: %s\n", *xlsxPath)
	}
	if *pdfPath != "" {
		if err := export.ExportCutListPDF(*pdfPath, p, parts); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote PDF: %s\n", *pdfPath)
	}
	if *labelsPath != "" {
		if err := export.ExportPartLabels(*labelsPath, parts); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote labels: %s\n", *labelsPath)
	}
	if *dxfPath != "" {
		if err := export.ExportDXF(*dxfPath, parts); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote DXF: %s\n", *dxfPath)
	}
}

// importMaterials merges a CSV or XLSX material catalog into the project,
// replacing materials that share an ID.
func importMaterials(p *model.Project, path string) error {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		result = importer.ImportCSV(path)
	case ".xlsx":
		result = importer.ImportExcel(path)
	default:
		return fmt.Errorf("unsupported material file type: %s", filepath.Ext(path))
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}
	if len(result.Materials) == 0 {
		return fmt.Errorf("no materials imported from %s", path)
	}

	byID := make(map[string]int, len(p.Materials))
	for i, m := range p.Materials {
		byID[m.ID] = i
	}
	for _, m := range result.Materials {
		if i, ok := byID[m.ID]; ok {
			p.Materials[i] = m
		} else {
			p.Materials = append(p.Materials, m)
		}
	}
	fmt.Printf("Imported %d materials from %s\n", len(result.Materials), path)
	return nil
}

func cabinetDims(c model.CabinetParams) string {
	return fmt.Sprintf("%.0f x %.0f x %.0f mm", c.Width, c.Height, c.Depth)
}

func printParts(parts []model.GeneratedPart) {
	sorted := export.SortForCutList(parts)
	fmt.Printf("%-4s %-22s %-14s %-20s %8s %8s %6s  %s\n",
		"#", "Name", "Role", "Material", "Width", "Height", "Thick", "Banding")
	for i, part := range sorted {
		fmt.Printf("%-4d %-22s %-14s %-20s %8.1f %8.1f %6.1f  %s\n",
			i+1, part.Name, part.Metadata.Role, part.MaterialID,
			part.Width, part.Height, part.Depth, part.EdgeBanding.String())
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "cabinetry:", err)
	os.Exit(1)
}
