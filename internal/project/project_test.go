package project

import (
	"path/filepath"
	"testing"

	"github.com/woodbyte/cabinetry/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	p := model.NewProject()
	p.Name = "Round trip"
	shelves := model.NewDefaultZone(model.ContentShelves, model.DefaultPreferences())
	shelves.Shelves.Count = 4
	drawers := model.NewDefaultZone(model.ContentDrawers, model.DefaultPreferences())
	root := model.NewNestedZone(model.DivisionHorizontal, drawers, shelves)
	p.Interior = &model.InteriorConfig{RootZone: &root}

	path := filepath.Join(t.TempDir(), "sub", "project.json")
	if err := Save(path, p); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Name != "Round trip" {
		t.Errorf("name = %q", loaded.Name)
	}
	if loaded.Cabinet.Width != p.Cabinet.Width {
		t.Errorf("cabinet width = %g", loaded.Cabinet.Width)
	}
	if loaded.Interior == nil || loaded.Interior.RootZone == nil {
		t.Fatal("interior lost in round trip")
	}
	if len(loaded.Interior.RootZone.Children) != 2 {
		t.Errorf("children = %d", len(loaded.Interior.RootZone.Children))
	}
	if loaded.Interior.RootZone.Children[1].Shelves.Count != 4 {
		t.Error("shelf config lost in round trip")
	}
	if len(loaded.Materials) != len(p.Materials) {
		t.Errorf("materials = %d", len(loaded.Materials))
	}
}

func TestLoad_NormalizesDepths(t *testing.T) {
	p := model.NewProject()
	root := model.NewNestedZone(model.DivisionHorizontal,
		model.NewZone(model.ContentEmpty), model.NewZone(model.ContentEmpty))
	root.Children[0].Depth = 42 // simulate a hand-edited file
	p.Interior = &model.InteriorConfig{RootZone: &root}

	path := filepath.Join(t.TempDir(), "project.json")
	if err := Save(path, p); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Interior.RootZone.Children[0].Depth != 1 {
		t.Errorf("depth = %d, want 1", loaded.Interior.RootZone.Children[0].Depth)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAppConfigRoundTrip(t *testing.T) {
	config := model.DefaultAppConfig()
	config.DefaultCabinetWidth = 800
	config.LastSlideType = "Undermount"

	path := filepath.Join(t.TempDir(), "config.json")
	if err := SaveAppConfig(path, config); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.DefaultCabinetWidth != 800 || loaded.LastSlideType != "Undermount" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLoadAppConfig_MissingFileGivesDefaults(t *testing.T) {
	loaded, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	want := model.DefaultAppConfig()
	if loaded.DefaultCabinetWidth != want.DefaultCabinetWidth || loaded.MaxZoneDepth != want.MaxZoneDepth {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.RecentProjects == nil {
		t.Error("recent projects must not be nil")
	}
}

func TestRememberRecentProject(t *testing.T) {
	config := model.DefaultAppConfig()

	RememberRecentProject(&config, "/a.json")
	RememberRecentProject(&config, "/b.json")
	RememberRecentProject(&config, "/a.json") // re-open moves to front

	if len(config.RecentProjects) != 2 {
		t.Fatalf("recent = %v", config.RecentProjects)
	}
	if config.RecentProjects[0] != "/a.json" || config.RecentProjects[1] != "/b.json" {
		t.Errorf("recent = %v", config.RecentProjects)
	}

	for i := 0; i < 15; i++ {
		RememberRecentProject(&config, filepath.Join("/p", string(rune('a'+i))))
	}
	if len(config.RecentProjects) != 10 {
		t.Errorf("recent list should cap at 10, got %d", len(config.RecentProjects))
	}
}

func TestTemplatesRoundTrip(t *testing.T) {
	store := model.NewTemplateStore()
	store.Add(model.NewCabinetTemplate("Tall unit", "2m larder", model.DefaultCabinet(), nil))

	path := filepath.Join(t.TempDir(), "templates.json")
	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Templates) != 1 || loaded.Templates[0].Name != "Tall unit" {
		t.Errorf("loaded = %+v", loaded.Templates)
	}
}

func TestLoadTemplates_MissingFileSeedsBuiltins(t *testing.T) {
	loaded, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing templates should not error: %v", err)
	}
	if len(loaded.Templates) != len(model.BuiltinTemplates()) {
		t.Errorf("expected built-in seed, got %d templates", len(loaded.Templates))
	}
}

func TestBackupRoundTrip(t *testing.T) {
	config := model.DefaultAppConfig()
	config.LastSlideType = "Roller"
	store := model.NewTemplateStore()
	store.Add(model.NewCabinetTemplate("Backup me", "", model.DefaultCabinet(), nil))

	path := filepath.Join(t.TempDir(), "backup", "all.json")
	if err := ExportAllData(path, config, store); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if backup.Version == "" || backup.CreatedAt == "" {
		t.Errorf("backup header incomplete: %+v", backup)
	}
	if backup.Config.LastSlideType != "Roller" {
		t.Errorf("config = %+v", backup.Config)
	}
	if len(backup.Templates.Templates) != 1 {
		t.Errorf("templates = %+v", backup.Templates)
	}
}

func TestImportAllData_RejectsUnversioned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Error("expected error for a file without a version field")
	}
}
