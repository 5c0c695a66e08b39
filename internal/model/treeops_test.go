package model

import "testing"

func sampleTree() Zone {
	left := NewZone(ContentShelves)
	left.Shelves = &ShelvesConfig{Distribution: ShelvesUniform, Count: 2, DepthPreset: DepthFull}
	mid := NewZone(ContentEmpty)
	right := NewZone(ContentDrawers)
	right.Drawers = &DrawerConfig{SlideType: "BallBearing", Zones: []DrawerZone{NewDrawerZone(1)}}

	root := NewNestedZone(DivisionVertical, left, mid, right)
	root.Partitions = []PartitionConfig{NewPartition(), NewPartition()}
	return root
}

func TestFindZoneByID(t *testing.T) {
	root := sampleTree()
	target := root.Children[1].ID

	z := FindZoneByID(&root, target)
	if z == nil {
		t.Fatal("expected to find zone")
	}
	if z.ID != target {
		t.Errorf("found wrong zone: %s", z.ID)
	}
	if FindZoneByID(&root, "nope") != nil {
		t.Error("expected nil for unknown ID")
	}
	if FindZoneByID(nil, target) != nil {
		t.Error("expected nil for nil root")
	}
}

func TestFindZonePath(t *testing.T) {
	root := sampleTree()
	target := root.Children[2].ID

	path := FindZonePath(&root, target)
	if len(path) != 2 {
		t.Fatalf("expected path of 2, got %v", path)
	}
	if path[0] != root.ID || path[1] != target {
		t.Errorf("wrong path: %v", path)
	}
	if FindZonePath(&root, "nope") != nil {
		t.Error("expected nil path for unknown ID")
	}
}

func TestAllZones_PreOrder(t *testing.T) {
	root := sampleTree()
	zones := AllZones(&root)
	if len(zones) != 4 {
		t.Fatalf("expected 4 zones, got %d", len(zones))
	}
	if zones[0].ID != root.ID {
		t.Error("root should come first")
	}
	for i, c := range root.Children {
		if zones[i+1].ID != c.ID {
			t.Errorf("child %d out of order", i)
		}
	}
}

func TestUpdateZoneByID_DoesNotMutateInput(t *testing.T) {
	root := sampleTree()
	target := root.Children[0].ID

	updated, ok := UpdateZoneByID(root, target, func(z Zone) Zone {
		z.Shelves.Count = 5
		return z
	})
	if !ok {
		t.Fatal("expected update to succeed")
	}
	if updated.Children[0].Shelves.Count != 5 {
		t.Error("update not applied")
	}
	if root.Children[0].Shelves.Count != 2 {
		t.Error("input tree was mutated")
	}
	if updated.Children[2].ID != root.Children[2].ID {
		t.Error("untouched sibling changed identity")
	}
}

func TestUpdateZoneByID_UnknownID(t *testing.T) {
	root := sampleTree()
	_, ok := UpdateZoneByID(root, "nope", func(z Zone) Zone { return z })
	if ok {
		t.Error("expected ok=false for unknown ID")
	}
}

func TestUpdateZoneByID_RenumbersDepths(t *testing.T) {
	root := sampleTree()
	target := root.Children[1].ID

	// Replace the empty middle zone with a nested subtree.
	updated, ok := UpdateZoneByID(root, target, func(z Zone) Zone {
		sub := NewNestedZone(DivisionHorizontal, NewZone(ContentEmpty), NewZone(ContentEmpty))
		sub.ID = z.ID
		return sub
	})
	if !ok {
		t.Fatal("expected update to succeed")
	}
	mid := updated.Children[1]
	if mid.Depth != 1 {
		t.Errorf("replacement depth = %d, want 1", mid.Depth)
	}
	for _, c := range mid.Children {
		if c.Depth != 2 {
			t.Errorf("grandchild depth = %d, want 2", c.Depth)
		}
	}
}

func TestDeleteZoneByID_TruncatesPartitions(t *testing.T) {
	root := sampleTree() // 3 children, 2 partitions
	target := root.Children[1].ID

	updated, ok := DeleteZoneByID(root, target)
	if !ok {
		t.Fatal("expected delete to succeed")
	}
	if len(updated.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(updated.Children))
	}
	if len(updated.Partitions) != 1 {
		t.Errorf("expected partitions truncated to 1, got %d", len(updated.Partitions))
	}
	// Input untouched.
	if len(root.Children) != 3 || len(root.Partitions) != 2 {
		t.Error("input tree was mutated")
	}
}

func TestDeleteZoneByID_RootUndeletable(t *testing.T) {
	root := sampleTree()
	_, ok := DeleteZoneByID(root, root.ID)
	if ok {
		t.Error("root must not be deletable")
	}
}

func TestDeleteZoneByID_LastChild(t *testing.T) {
	a := NewZone(ContentEmpty)
	root := NewNestedZone(DivisionVertical, a)
	root.Partitions = []PartitionConfig{NewPartition()}

	updated, ok := DeleteZoneByID(root, root.Children[0].ID)
	if !ok {
		t.Fatal("expected delete to succeed")
	}
	if len(updated.Children) != 0 {
		t.Errorf("expected no children, got %d", len(updated.Children))
	}
	if len(updated.Partitions) != 0 {
		t.Errorf("expected no partitions, got %d", len(updated.Partitions))
	}
}

func TestHasInteriorContent(t *testing.T) {
	if HasInteriorContent(nil) {
		t.Error("nil config has no content")
	}
	empty := NewZone(ContentEmpty)
	if HasInteriorContent(&InteriorConfig{RootZone: &empty}) {
		t.Error("empty zone has no content")
	}
	root := sampleTree()
	if !HasInteriorContent(&InteriorConfig{RootZone: &root}) {
		t.Error("tree with shelves and drawers has content")
	}

	zeroShelves := NewZone(ContentShelves)
	zeroShelves.Shelves = &ShelvesConfig{Distribution: ShelvesUniform, Count: 0}
	if HasInteriorContent(&InteriorConfig{RootZone: &zeroShelves}) {
		t.Error("zero-count shelves is no content")
	}
}

func TestInteriorSummary(t *testing.T) {
	if got := InteriorSummary(nil); got != "empty" {
		t.Errorf("nil summary = %q", got)
	}

	root := sampleTree()
	got := InteriorSummary(&InteriorConfig{RootZone: &root})
	want := "2 shelves, 1 drawer, 2 partitions"
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}

	single := NewZone(ContentShelves)
	single.Shelves = &ShelvesConfig{Distribution: ShelvesUniform, Count: 1}
	if got := InteriorSummary(&InteriorConfig{RootZone: &single}); got != "1 shelf" {
		t.Errorf("summary = %q, want %q", got, "1 shelf")
	}
}
