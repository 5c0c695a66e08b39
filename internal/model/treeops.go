package model

// Tree operations are pure: they never mutate the input tree. Updates and
// deletes rebuild the path from the root to the target and share untouched
// sibling subtrees. Zone IDs are assumed unique across a tree; duplicate
// IDs are undefined behavior.

// FindZoneByID returns the first zone with the given ID in a depth-first,
// pre-order walk, or nil if absent.
func FindZoneByID(root *Zone, id string) *Zone {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return root
	}
	for i := range root.Children {
		if z := FindZoneByID(&root.Children[i], id); z != nil {
			return z
		}
	}
	return nil
}

// FindZonePath returns the ordered list of zone IDs from the root to the
// target inclusive, or nil if the target is absent.
func FindZonePath(root *Zone, id string) []string {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return []string{root.ID}
	}
	for i := range root.Children {
		if path := FindZonePath(&root.Children[i], id); path != nil {
			return append([]string{root.ID}, path...)
		}
	}
	return nil
}

// AllZones returns every zone of the tree in pre-order, children in index
// order.
func AllZones(root *Zone) []*Zone {
	if root == nil {
		return nil
	}
	zones := []*Zone{root}
	for i := range root.Children {
		zones = append(zones, AllZones(&root.Children[i])...)
	}
	return zones
}

// UpdateZoneByID returns a new tree with the target zone replaced by
// update(old). Every ancestor of the target is a fresh value; untouched
// siblings are shared. The second return is false when the ID was not
// found, in which case the input tree is returned unchanged.
func UpdateZoneByID(root Zone, id string, update func(Zone) Zone) (Zone, bool) {
	if root.ID == id {
		updated := update(root)
		AssignDepths(&updated, root.Depth)
		return updated, true
	}
	for i := range root.Children {
		child, ok := UpdateZoneByID(root.Children[i], id, update)
		if !ok {
			continue
		}
		out := root
		out.Children = make([]Zone, len(root.Children))
		copy(out.Children, root.Children)
		out.Children[i] = child
		return out, true
	}
	return root, false
}

// DeleteZoneByID returns a new tree with the target zone removed from its
// parent's children. When the parent is a VERTICAL nested zone, partitions
// are truncated to max(0, newChildCount-1) so no divider dangles past the
// last boundary. The root itself cannot be deleted. The second return is
// false when the ID was not found.
func DeleteZoneByID(root Zone, id string) (Zone, bool) {
	for i := range root.Children {
		if root.Children[i].ID == id {
			out := root
			out.Children = make([]Zone, 0, len(root.Children)-1)
			out.Children = append(out.Children, root.Children[:i]...)
			out.Children = append(out.Children, root.Children[i+1:]...)
			out.Partitions = truncatePartitions(root.Partitions, len(out.Children))
			return out, true
		}
	}
	for i := range root.Children {
		child, ok := DeleteZoneByID(root.Children[i], id)
		if !ok {
			continue
		}
		out := root
		out.Children = make([]Zone, len(root.Children))
		copy(out.Children, root.Children)
		out.Children[i] = child
		return out, true
	}
	return root, false
}

// truncatePartitions trims a partition list so it never exceeds
// childCount-1 entries.
func truncatePartitions(partitions []PartitionConfig, childCount int) []PartitionConfig {
	limit := childCount - 1
	if limit < 0 {
		limit = 0
	}
	if len(partitions) <= limit {
		return partitions
	}
	out := make([]PartitionConfig, limit)
	copy(out, partitions[:limit])
	return out
}

// HasInteriorContent reports whether the interior tree holds anything that
// would generate parts: at least one shelf, drawer zone, or enabled
// partition.
func HasInteriorContent(cfg *InteriorConfig) bool {
	if cfg == nil || cfg.RootZone == nil {
		return false
	}
	for _, z := range AllZones(cfg.RootZone) {
		switch z.ContentType {
		case ContentShelves:
			if z.Shelves != nil && shelfCount(z.Shelves) > 0 {
				return true
			}
		case ContentDrawers:
			if z.Drawers != nil && len(z.Drawers.Zones) > 0 {
				return true
			}
		case ContentNested:
			for _, p := range z.Partitions {
				if p.Enabled {
					return true
				}
			}
		}
	}
	return false
}

func shelfCount(cfg *ShelvesConfig) int {
	if cfg.Distribution == ShelvesManual && len(cfg.Overrides) > 0 {
		return len(cfg.Overrides)
	}
	return cfg.Count
}
