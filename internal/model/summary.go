package model

import (
	"fmt"
	"strings"
)

// InteriorSummary returns a short human-readable description of the
// interior tree, e.g. "3 shelves, 2 drawers, 1 partition". Returns "empty"
// when nothing would generate parts.
func InteriorSummary(cfg *InteriorConfig) string {
	if cfg == nil || cfg.RootZone == nil {
		return "empty"
	}

	var shelves, drawers, partitions int
	for _, z := range AllZones(cfg.RootZone) {
		switch z.ContentType {
		case ContentShelves:
			if z.Shelves != nil {
				shelves += shelfCount(z.Shelves)
			}
		case ContentDrawers:
			if z.Drawers != nil {
				drawers += len(z.Drawers.Zones)
			}
		case ContentNested:
			for _, p := range z.Partitions {
				if p.Enabled {
					partitions++
				}
			}
		}
	}

	var parts []string
	if shelves > 0 {
		parts = append(parts, plural(shelves, "shelf", "shelves"))
	}
	if drawers > 0 {
		parts = append(parts, plural(drawers, "drawer", "drawers"))
	}
	if partitions > 0 {
		parts = append(parts, plural(partitions, "partition", "partitions"))
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}
