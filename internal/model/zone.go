package model

import "github.com/google/uuid"

// ContentType determines what a zone holds. Exactly one of the optional
// configs (Shelves, Drawers, Children) is meaningful for a given value.
type ContentType string

const (
	ContentEmpty   ContentType = "EMPTY"
	ContentShelves ContentType = "SHELVES"
	ContentDrawers ContentType = "DRAWERS"
	ContentNested  ContentType = "NESTED"
)

// DivisionDirection controls how a nested zone splits its children.
type DivisionDirection string

const (
	// DivisionHorizontal stacks children along Y, index 0 at the bottom.
	DivisionHorizontal DivisionDirection = "HORIZONTAL"
	// DivisionVertical places children along X, index 0 at the left.
	DivisionVertical DivisionDirection = "VERTICAL"
)

// SizeMode discriminates ratio-based from fixed-mm sizing.
type SizeMode string

const (
	SizeRatio SizeMode = "RATIO"
	SizeFixed SizeMode = "FIXED"
)

// SizeSpec describes one sibling's share of the parent span: either a
// relative weight or an exact millimeter value.
type SizeSpec struct {
	Mode  SizeMode `json:"mode"`
	Ratio float64  `json:"ratio,omitempty"`
	MM    float64  `json:"mm,omitempty"`
}

// RatioSize returns a ratio-based size spec.
func RatioSize(ratio float64) SizeSpec {
	return SizeSpec{Mode: SizeRatio, Ratio: ratio}
}

// FixedSize returns a fixed-mm size spec.
func FixedSize(mm float64) SizeSpec {
	return SizeSpec{Mode: SizeFixed, MM: mm}
}

// DepthPreset selects how deep a shelf or partition sits in the cabinet.
type DepthPreset string

const (
	DepthFull   DepthPreset = "FULL"   // cabinet depth minus front setback
	DepthHalf   DepthPreset = "HALF"   // half of FULL, rounded
	DepthCustom DepthPreset = "CUSTOM" // explicit mm, clamped
)

// ShelvesDistribution selects uniform or per-shelf configuration.
type ShelvesDistribution string

const (
	ShelvesUniform ShelvesDistribution = "UNIFORM"
	ShelvesManual  ShelvesDistribution = "MANUAL"
)

// ShelfOverride carries per-shelf settings in MANUAL distribution mode.
// Zero values fall back to the zone-level preset.
type ShelfOverride struct {
	DepthPreset DepthPreset `json:"depth_preset,omitempty"`
	CustomDepth float64     `json:"custom_depth,omitempty"`
	MaterialID  string      `json:"material_id,omitempty"`
}

// ShelvesConfig configures a SHELVES zone.
type ShelvesConfig struct {
	Distribution ShelvesDistribution `json:"distribution"`
	Count        int                 `json:"count"`
	DepthPreset  DepthPreset         `json:"depth_preset"`
	CustomDepth  float64             `json:"custom_depth,omitempty"`
	MaterialID   string              `json:"material_id,omitempty"`
	Overrides    []ShelfOverride     `json:"overrides,omitempty"`
}

// PartitionConfig describes the optional physical divider between two
// side-by-side siblings of a VERTICAL nested zone. Partitions[i] sits
// between Children[i] and Children[i+1].
type PartitionConfig struct {
	ID          string      `json:"id"`
	Enabled     bool        `json:"enabled"`
	DepthPreset DepthPreset `json:"depth_preset"`
	CustomDepth float64     `json:"custom_depth,omitempty"`
	MaterialID  string      `json:"material_id,omitempty"`
}

// NewPartition creates an enabled full-depth partition.
func NewPartition() PartitionConfig {
	return PartitionConfig{
		ID:          uuid.New().String()[:8],
		Enabled:     true,
		DepthPreset: DepthFull,
	}
}

// DrawerFront describes a visible drawer face. A nil front on a DrawerZone
// means the drawer is internal (box only, no face).
type DrawerFront struct {
	MaterialID string `json:"material_id,omitempty"`
}

// DrawerZoneBox is one stacked box within a drawer zone. Multiple boxes in
// one zone form a drawer-in-drawer arrangement; HeightRatio is the box's
// weight within the zone's box height.
type DrawerZoneBox struct {
	ID          string  `json:"id"`
	HeightRatio float64 `json:"height_ratio"`
}

// AboveBoxShelf is a shelf filling part of the void above a shortened
// drawer box (BoxToFrontRatio < 1).
type AboveBoxShelf struct {
	DepthPreset DepthPreset `json:"depth_preset"`
	CustomDepth float64     `json:"custom_depth,omitempty"`
}

// AboveBoxContent holds the shelves above a shortened drawer box.
type AboveBoxContent struct {
	Shelves []AboveBoxShelf `json:"shelves,omitempty"`
}

// DrawerZone is one vertical slot in a drawer stack.
type DrawerZone struct {
	ID          string          `json:"id"`
	HeightRatio float64         `json:"height_ratio"`
	Front       *DrawerFront    `json:"front,omitempty"`
	Boxes       []DrawerZoneBox `json:"boxes,omitempty"`
	// BoxToFrontRatio is the fraction (0..1] of the zone height occupied by
	// the box, measured from the bottom. Zero means 1.0 (full height).
	BoxToFrontRatio float64          `json:"box_to_front_ratio,omitempty"`
	AboveBox        *AboveBoxContent `json:"above_box,omitempty"`
}

// NewDrawerZone creates a drawer zone with a visible front and one box.
func NewDrawerZone(heightRatio float64) DrawerZone {
	return DrawerZone{
		ID:          uuid.New().String()[:8],
		HeightRatio: heightRatio,
		Front:       &DrawerFront{},
		Boxes:       []DrawerZoneBox{{ID: uuid.New().String()[:8], HeightRatio: 1}},
	}
}

// DrawerConfig configures a DRAWERS zone.
type DrawerConfig struct {
	SlideType        string       `json:"slide_type"`
	Zones            []DrawerZone `json:"zones"`
	BoxMaterialID    string       `json:"box_material_id,omitempty"`
	BottomMaterialID string       `json:"bottom_material_id,omitempty"`
}

// Zone is a node in the recursive cabinet-interior layout tree. Leaf zones
// hold content (shelves, drawers, or nothing); NESTED zones hold ordered
// children plus a division direction.
type Zone struct {
	ID          string      `json:"id"`
	ContentType ContentType `json:"content_type"`

	// Height is the sizing spec along the stacking axis of the parent's
	// HORIZONTAL division. Width applies only when the zone is a child of
	// a VERTICAL-division parent; nil means ratio 1.
	Height SizeSpec  `json:"height"`
	Width  *SizeSpec `json:"width,omitempty"`

	// Division and Children are meaningful only for NESTED zones.
	// Children index 0 is the bottom-most (HORIZONTAL) or left-most
	// (VERTICAL) child. Partitions apply only to VERTICAL divisions;
	// Partitions[i] sits between Children[i] and Children[i+1].
	Division   DivisionDirection `json:"division,omitempty"`
	Children   []Zone            `json:"children,omitempty"`
	Partitions []PartitionConfig `json:"partitions,omitempty"`

	Shelves *ShelvesConfig `json:"shelves,omitempty"`
	Drawers *DrawerConfig  `json:"drawers,omitempty"`

	// Depth is the nesting level, 0 at the root.
	Depth int `json:"depth"`
}

// NewZone creates a leaf zone of the given content type with ratio-1 height.
func NewZone(contentType ContentType) Zone {
	return Zone{
		ID:          uuid.New().String()[:8],
		ContentType: contentType,
		Height:      RatioSize(1),
	}
}

// NewNestedZone creates a NESTED zone dividing into the given children.
// Child depths are renumbered relative to this zone.
func NewNestedZone(direction DivisionDirection, children ...Zone) Zone {
	z := NewZone(ContentNested)
	z.Division = direction
	z.Children = children
	AssignDepths(&z, 0)
	return z
}

// AssignDepths renumbers the Depth field of the whole subtree so every
// child's depth is its parent's depth plus one.
func AssignDepths(z *Zone, depth int) {
	z.Depth = depth
	for i := range z.Children {
		AssignDepths(&z.Children[i], depth+1)
	}
}

// CloneWithFreshIDs returns a deep copy of the zone subtree with new IDs on
// every zone, partition, drawer zone, and box. Used when instantiating a
// template so the copy is independent of the original.
func CloneWithFreshIDs(z Zone) Zone {
	out := z
	out.ID = uuid.New().String()[:8]

	if z.Width != nil {
		w := *z.Width
		out.Width = &w
	}
	if z.Shelves != nil {
		s := *z.Shelves
		s.Overrides = append([]ShelfOverride(nil), z.Shelves.Overrides...)
		out.Shelves = &s
	}
	if z.Drawers != nil {
		d := *z.Drawers
		d.Zones = make([]DrawerZone, len(z.Drawers.Zones))
		for i, dz := range z.Drawers.Zones {
			cp := dz
			cp.ID = uuid.New().String()[:8]
			cp.Boxes = make([]DrawerZoneBox, len(dz.Boxes))
			for j, b := range dz.Boxes {
				cp.Boxes[j] = DrawerZoneBox{ID: uuid.New().String()[:8], HeightRatio: b.HeightRatio}
			}
			if dz.Front != nil {
				f := *dz.Front
				cp.Front = &f
			}
			if dz.AboveBox != nil {
				ab := AboveBoxContent{Shelves: append([]AboveBoxShelf(nil), dz.AboveBox.Shelves...)}
				cp.AboveBox = &ab
			}
			d.Zones[i] = cp
		}
		out.Drawers = &d
	}
	out.Partitions = make([]PartitionConfig, len(z.Partitions))
	for i, p := range z.Partitions {
		cp := p
		cp.ID = uuid.New().String()[:8]
		out.Partitions[i] = cp
	}
	out.Children = make([]Zone, len(z.Children))
	for i, c := range z.Children {
		out.Children[i] = CloneWithFreshIDs(c)
	}
	return out
}

// InteriorConfig is the root of a cabinet's interior layout.
type InteriorConfig struct {
	RootZone *Zone `json:"root_zone,omitempty"`
}
