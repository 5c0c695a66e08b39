package model

// Coordinate convention for generated geometry: X runs from the cabinet's
// left outer face to the right, Y from the bottom up, Z from the back face
// toward the front, all in mm. Part positions are the minimum corner of the
// part's bounding box in cabinet space.

// Bounds is a resolved rectangle in cabinet-interior-local coordinates plus
// the depth envelope available to content within it.
type Bounds struct {
	StartX  float64 `json:"start_x"`
	StartY  float64 `json:"start_y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	DepthMM float64 `json:"depth_mm"`
}

// PartRole tags a generated part for cut-list grouping.
type PartRole string

const (
	RoleShelf       PartRole = "SHELF"
	RoleDrawerFront PartRole = "DRAWER_FRONT"
	RoleDrawerBox   PartRole = "DRAWER_BOX"
	RoleDrawerSlide PartRole = "DRAWER_SLIDE"
	RolePartition   PartRole = "PARTITION"
	RoleSide        PartRole = "SIDE"
	RoleTop         PartRole = "TOP"
	RoleBottom      PartRole = "BOTTOM"
	RoleBack        PartRole = "BACK"
)

// Shape types for generated parts.
const (
	ShapeRect = "RECT" // flat rectangular panel
	ShapeBox  = "BOX"  // assembled unit (drawer slides), not a cut panel
)

// EdgeBanding marks which edges of a panel receive banding. Edges are named
// from the panel's orientation in the assembled cabinet.
type EdgeBanding struct {
	Front bool `json:"front,omitempty"`
	Back  bool `json:"back,omitempty"`
	Left  bool `json:"left,omitempty"`
	Right bool `json:"right,omitempty"`
}

// HasAny reports whether at least one edge is banded.
func (e EdgeBanding) HasAny() bool {
	return e.Front || e.Back || e.Left || e.Right
}

// EdgeCount returns the number of banded edges.
func (e EdgeBanding) EdgeCount() int {
	n := 0
	for _, b := range []bool{e.Front, e.Back, e.Left, e.Right} {
		if b {
			n++
		}
	}
	return n
}

// LinearLength returns the banding length in mm for a panel of the given
// face dimensions. Front/Back edges run along the width, Left/Right along
// the height.
func (e EdgeBanding) LinearLength(width, height float64) float64 {
	var total float64
	if e.Front {
		total += width
	}
	if e.Back {
		total += width
	}
	if e.Left {
		total += height
	}
	if e.Right {
		total += height
	}
	return total
}

func (e EdgeBanding) String() string {
	s := ""
	add := func(on bool, code string) {
		if !on {
			return
		}
		if s != "" {
			s += "+"
		}
		s += code
	}
	add(e.Front, "F")
	add(e.Back, "B")
	add(e.Left, "L")
	add(e.Right, "R")
	if s == "" {
		return "-"
	}
	return s
}

// CabinetMetadata ties a generated part back to its cabinet and role.
type CabinetMetadata struct {
	CabinetID string   `json:"cabinet_id"`
	Role      PartRole `json:"role"`
	Index     int      `json:"index"`
}

// GeneratedPart is the manufacturable output unit. Width and Height are the
// part's face dimensions, Depth is its thickness (for RECT panels) or its
// extent into the cabinet (for BOX units). Parts are pure output of
// generation: recomputed from the zone tree on every generate call, never
// mutated in place.
type GeneratedPart struct {
	Name        string          `json:"name"`
	ShapeType   string          `json:"shape_type"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	Depth       float64         `json:"depth"`
	Position    [3]float64      `json:"position"` // mm
	Rotation    [3]float64      `json:"rotation"` // radians
	MaterialID  string          `json:"material_id,omitempty"`
	EdgeBanding EdgeBanding     `json:"edge_banding,omitempty"`
	Metadata    CabinetMetadata `json:"cabinet_metadata"`
}
