package engine

import (
	"fmt"
	"math"

	"github.com/woodbyte/cabinetry/internal/model"
)

// GeneratePartition emits the single vertical divider panel for one
// resolved partition bounds. The panel's face is depth-into-cabinet by
// zone height; its thickness is the body thickness captured in the bounds
// width.
func GeneratePartition(pb PartitionBounds, index int, cab model.CabinetParams) model.GeneratedPart {
	materialID := pb.Partition.MaterialID
	if materialID == "" {
		materialID = cab.BodyMaterialID
	}

	ox, oy := cab.InteriorOrigin()

	return model.GeneratedPart{
		Name:      fmt.Sprintf("Partition %d", index+1),
		ShapeType: model.ShapeRect,
		Width:     pb.Bounds.DepthMM,
		Height:    pb.Bounds.Height,
		Depth:     pb.Bounds.Width,
		// Centered in the depth envelope, same as shallow shelves.
		Position:    [3]float64{ox + pb.Bounds.StartX, oy + pb.Bounds.StartY, (cab.Depth - pb.Bounds.DepthMM) / 2},
		Rotation:    [3]float64{0, math.Pi / 2, 0},
		MaterialID:  materialID,
		EdgeBanding: model.EdgeBanding{Front: true},
		Metadata: model.CabinetMetadata{
			CabinetID: cab.ID,
			Role:      model.RolePartition,
			Index:     index,
		},
	}
}
