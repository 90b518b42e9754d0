package request

import (
	"cnc_quote/internal/domain/entities"
)

// PartCreateRequest registers geometry extracted from an uploaded CAD model.
type PartCreateRequest struct {
	CustomerID     string         `json:"customer_id"`
	Name           string         `json:"name" binding:"required"`
	VolumeMM3      float64        `json:"volume_mm3" binding:"required"`
	SurfaceAreaMM2 float64        `json:"surface_area_mm2" binding:"required"`
	BoundingBox    BoundingBoxDTO `json:"bounding_box" binding:"required"`
	Meta           map[string]any `json:"meta"`
}

type BoundingBoxDTO struct {
	XMM float64 `json:"x_mm" binding:"required"`
	YMM float64 `json:"y_mm" binding:"required"`
	ZMM float64 `json:"z_mm" binding:"required"`
}

func (r PartCreateRequest) ToEntity() entities.Part {
	return entities.Part{
		CustomerID:     r.CustomerID,
		Name:           r.Name,
		VolumeMM3:      r.VolumeMM3,
		SurfaceAreaMM2: r.SurfaceAreaMM2,
		BoundingBox: entities.BoundingBox{
			XMM: r.BoundingBox.XMM,
			YMM: r.BoundingBox.YMM,
			ZMM: r.BoundingBox.ZMM,
		},
		Meta: r.Meta,
	}
}
