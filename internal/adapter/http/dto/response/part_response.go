package response

import (
	"time"

	"cnc_quote/internal/domain/entities"
)

type PartResponse struct {
	ID             string               `json:"id"`
	CustomerID     string               `json:"customer_id,omitempty"`
	Name           string               `json:"name"`
	VolumeMM3      float64              `json:"volume_mm3"`
	SurfaceAreaMM2 float64              `json:"surface_area_mm2"`
	BoundingBox    entities.BoundingBox `json:"bounding_box"`
	Meta           map[string]any       `json:"meta,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		ID:             p.ID,
		CustomerID:     p.CustomerID,
		Name:           p.Name,
		VolumeMM3:      p.VolumeMM3,
		SurfaceAreaMM2: p.SurfaceAreaMM2,
		BoundingBox:    p.BoundingBox,
		Meta:           p.Meta,
		CreatedAt:      p.CreatedAt,
	}
}
