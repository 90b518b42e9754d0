package entities

import "time"

// BoundingBox is the axis-aligned extent of a part in millimeters.
type BoundingBox struct {
	XMM float64 `json:"x_mm"`
	YMM float64 `json:"y_mm"`
	ZMM float64 `json:"z_mm"`
}

// Part holds the geometry extracted from an uploaded CAD model.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Geometry is produced by the external CAD-processing step and is immutable
// once stored. A part without positive volume and surface area cannot be
// priced. Meta carries free-form analysis output (mesh stats, feature hints)
// that the pricing engine never interprets.

type Part struct {
	ID             string         `json:"id"`
	CustomerID     string         `json:"customer_id,omitempty"`
	Name           string         `json:"name"`
	VolumeMM3      float64        `json:"volume_mm3"`
	SurfaceAreaMM2 float64        `json:"surface_area_mm2"`
	BoundingBox    BoundingBox    `json:"bounding_box"`
	Meta           map[string]any `json:"meta,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// HasGeometry reports whether the part carries usable geometry.
func (p Part) HasGeometry() bool {
	return p.VolumeMM3 > 0 && p.SurfaceAreaMM2 > 0
}
