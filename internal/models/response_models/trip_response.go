package response_models

// GlobeMarker is the shape the 3D globe expects.
type GlobeMarker struct {
	TripID   string     `json:"trip_id"`
	Label    string     `json:"label"`
	Location [2]float64 `json:"location"`
	Size     float64    `json:"size"`
}
