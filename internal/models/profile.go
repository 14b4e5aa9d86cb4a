package models

// ProfileGroup is one vertical profile prepared for overlay comparison:
// a window of trajectory points sorted ascending by depth
type ProfileGroup struct {
	Index     int               `json:"index"` // chronological window order
	Points    []TrajectoryPoint `json:"points"`
	MinDepthM float64           `json:"minDepth"`
	MaxDepthM float64           `json:"maxDepth"`
}
