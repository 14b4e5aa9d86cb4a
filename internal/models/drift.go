package models

import "time"

// DriftRecord is one derived drift sample, produced per trajectory point
// after the first
type DriftRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	SpeedKmh       float64   `json:"speed"`     // clamped, see drift.MaxSpeedKmh
	DirectionDeg   float64   `json:"direction"` // initial bearing, [0, 360)
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceKm     float64   `json:"distance"`     // cumulative path length from the first fix
	DisplacementKm float64   `json:"displacement"` // straight line from the first fix
}
