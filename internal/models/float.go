package models

import "time"

// Float represents one Argo float and its latest reported health
type Float struct {
	ID              int64      `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"` // e.g. "WMO 2902746"
	Status          string     `json:"status" db:"status"`
	BatteryPercent  float64    `json:"batteryPercent" db:"battery_percent"`
	PositionAccKm   float64    `json:"positionAccuracyKm" db:"position_accuracy_km"`
	DeployedAt      time.Time  `json:"deployedAt" db:"deployed_at"`
	LastContactAt   *time.Time `json:"lastContactAt,omitempty" db:"last_contact_at"`
	CreatedAt       *time.Time `json:"createdAt,omitempty" db:"created_at"`
}

// FloatSummary aggregates a float's trajectory for the dashboard header cards
type FloatSummary struct {
	FloatID        int64   `json:"floatId"`
	PointCount     int     `json:"pointCount"`
	PathLengthKm   float64 `json:"pathLengthKm"`   // cumulative distance traveled
	DisplacementKm float64 `json:"displacementKm"` // straight line, start to latest fix
	MeanSpeedKmh   float64 `json:"meanSpeedKmh"`
	MaxSpeedKmh    float64 `json:"maxSpeedKmh"`

	TemperatureC ReadingStats `json:"temperature"`
	SalinityPSU  ReadingStats `json:"salinity"`
	DepthM       ReadingStats `json:"depth"`
}

// ReadingStats summarizes one sensor channel over a trajectory
type ReadingStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"stdDev"`
	P50    float64 `json:"p50"`
}
