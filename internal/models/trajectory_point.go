package models

import "time"

// Float status labels as reported by the data source
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCurrent   = "current"
)

// TrajectoryPoint represents one observed float fix with optional sensor readings
type TrajectoryPoint struct {
	ID        int64     `json:"id" db:"id"`
	FloatID   int64     `json:"floatId" db:"float_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp" db:"dataTime"`

	// Sensor readings; nil means "not measured at this fix"
	Depth       *float64 `json:"depth,omitempty" db:"depth"`             // meters
	Temperature *float64 `json:"temperature,omitempty" db:"temperature"` // °C
	Salinity    *float64 `json:"salinity,omitempty" db:"salinity"`       // PSU

	// CycleNumber identifies the dive/ascent cycle, when the feed provides it
	CycleNumber *int    `json:"cycleNumber,omitempty" db:"cycle_number"`
	QCFlag      *string `json:"qcFlag,omitempty" db:"qc_flag"`

	// Display label, passed through unchanged
	Status string `json:"status" db:"status"`
}

// HasProfileData reports whether the point carries both readings a
// temperature-depth profile curve needs
func (p *TrajectoryPoint) HasProfileData() bool {
	return p.Depth != nil && p.Temperature != nil
}

// TrajectoryPointsResponse represents a paginated response of trajectory points
type TrajectoryPointsResponse struct {
	Data       []TrajectoryPoint `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// TrajectoryFilter represents filter parameters for querying trajectory points
type TrajectoryFilter struct {
	FloatID   int64 `form:"-"`
	StartTime int64 `form:"startTime"` // Unix timestamp
	EndTime   int64 `form:"endTime"`   // Unix timestamp
	Page      int   `form:"page"`
	PageSize  int   `form:"pageSize"`
}
