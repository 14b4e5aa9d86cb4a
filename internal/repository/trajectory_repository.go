package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/oceanview/argo-backend-go/internal/models"
)

// TrajectoryRepository handles database operations for trajectory points
type TrajectoryRepository struct {
	db *sql.DB
}

// NewTrajectoryRepository creates a new trajectory repository
func NewTrajectoryRepository(db *sql.DB) *TrajectoryRepository {
	return &TrajectoryRepository{db: db}
}

const pointColumns = `id, float_id, latitude, longitude, dataTime, depth, temperature, salinity, cycle_number, qc_flag, status`

// GetTrajectoryPoints retrieves trajectory points with filtering and pagination
func (r *TrajectoryRepository) GetTrajectoryPoints(filter models.TrajectoryFilter) ([]models.TrajectoryPoint, int64, error) {
	conditions := []string{"float_id = ?"}
	args := []interface{}{filter.FloatID}

	if filter.StartTime > 0 {
		conditions = append(conditions, "dataTime >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "dataTime <= ?")
		args = append(args, filter.EndTime)
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	// Get total count
	var total int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM trajectory_points"+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count trajectory points: %w", err)
	}

	// Add pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	offset := (filter.Page - 1) * filter.PageSize

	query := "SELECT " + pointColumns + " FROM trajectory_points" + where + " ORDER BY dataTime, id LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query trajectory points: %w", err)
	}
	defer rows.Close()

	points, err := scanPoints(rows)
	if err != nil {
		return nil, 0, err
	}
	return points, total, nil
}

// GetFullTrajectory returns a float's complete trajectory in time order,
// as consumed by the drift and profile derivations
func (r *TrajectoryRepository) GetFullTrajectory(floatID int64) ([]models.TrajectoryPoint, error) {
	rows, err := r.db.Query(
		"SELECT "+pointColumns+" FROM trajectory_points WHERE float_id = ? ORDER BY dataTime, id",
		floatID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query trajectory: %w", err)
	}
	defer rows.Close()

	return scanPoints(rows)
}

// GetTrajectoryPointByID retrieves a single trajectory point by ID
func (r *TrajectoryRepository) GetTrajectoryPointByID(id int64) (*models.TrajectoryPoint, error) {
	rows, err := r.db.Query("SELECT "+pointColumns+" FROM trajectory_points WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query trajectory point: %w", err)
	}
	defer rows.Close()

	points, err := scanPoints(rows)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, nil
	}
	return &points[0], nil
}

// InsertPoints stores a batch of trajectory points inside one transaction
func (r *TrajectoryRepository) InsertPoints(points []models.TrajectoryPoint) error {
	if len(points) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO trajectory_points (float_id, latitude, longitude, dataTime, depth, temperature, salinity, cycle_number, qc_flag, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		_, err := stmt.Exec(
			p.FloatID, p.Latitude, p.Longitude, p.Timestamp.Unix(),
			nullFloat(p.Depth), nullFloat(p.Temperature), nullFloat(p.Salinity),
			nullInt(p.CycleNumber), nullString(p.QCFlag), p.Status,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert trajectory point: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trajectory insert: %w", err)
	}
	return nil
}

func scanPoints(rows *sql.Rows) ([]models.TrajectoryPoint, error) {
	var points []models.TrajectoryPoint
	for rows.Next() {
		var p models.TrajectoryPoint
		var dataTime int64
		var depth, temperature, salinity sql.NullFloat64
		var cycleNumber sql.NullInt64
		var qcFlag sql.NullString

		err := rows.Scan(&p.ID, &p.FloatID, &p.Latitude, &p.Longitude, &dataTime,
			&depth, &temperature, &salinity, &cycleNumber, &qcFlag, &p.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trajectory point: %w", err)
		}

		p.Timestamp = time.Unix(dataTime, 0).UTC()
		if depth.Valid {
			p.Depth = &depth.Float64
		}
		if temperature.Valid {
			p.Temperature = &temperature.Float64
		}
		if salinity.Valid {
			p.Salinity = &salinity.Float64
		}
		if cycleNumber.Valid {
			n := int(cycleNumber.Int64)
			p.CycleNumber = &n
		}
		if qcFlag.Valid {
			p.QCFlag = &qcFlag.String
		}

		points = append(points, p)
	}
	return points, rows.Err()
}

func nullFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullString(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
