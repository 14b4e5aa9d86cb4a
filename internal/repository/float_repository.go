package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/oceanview/argo-backend-go/internal/models"
)

// FloatRepository handles database operations for Argo floats
type FloatRepository struct {
	db *sql.DB
}

// NewFloatRepository creates a new float repository
func NewFloatRepository(db *sql.DB) *FloatRepository {
	return &FloatRepository{db: db}
}

const floatColumns = `id, name, status, battery_percent, position_accuracy_km, deployed_at, last_contact_at`

// ListFloats returns all floats ordered by deployment time
func (r *FloatRepository) ListFloats() ([]models.Float, error) {
	rows, err := r.db.Query(`SELECT ` + floatColumns + ` FROM argo_floats ORDER BY deployed_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query floats: %w", err)
	}
	defer rows.Close()

	var floats []models.Float
	for rows.Next() {
		f, err := scanFloat(rows)
		if err != nil {
			return nil, err
		}
		floats = append(floats, f)
	}
	return floats, rows.Err()
}

// GetFloatByID returns one float, or nil when it does not exist
func (r *FloatRepository) GetFloatByID(id int64) (*models.Float, error) {
	row := r.db.QueryRow(`SELECT `+floatColumns+` FROM argo_floats WHERE id = ?`, id)

	f, err := scanFloat(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// InsertFloat stores a new float and returns its assigned ID
func (r *FloatRepository) InsertFloat(f *models.Float) (int64, error) {
	var lastContact interface{}
	if f.LastContactAt != nil {
		lastContact = f.LastContactAt.Unix()
	}

	result, err := r.db.Exec(`
		INSERT INTO argo_floats (name, status, battery_percent, position_accuracy_km, deployed_at, last_contact_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		f.Name, f.Status, f.BatteryPercent, f.PositionAccKm, f.DeployedAt.Unix(), lastContact,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert float: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted float id: %w", err)
	}
	return id, nil
}

// UpdateLastContact records the most recent transmission time for a float
func (r *FloatRepository) UpdateLastContact(id int64, at time.Time) error {
	_, err := r.db.Exec(`UPDATE argo_floats SET last_contact_at = ? WHERE id = ?`, at.Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to update last contact: %w", err)
	}
	return nil
}

// CountFloats returns the number of stored floats
func (r *FloatRepository) CountFloats() (int64, error) {
	var count int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM argo_floats`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count floats: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFloat(row rowScanner) (models.Float, error) {
	var f models.Float
	var deployedAt int64
	var lastContact sql.NullInt64

	err := row.Scan(&f.ID, &f.Name, &f.Status, &f.BatteryPercent, &f.PositionAccKm, &deployedAt, &lastContact)
	if err == sql.ErrNoRows {
		return f, err
	}
	if err != nil {
		return f, fmt.Errorf("failed to scan float: %w", err)
	}

	f.DeployedAt = time.Unix(deployedAt, 0).UTC()
	if lastContact.Valid {
		t := time.Unix(lastContact.Int64, 0).UTC()
		f.LastContactAt = &t
	}
	return f, nil
}
