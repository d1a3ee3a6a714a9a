package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/utils"
)

// TripRepository wraps DB access for trips. Destination has a unique key;
// duplicate inserts surface as ConflictError.
type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `id, destination, trip_date, description, image_src, image_alt, duration, price, created_at, updated_at`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	var tripDate, createdAt, updatedAt sql.NullTime
	err := row.Scan(
		&t.ID,
		&t.Destination,
		&tripDate,
		&t.Description,
		&t.Image.Src,
		&t.Image.Alt,
		&t.Duration,
		&t.Price,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Trip{}, err
	}
	if tripDate.Valid {
		t.Date = utils.FormatDate(tripDate.Time)
	}
	if createdAt.Valid {
		t.CreatedAt = utils.FormatDateTime(createdAt.Time)
	}
	if updatedAt.Valid {
		t.UpdatedAt = utils.FormatDateTime(updatedAt.Time)
	}
	return t, nil
}

func (r TripRepository) List() ([]models.Trip, error) {
	rows, err := r.db().Query(`SELECT ` + tripColumns + ` FROM trips ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	t, err := scanTrip(r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	return t, nil
}

func (r TripRepository) Create(t models.Trip) (models.Trip, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (destination, trip_date, description, image_src, image_alt, duration, price)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Destination, t.Date, t.Description, t.Image.Src, t.Image.Alt, t.Duration, t.Price,
	)
	if intdb.IsDuplicateKey(err) {
		return models.Trip{}, domain.ConflictError{Msg: "Trip with this destination already exists.", Err: err}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r TripRepository) Update(t models.Trip) (models.Trip, error) {
	if _, err := r.GetByID(t.ID); err != nil {
		return models.Trip{}, err
	}
	_, err := r.db().Exec(`
		UPDATE trips
		SET destination=?, trip_date=?, description=?, image_src=?, image_alt=?, duration=?, price=?
		WHERE id=?`,
		t.Destination, t.Date, t.Description, t.Image.Src, t.Image.Alt, t.Duration, t.Price, t.ID,
	)
	if intdb.IsDuplicateKey(err) {
		return models.Trip{}, domain.ConflictError{Msg: "Trip with this destination already exists.", Err: err}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	return r.GetByID(t.ID)
}

func (r TripRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}
