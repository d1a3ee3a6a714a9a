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

// ServiceRepository wraps DB access for services. Features are stored in a
// JSON column.
type ServiceRepository struct {
	DB *sql.DB
}

func (r ServiceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const serviceColumns = `id, title, description, features, icon, color, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (models.Service, error) {
	var s models.Service
	var features string
	var createdAt, updatedAt sql.NullTime
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		&features,
		&s.Icon,
		&s.Color,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Service{}, err
	}
	if err := intdb.DecodeJSON(features, &s.Features); err != nil {
		return models.Service{}, err
	}
	if createdAt.Valid {
		s.CreatedAt = utils.FormatDateTime(createdAt.Time)
	}
	if updatedAt.Valid {
		s.UpdatedAt = utils.FormatDateTime(updatedAt.Time)
	}
	return s, nil
}

func (r ServiceRepository) List() ([]models.Service, error) {
	rows, err := r.db().Query(`SELECT ` + serviceColumns + ` FROM services ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r ServiceRepository) GetByID(id int64) (models.Service, error) {
	s, err := scanService(r.db().QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Service{}, domain.NotFoundError{Resource: "service"}
	}
	if err != nil {
		return models.Service{}, domain.InternalError{Err: err}
	}
	return s, nil
}

func (r ServiceRepository) Create(s models.Service) (models.Service, error) {
	features, err := intdb.EncodeJSON(s.Features)
	if err != nil {
		return models.Service{}, domain.InternalError{Err: err}
	}
	res, err := r.db().Exec(`
		INSERT INTO services (title, description, features, icon, color)
		VALUES (?, ?, ?, ?, ?)`,
		s.Title, s.Description, features, s.Icon, s.Color,
	)
	if err != nil {
		return models.Service{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r ServiceRepository) Update(s models.Service) (models.Service, error) {
	if _, err := r.GetByID(s.ID); err != nil {
		return models.Service{}, err
	}
	features, err := intdb.EncodeJSON(s.Features)
	if err != nil {
		return models.Service{}, domain.InternalError{Err: err}
	}
	_, err = r.db().Exec(`
		UPDATE services
		SET title=?, description=?, features=?, icon=?, color=?
		WHERE id=?`,
		s.Title, s.Description, features, s.Icon, s.Color, s.ID,
	)
	if err != nil {
		return models.Service{}, domain.InternalError{Err: err}
	}
	return r.GetByID(s.ID)
}

func (r ServiceRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM services WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "service"}
	}
	return nil
}
