package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/utils"
)

// DestinationRepository wraps DB access for destinations.
type DestinationRepository struct {
	DB *sql.DB
}

func (r DestinationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const destinationColumns = `id, name, description, significance, image, city, created_at, updated_at`

func scanDestination(row interface{ Scan(...any) error }) (models.Destination, error) {
	var d models.Destination
	var createdAt, updatedAt sql.NullTime
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&d.Significance,
		&d.Image,
		&d.City,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Destination{}, err
	}
	if createdAt.Valid {
		d.CreatedAt = utils.FormatDateTime(createdAt.Time)
	}
	if updatedAt.Valid {
		d.UpdatedAt = utils.FormatDateTime(updatedAt.Time)
	}
	return d, nil
}

func (r DestinationRepository) List() ([]models.Destination, error) {
	rows, err := r.db().Query(`SELECT ` + destinationColumns + ` FROM destinations ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DestinationRepository) GetByID(id int64) (models.Destination, error) {
	d, err := scanDestination(r.db().QueryRow(`SELECT `+destinationColumns+` FROM destinations WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Destination{}, domain.NotFoundError{Resource: "destination"}
	}
	if err != nil {
		return models.Destination{}, domain.InternalError{Err: err}
	}
	return d, nil
}

func (r DestinationRepository) Create(d models.Destination) (models.Destination, error) {
	res, err := r.db().Exec(`
		INSERT INTO destinations (name, description, significance, image, city)
		VALUES (?, ?, ?, ?, ?)`,
		d.Name, d.Description, d.Significance, d.Image, d.City,
	)
	if err != nil {
		return models.Destination{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r DestinationRepository) Update(d models.Destination) (models.Destination, error) {
	if _, err := r.GetByID(d.ID); err != nil {
		return models.Destination{}, err
	}
	_, err := r.db().Exec(`
		UPDATE destinations
		SET name=?, description=?, significance=?, image=?, city=?
		WHERE id=?`,
		d.Name, d.Description, d.Significance, d.Image, d.City, d.ID,
	)
	if err != nil {
		return models.Destination{}, domain.InternalError{Err: err}
	}
	return r.GetByID(d.ID)
}

func (r DestinationRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM destinations WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "destination"}
	}
	return nil
}
