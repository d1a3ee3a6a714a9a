package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/utils"
)

// TestimonialRepository wraps DB access for testimonials.
type TestimonialRepository struct {
	DB *sql.DB
}

func (r TestimonialRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const testimonialColumns = `id, name, location, rating, feedback, created_at, updated_at`

func scanTestimonial(row interface{ Scan(...any) error }) (models.Testimonial, error) {
	var t models.Testimonial
	var createdAt, updatedAt sql.NullTime
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Location,
		&t.Rating,
		&t.Feedback,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Testimonial{}, err
	}
	if createdAt.Valid {
		t.CreatedAt = utils.FormatDateTime(createdAt.Time)
	}
	if updatedAt.Valid {
		t.UpdatedAt = utils.FormatDateTime(updatedAt.Time)
	}
	return t, nil
}

func (r TestimonialRepository) List() ([]models.Testimonial, error) {
	rows, err := r.db().Query(`SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TestimonialRepository) GetByID(id int64) (models.Testimonial, error) {
	t, err := scanTestimonial(r.db().QueryRow(`SELECT `+testimonialColumns+` FROM testimonials WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Testimonial{}, domain.NotFoundError{Resource: "testimonial"}
	}
	if err != nil {
		return models.Testimonial{}, domain.InternalError{Err: err}
	}
	return t, nil
}

func (r TestimonialRepository) Create(t models.Testimonial) (models.Testimonial, error) {
	res, err := r.db().Exec(`
		INSERT INTO testimonials (name, location, rating, feedback)
		VALUES (?, ?, ?, ?)`,
		t.Name, t.Location, t.Rating, t.Feedback,
	)
	if err != nil {
		return models.Testimonial{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r TestimonialRepository) Update(t models.Testimonial) (models.Testimonial, error) {
	if _, err := r.GetByID(t.ID); err != nil {
		return models.Testimonial{}, err
	}
	_, err := r.db().Exec(`
		UPDATE testimonials
		SET name=?, location=?, rating=?, feedback=?
		WHERE id=?`,
		t.Name, t.Location, t.Rating, t.Feedback, t.ID,
	)
	if err != nil {
		return models.Testimonial{}, domain.InternalError{Err: err}
	}
	return r.GetByID(t.ID)
}

func (r TestimonialRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM testimonials WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "testimonial"}
	}
	return nil
}
