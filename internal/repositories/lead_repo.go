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

// LeadRepository wraps DB access for visitor inquiries.
type LeadRepository struct {
	DB *sql.DB
}

func (r LeadRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const leadColumns = `id, COALESCE(enquiry_for,''), name, email, subject, message, created_at, updated_at`

func scanLead(row interface{ Scan(...any) error }) (models.Lead, error) {
	var l models.Lead
	var createdAt, updatedAt sql.NullTime
	err := row.Scan(
		&l.ID,
		&l.EnquiryFor,
		&l.Name,
		&l.Email,
		&l.Subject,
		&l.Message,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Lead{}, err
	}
	if createdAt.Valid {
		l.CreatedAt = utils.FormatDateTime(createdAt.Time)
	}
	if updatedAt.Valid {
		l.UpdatedAt = utils.FormatDateTime(updatedAt.Time)
	}
	return l, nil
}

func (r LeadRepository) List() ([]models.Lead, error) {
	rows, err := r.db().Query(`SELECT ` + leadColumns + ` FROM leads ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r LeadRepository) GetByID(id int64) (models.Lead, error) {
	l, err := scanLead(r.db().QueryRow(`SELECT `+leadColumns+` FROM leads WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Lead{}, domain.NotFoundError{Resource: "lead"}
	}
	if err != nil {
		return models.Lead{}, domain.InternalError{Err: err}
	}
	return l, nil
}

func (r LeadRepository) Create(l models.Lead) (models.Lead, error) {
	res, err := r.db().Exec(`
		INSERT INTO leads (enquiry_for, name, email, subject, message)
		VALUES (?, ?, ?, ?, ?)`,
		intdb.NullIfEmpty(l.EnquiryFor), l.Name, l.Email, l.Subject, l.Message,
	)
	if err != nil {
		return models.Lead{}, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r LeadRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM leads WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "lead"}
	}
	return nil
}
