package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

// GalleryRepository wraps DB access for gallery categories. Append and
// replace run inside a transaction with a row lock so concurrent submissions
// to the same category cannot drop images.
type GalleryRepository struct {
	DB *sql.DB
}

func (r GalleryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanGalleryItem(row interface{ Scan(...any) error }) (models.GalleryItem, error) {
	var g models.GalleryItem
	var images string
	if err := row.Scan(&g.ID, &g.Category, &images); err != nil {
		return models.GalleryItem{}, err
	}
	if err := intdb.DecodeJSON(images, &g.Images); err != nil {
		return models.GalleryItem{}, err
	}
	return g, nil
}

func (r GalleryRepository) List() ([]models.GalleryItem, error) {
	rows, err := r.db().Query(`SELECT id, category, images FROM gallery_items ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.GalleryItem{}
	for rows.Next() {
		g, err := scanGalleryItem(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r GalleryRepository) GetByID(id int64) (models.GalleryItem, error) {
	g, err := scanGalleryItem(r.db().QueryRow(`SELECT id, category, images FROM gallery_items WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.GalleryItem{}, domain.NotFoundError{Resource: "gallery item"}
	}
	if err != nil {
		return models.GalleryItem{}, domain.InternalError{Err: err}
	}
	return g, nil
}

func (r GalleryRepository) GetByCategory(category string) (models.GalleryItem, error) {
	g, err := scanGalleryItem(r.db().QueryRow(`SELECT id, category, images FROM gallery_items WHERE category=?`, category))
	if errors.Is(err, sql.ErrNoRows) {
		return models.GalleryItem{}, domain.NotFoundError{Resource: "gallery item"}
	}
	if err != nil {
		return models.GalleryItem{}, domain.InternalError{Err: err}
	}
	return g, nil
}

// AppendImages merges new images into the category, creating it when absent.
// Returns the stored item and whether the category already existed.
func (r GalleryRepository) AppendImages(category string, images []models.Image) (models.GalleryItem, bool, error) {
	return r.upsert(category, images, true)
}

// ReplaceImages overwrites the category's images wholesale, creating the
// category when absent. Returns the stored item and whether it existed.
func (r GalleryRepository) ReplaceImages(category string, images []models.Image) (models.GalleryItem, bool, error) {
	return r.upsert(category, images, false)
}

func (r GalleryRepository) upsert(category string, images []models.Image, appendMode bool) (models.GalleryItem, bool, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return models.GalleryItem{}, false, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	existing, err := scanGalleryItem(tx.QueryRow(
		`SELECT id, category, images FROM gallery_items WHERE category=? FOR UPDATE`, category))

	switch {
	case errors.Is(err, sql.ErrNoRows):
		encoded, err := intdb.EncodeJSON(images)
		if err != nil {
			return models.GalleryItem{}, false, domain.InternalError{Err: err}
		}
		res, err := tx.Exec(`INSERT INTO gallery_items (category, images) VALUES (?, ?)`, category, encoded)
		if intdb.IsDuplicateKey(err) {
			// Lost the create race; the caller can simply retry.
			return models.GalleryItem{}, false, domain.ConflictError{Msg: "Gallery category already exists.", Err: err}
		}
		if err != nil {
			return models.GalleryItem{}, false, domain.InternalError{Err: err}
		}
		if err := tx.Commit(); err != nil {
			return models.GalleryItem{}, false, domain.InternalError{Err: err}
		}
		id, _ := res.LastInsertId()
		return models.GalleryItem{ID: id, Category: category, Images: images}, false, nil

	case err != nil:
		return models.GalleryItem{}, false, domain.InternalError{Err: err}
	}

	next := images
	if appendMode {
		next = append(append([]models.Image{}, existing.Images...), images...)
	}
	encoded, err := intdb.EncodeJSON(next)
	if err != nil {
		return models.GalleryItem{}, false, domain.InternalError{Err: err}
	}
	if _, err := tx.Exec(`UPDATE gallery_items SET images=? WHERE id=?`, encoded, existing.ID); err != nil {
		return models.GalleryItem{}, false, domain.InternalError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return models.GalleryItem{}, false, domain.InternalError{Err: err}
	}
	existing.Images = next
	return existing, true, nil
}

func (r GalleryRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM gallery_items WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "gallery item"}
	}
	return nil
}
