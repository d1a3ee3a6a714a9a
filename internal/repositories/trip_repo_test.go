package repositories

import (
	"testing"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func tripRows(id int64, destination string) *sqlmock.Rows {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	return sqlmock.NewRows([]string{
		"id", "destination", "trip_date", "description", "image_src", "image_alt",
		"duration", "price", "created_at", "updated_at",
	}).AddRow(id, destination, now, "desc", "http://x/y.jpg", "a", "7 days", "1500.00", now, now)
}

func TestTripCreate_DuplicateDestination(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO trips").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	repo := TripRepository{DB: db}
	_, err = repo.Create(models.Trip{Destination: "Madinah Explorer", Date: "2026-03-01"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripCreate_RoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO trips").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT .+ FROM trips WHERE id").
		WillReturnRows(tripRows(7, "Madinah Explorer"))

	repo := TripRepository{DB: db}
	created, err := repo.Create(models.Trip{
		Destination: "Madinah Explorer",
		Date:        "2026-03-01",
		Description: "desc",
		Image:       models.Image{Src: "http://x/y.jpg", Alt: "a"},
		Duration:    "7 days",
		Price:       "1500.00",
	})
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected generated id 7, got %d", created.ID)
	}
	if created.Destination != "Madinah Explorer" || created.Date != "2026-03-01" {
		t.Fatalf("round-trip mismatch: %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripUpdate_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// The existence check comes back empty; the update must never reach the DB.
	mock.ExpectQuery("SELECT .+ FROM trips WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "destination", "trip_date", "description", "image_src", "image_alt",
			"duration", "price", "created_at", "updated_at",
		}))

	repo := TripRepository{DB: db}
	_, err = repo.Update(models.Trip{ID: 99, Destination: "Nowhere"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM trips WHERE id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TripRepository{DB: db}
	if err := repo.Delete(123); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripGetByID_Idempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM trips WHERE id").WillReturnRows(tripRows(3, "Mecca Classic"))
	mock.ExpectQuery("SELECT .+ FROM trips WHERE id").WillReturnRows(tripRows(3, "Mecca Classic"))

	repo := TripRepository{DB: db}
	first, err := repo.GetByID(3)
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	second, err := repo.GetByID(3)
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if first != second {
		t.Fatalf("reads differ: %+v vs %+v", first, second)
	}
}
