package repositories

import (
	"testing"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func userRows(id int64, email, hash, role string) *sqlmock.Rows {
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	return sqlmock.NewRows([]string{
		"id", "name", "email", "password_hash", "role", "created_at", "updated_at",
	}).AddRow(id, "Admin", email, hash, role, now, now)
}

func TestUserGetByEmail_LowercasedLookup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WithArgs("admin@example.com").
		WillReturnRows(userRows(1, "admin@example.com", "hash", "admin"))

	repo := UserRepository{DB: db}
	u, err := repo.GetByEmail("admin@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if u.ID != 1 || u.Role != "admin" {
		t.Fatalf("unexpected account: %+v", u)
	}
}

func TestUserGetByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "password_hash", "role", "created_at", "updated_at",
		}))

	repo := UserRepository{DB: db}
	_, err = repo.GetByEmail("ghost@example.com")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	repo := UserRepository{DB: db}
	_, err = repo.Create(models.User{Name: "Admin", Email: "admin@example.com", PasswordHash: "x", Role: "user"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}
