package services

import (
	"testing"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-secret")

func userRow(t *testing.T, mock sqlmock.Sqlmock, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "password_hash", "role", "created_at", "updated_at",
		}).AddRow(1, "Admin", "admin@example.com", string(hash), role, now, now))
}

func TestLogin_UnknownEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users WHERE email").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "password_hash", "role", "created_at", "updated_at",
		}))

	svc := AuthService{Users: repositories.UserRepository{DB: db}, Secret: testSecret}
	_, _, err = svc.Login("ghost@example.com", "whatever")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if err.Error() != "This email doesn't exist." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	userRow(t, mock, "correct-horse", domain.RoleAdmin)

	svc := AuthService{Users: repositories.UserRepository{DB: db}, Secret: testSecret}
	_, _, err = svc.Login("admin@example.com", "wrong-horse")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLogin_TokenCarriesRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	userRow(t, mock, "correct-horse", domain.RoleAdmin)

	svc := AuthService{Users: repositories.UserRepository{DB: db}, Secret: testSecret}
	user, token, err := svc.Login("admin@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %q", user.Role)
	}

	sess, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("token should parse: %v", err)
	}
	if sess.UserID != 1 || sess.Role != domain.RoleAdmin {
		t.Fatalf("claims mismatch: %+v", sess)
	}
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	svc := AuthService{Secret: testSecret}
	token, err := svc.MintToken(models.User{ID: 1, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if _, err := ParseToken(token, []byte("other-secret")); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for wrong secret, got %v", err)
	}
}

func TestRegister_ForcesUserRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.Local)
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT .+ FROM users WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "password_hash", "role", "created_at", "updated_at",
		}).AddRow(5, "Hamzah", "hamzah@example.com", "hash", domain.RoleUser, now, now))

	svc := AuthService{Users: repositories.UserRepository{DB: db}}
	created, err := svc.Register(models.User{Name: "Hamzah", Email: "hamzah@example.com", Role: domain.RoleAdmin}, "pass1234")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.Role != domain.RoleUser {
		t.Fatalf("self-registration must not grant admin, got %q", created.Role)
	}
}

func TestRegister_MissingPassword(t *testing.T) {
	svc := AuthService{}
	_, err := svc.Register(models.User{Name: "Hamzah", Email: "hamzah@example.com"}, "")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
