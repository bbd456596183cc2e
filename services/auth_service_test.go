package services

import (
	"errors"
	"testing"

	"github.com/enrollify/enrollment-api/models"
	"github.com/google/uuid"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := setupTestDB(t)
	return NewAuthService(db, NewAuditService(db))
}

func TestCreateUser_HashesPassword(t *testing.T) {
	auth := newAuthService(t)

	user, err := auth.CreateUser("staff@school.edu", "s3cret-pass", models.RoleStaff, "Ana Cruz")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.PasswordHash == "s3cret-pass" || user.PasswordHash == "" {
		t.Errorf("password stored in the clear or empty")
	}
	if user.Role != models.RoleStaff || user.FullName != "Ana Cruz" {
		t.Errorf("user = %+v", user)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	auth := newAuthService(t)

	if _, err := auth.CreateUser("staff@school.edu", "pass-one", models.RoleStaff, "Ana Cruz"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	_, err := auth.CreateUser("staff@school.edu", "pass-two", models.RoleAdmin, "Someone Else")
	if !errors.Is(err, models.ErrDuplicateKey) {
		t.Errorf("duplicate email error = %v, want ErrDuplicateKey", err)
	}
}

func TestCreateUser_InvalidRole(t *testing.T) {
	auth := newAuthService(t)

	if _, err := auth.CreateUser("x@school.edu", "pass", "superuser", "X"); !errors.Is(err, models.ErrInvalidStatus) {
		t.Errorf("invalid role error = %v, want ErrInvalidStatus", err)
	}
}

func TestAuthenticate(t *testing.T) {
	auth := newAuthService(t)

	if _, err := auth.CreateUser("staff@school.edu", "s3cret-pass", models.RoleStaff, "Ana Cruz"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	user, err := auth.Authenticate("staff@school.edu", "s3cret-pass")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.LastLogin == nil {
		t.Errorf("last_login not stamped on successful login")
	}

	if _, err := auth.Authenticate("staff@school.edu", "wrong-pass"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := auth.Authenticate("nobody@school.edu", "s3cret-pass"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticate_DisabledAccount(t *testing.T) {
	auth := newAuthService(t)

	user, err := auth.CreateUser("staff@school.edu", "s3cret-pass", models.RoleStaff, "Ana Cruz")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := auth.SetActive(user.ID, false); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}

	if _, err := auth.Authenticate("staff@school.edu", "s3cret-pass"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("disabled account error = %v, want ErrInvalidCredentials", err)
	}
}

func TestSetActive_UnknownUser(t *testing.T) {
	auth := newAuthService(t)

	if err := auth.SetActive(uuid.New(), false); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("SetActive(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestListStaff_ActiveStaffOrderedByName(t *testing.T) {
	auth := newAuthService(t)

	users := []struct {
		email, name string
		role        models.Role
	}{
		{"carla@school.edu", "Carla Díaz", models.RoleStaff},
		{"ana@school.edu", "Ana Cruz", models.RoleStaff},
		{"admin@school.edu", "Admin User", models.RoleAdmin},
		{"ben@school.edu", "Ben Ocampo", models.RoleStaff},
	}
	for _, u := range users {
		if _, err := auth.CreateUser(u.email, "pass", u.role, u.name); err != nil {
			t.Fatalf("CreateUser(%s) failed: %v", u.email, err)
		}
	}
	ben, err := auth.Authenticate("ben@school.edu", "pass")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if err := auth.SetActive(ben.ID, false); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}

	staff, err := auth.ListStaff()
	if err != nil {
		t.Fatalf("ListStaff failed: %v", err)
	}
	if len(staff) != 2 {
		t.Fatalf("ListStaff returned %d users, want 2", len(staff))
	}
	if staff[0].FullName != "Ana Cruz" || staff[1].FullName != "Carla Díaz" {
		t.Errorf("ListStaff order = %s, %s", staff[0].FullName, staff[1].FullName)
	}
}
