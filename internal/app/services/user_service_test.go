package services

import (
	"context"
	"errors"
	"testing"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/pkg/apperrors"
	"github.com/emre/eventra/internal/pkg/auth"
)

func seedUser(t *testing.T, repo *fakeUserRepo, username, email string, role models.UserRole) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword("Passw0rd123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	u := &models.User{
		Name:        "Test User",
		Username:    username,
		UserEmail:   email,
		Password:    hashed,
		PhoneNumber: "+90 555 000 0000",
		Role:        role,
		IsActive:    models.StatusActive,
	}
	id, err := repo.CreateUser(context.Background(), u)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	u.ID = id
	return u
}

func strPtr(s string) *string { return &s }

func TestUpdateUserMergePatch(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	u := seedUser(t, repo, "amy1", "amy@example.com", models.RoleVolunteer)

	updated, err := svc.UpdateUser(ctx, u.ID, &dto.UpdateUserRequest{
		Name: strPtr("Amy Pond"),
	})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	if updated.Name != "Amy Pond" {
		t.Errorf("Name = %q, want %q", updated.Name, "Amy Pond")
	}
	if updated.Username != "amy1" {
		t.Errorf("Username changed to %q, want untouched %q", updated.Username, "amy1")
	}
	if updated.UserEmail != "amy@example.com" {
		t.Errorf("UserEmail changed to %q, want untouched", updated.UserEmail)
	}

	stored, err := repo.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if stored.Name != "Amy Pond" {
		t.Errorf("stored Name = %q, patch not persisted", stored.Name)
	}
}

func TestUpdateUserEmptyPatchIsNoOp(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	u := seedUser(t, repo, "rory1", "rory@example.com", models.RoleVolunteer)
	before, _ := repo.GetUserByID(ctx, u.ID)

	got, err := svc.UpdateUser(ctx, u.ID, &dto.UpdateUserRequest{})
	if err != nil {
		t.Fatalf("UpdateUser with empty patch: %v", err)
	}

	if got.Name != before.Name || got.Username != before.Username || got.UserEmail != before.UserEmail {
		t.Errorf("empty patch changed the row: got %+v, want %+v", got, before)
	}

	after, _ := repo.GetUserByID(ctx, u.ID)
	if !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Error("empty patch touched the stored row")
	}
}

func TestUpdateUserRenameConflict(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	seedUser(t, repo, "taken", "taken@example.com", models.RoleVolunteer)
	u := seedUser(t, repo, "free", "free@example.com", models.RoleVolunteer)

	_, err := svc.UpdateUser(ctx, u.ID, &dto.UpdateUserRequest{
		Username: strPtr("taken"),
	})
	if !errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
		t.Fatalf("err = %v, want ErrUsernameAlreadyExists", err)
	}

	_, err = svc.UpdateUser(ctx, u.ID, &dto.UpdateUserRequest{
		UserEmail: strPtr("taken@example.com"),
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}

	// The failed renames must not have leaked into the store.
	stored, _ := repo.GetUserByID(ctx, u.ID)
	if stored.Username != "free" || stored.UserEmail != "free@example.com" {
		t.Errorf("conflicting patch persisted: %q / %q", stored.Username, stored.UserEmail)
	}
}

func TestUpdateUserInvalidRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	u := seedUser(t, repo, "clara1", "clara@example.com", models.RoleVolunteer)

	_, err := svc.UpdateUser(context.Background(), u.ID, &dto.UpdateUserRequest{
		Role: strPtr("Janitor"),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want a validation error", err)
	}
}

func TestUpdateUserPasswordIsHashed(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	u := seedUser(t, repo, "river1", "river@example.com", models.RoleSponsor)

	if _, err := svc.UpdateUser(ctx, u.ID, &dto.UpdateUserRequest{
		Password: strPtr("NewSecret99"),
	}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	stored, _ := repo.GetUserByID(ctx, u.ID)
	if stored.Password == "NewSecret99" {
		t.Fatal("password stored in plain text")
	}
	if !auth.CheckPassword(stored.Password, "NewSecret99") {
		t.Error("stored hash does not verify the new password")
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.UpdateUser(context.Background(), 42, &dto.UpdateUserRequest{Name: strPtr("x")})
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateUserStatus(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	u := seedUser(t, repo, "jack1", "jack@example.com", models.RoleVolunteer)

	got, err := svc.UpdateUserStatus(ctx, u.ID, "Inactive")
	if err != nil {
		t.Fatalf("UpdateUserStatus: %v", err)
	}
	if got.IsActive != models.StatusInactive {
		t.Errorf("IsActive = %q, want Inactive", got.IsActive)
	}

	stored, _ := repo.GetUserByID(ctx, u.ID)
	if stored.IsActive != models.StatusInactive {
		t.Errorf("stored IsActive = %q, want Inactive", stored.IsActive)
	}
}

func TestUpdateUserStatusIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	u := seedUser(t, repo, "jamie1", "jamie@example.com", models.RoleVolunteer)

	// Setting the current status again succeeds without an update.
	got, err := svc.UpdateUserStatus(context.Background(), u.ID, "Active")
	if err != nil {
		t.Fatalf("UpdateUserStatus with current status: %v", err)
	}
	if got.IsActive != models.StatusActive {
		t.Errorf("IsActive = %q, want Active", got.IsActive)
	}
}

func TestUpdateUserStatusRejectsUnknownValue(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	u := seedUser(t, repo, "zoe1", "zoe@example.com", models.RoleVolunteer)

	for _, status := range []string{"active", "Suspended", "", "INACTIVE"} {
		_, err := svc.UpdateUserStatus(context.Background(), u.ID, status)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("status %q: err = %v, want a validation error", status, err)
		}
	}
}

func TestListUsersSortWhitelist(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	seedUser(t, repo, "bravo", "bravo@example.com", models.RoleVolunteer)
	seedUser(t, repo, "alpha", "alpha@example.com", models.RoleVolunteer)

	users, err := svc.ListUsers(ctx, "username", "asc", "")
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 || users[0].Username != "alpha" {
		t.Errorf("unexpected order: got %v", []string{users[0].Username, users[1].Username})
	}

	// Defaults apply when no sort parameters are given.
	if _, err := svc.ListUsers(ctx, "", "", ""); err != nil {
		t.Errorf("ListUsers with defaults: %v", err)
	}

	// Anything outside the whitelist is refused, never interpolated.
	_, err = svc.ListUsers(ctx, "password; DROP TABLE users", "asc", "")
	if !errors.Is(err, apperrors.ErrInvalidSortKey) {
		t.Fatalf("err = %v, want ErrInvalidSortKey", err)
	}
}

func TestListUsersNameFilter(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	amy := seedUser(t, repo, "amy1", "amy@example.com", models.RoleVolunteer)
	rory := seedUser(t, repo, "rory1", "rory@example.com", models.RoleVolunteer)
	if _, err := svc.UpdateUser(ctx, amy.ID, &dto.UpdateUserRequest{Name: strPtr("Amy Pond")}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if _, err := svc.UpdateUser(ctx, rory.ID, &dto.UpdateUserRequest{Name: strPtr("Rory Williams")}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	// The match is a case-insensitive substring.
	users, err := svc.ListUsers(ctx, "", "", "amy")
	if err != nil {
		t.Fatalf("ListUsers with name filter: %v", err)
	}
	if len(users) != 1 || users[0].Username != "amy1" {
		t.Fatalf("filter %q returned %d users, want just amy1", "amy", len(users))
	}

	users, err = svc.ListUsers(ctx, "", "", "nobody")
	if err != nil {
		t.Fatalf("ListUsers with unmatched filter: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("filter %q returned %d users, want none", "nobody", len(users))
	}

	// An empty filter returns everyone.
	users, err = svc.ListUsers(ctx, "", "", "")
	if err != nil {
		t.Fatalf("ListUsers without filter: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("unfiltered list returned %d users, want 2", len(users))
	}
}

func TestGetUserByIDAttachesProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	u := seedUser(t, repo, "vol1", "vol1@example.com", models.RoleVolunteer)
	if _, err := repo.CreateVolunteer(ctx, &models.Volunteer{
		UserID: u.ID,
		Skills: strPtr("first aid"),
	}); err != nil {
		t.Fatalf("CreateVolunteer: %v", err)
	}

	got, err := svc.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.Volunteer == nil {
		t.Fatal("volunteer profile not attached")
	}
	if got.Volunteer.Skills == nil || *got.Volunteer.Skills != "first aid" {
		t.Errorf("unexpected profile: %+v", got.Volunteer)
	}

	// A user without a completed profile is still returned.
	bare := seedUser(t, repo, "vol2", "vol2@example.com", models.RoleVolunteer)
	got, err = svc.GetUserByID(ctx, bare.ID)
	if err != nil {
		t.Fatalf("GetUserByID without profile: %v", err)
	}
	if got.Volunteer != nil {
		t.Error("profile attached for a user without one")
	}
}

// brokenProfileRepo fails profile loads with a non-sentinel error
type brokenProfileRepo struct {
	*fakeUserRepo
	err error
}

func (r *brokenProfileRepo) GetVolunteerByUserID(ctx context.Context, userID int64) (*models.Volunteer, error) {
	return nil, r.err
}

func TestGetUserByIDPropagatesProfileLoadFailure(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "vol3", "vol3@example.com", models.RoleVolunteer)

	dbErr := errors.New("connection reset by peer")
	svc := NewUserService(&brokenProfileRepo{fakeUserRepo: repo, err: dbErr})

	_, err := svc.GetUserByID(context.Background(), u.ID)
	if !errors.Is(err, dbErr) {
		t.Fatalf("err = %v, want the underlying store failure", err)
	}
}
