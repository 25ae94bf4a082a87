package services

import (
	"context"
	"errors"
	"testing"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/pkg/apperrors"
)

func TestVolunteerProfileLifecycle(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewVolunteerService(repo)
	ctx := context.Background()

	u := seedUser(t, repo, "helper1", "helper1@example.com", models.RoleVolunteer)

	created, err := svc.CreateProfile(ctx, u.ID, &dto.CreateVolunteerRequest{
		Skills: strPtr("logistics"),
	})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if created.ID == 0 {
		t.Error("profile was not assigned an ID")
	}

	// A second profile for the same user hits the uniqueness constraint.
	_, err = svc.CreateProfile(ctx, u.ID, &dto.CreateVolunteerRequest{})
	if !errors.Is(err, apperrors.ErrProfileAlreadyExists) {
		t.Fatalf("second CreateProfile: err = %v, want ErrProfileAlreadyExists", err)
	}

	updated, err := svc.UpdateProfile(ctx, u.ID, &dto.UpdateVolunteerRequest{
		Experience: strPtr("3 seasons"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Experience == nil || *updated.Experience != "3 seasons" {
		t.Errorf("Experience not patched: %+v", updated)
	}
	if updated.Skills == nil || *updated.Skills != "logistics" {
		t.Errorf("Skills changed by unrelated patch: %+v", updated)
	}

	if err := svc.DeleteProfile(ctx, u.ID); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	if _, err := svc.GetProfileByUserID(ctx, u.ID); !errors.Is(err, apperrors.ErrVolunteerNotFound) {
		t.Fatalf("after delete: err = %v, want ErrVolunteerNotFound", err)
	}
}

func TestVolunteerProfileRoleMismatch(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewVolunteerService(repo)

	u := seedUser(t, repo, "sponsor1", "sponsor1@example.com", models.RoleSponsor)

	_, err := svc.CreateProfile(context.Background(), u.ID, &dto.CreateVolunteerRequest{})
	if !errors.Is(err, apperrors.ErrRoleMismatch) {
		t.Fatalf("err = %v, want ErrRoleMismatch", err)
	}
}

func TestEventManagerProfileRoleMismatch(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewEventManagerService(repo, nil)

	u := seedUser(t, repo, "vol9", "vol9@example.com", models.RoleVolunteer)

	_, err := svc.CreateProfile(context.Background(), u.ID, &dto.CreateEventManagerRequest{
		Position:     "Coordinator",
		Organization: "City Events Co.",
	})
	if !errors.Is(err, apperrors.ErrRoleMismatch) {
		t.Fatalf("err = %v, want ErrRoleMismatch", err)
	}
}

func TestSponsorProfileDates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewSponsorService(repo)
	ctx := context.Background()

	u := seedUser(t, repo, "acme1", "acme1@example.com", models.RoleSponsor)

	// End before start is rejected on create.
	_, err := svc.CreateProfile(ctx, u.ID, &dto.CreateSponsorRequest{
		CompanyName:       "Acme Corp",
		Website:           "https://acme.example.com",
		SponsorshipAmount: 2500,
		SponsorshipType:   "Gold",
		StartDate:         "2026-06-01",
		EndDate:           "2026-01-01",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("inverted dates: err = %v, want a validation error", err)
	}

	created, err := svc.CreateProfile(ctx, u.ID, &dto.CreateSponsorRequest{
		CompanyName:       "Acme Corp",
		Website:           "https://acme.example.com",
		SponsorshipAmount: 2500,
		SponsorshipType:   "Gold",
		StartDate:         "2026-01-01",
		EndDate:           "2026-12-31",
	})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if created.CompanyName != "Acme Corp" {
		t.Errorf("CompanyName = %q", created.CompanyName)
	}

	// A patch may not leave the contract window inverted either.
	_, err = svc.UpdateProfile(ctx, u.ID, &dto.UpdateSponsorRequest{
		EndDate: strPtr("2025-01-01"),
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("patched inverted dates: err = %v, want a validation error", err)
	}

	updated, err := svc.UpdateProfile(ctx, u.ID, &dto.UpdateSponsorRequest{
		SponsorshipType: strPtr("Platinum"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.SponsorshipType != "Platinum" {
		t.Errorf("SponsorshipType = %q, want Platinum", updated.SponsorshipType)
	}
	if updated.SponsorshipAmount != 2500 {
		t.Errorf("SponsorshipAmount changed by unrelated patch: %v", updated.SponsorshipAmount)
	}
}
