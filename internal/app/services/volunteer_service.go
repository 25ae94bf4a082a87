package services

import (
	"context"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/app/repositories"
	"github.com/emre/eventra/internal/pkg/apperrors"
)

// VolunteerService defines the interface for volunteer profile operations
type VolunteerService interface {
	CreateProfile(ctx context.Context, userID int64, req *dto.CreateVolunteerRequest) (*models.Volunteer, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.Volunteer, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateVolunteerRequest) (*models.Volunteer, error)
	DeleteProfile(ctx context.Context, userID int64) error
}

// volunteerServiceImpl implements the VolunteerService interface
type volunteerServiceImpl struct {
	userRepo repositories.IUserRepository
}

// NewVolunteerService creates a new VolunteerService
func NewVolunteerService(userRepo repositories.IUserRepository) VolunteerService {
	return &volunteerServiceImpl{userRepo: userRepo}
}

// CreateProfile completes the volunteer profile of a registered user
func (s *volunteerServiceImpl) CreateProfile(ctx context.Context, userID int64, req *dto.CreateVolunteerRequest) (*models.Volunteer, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleVolunteer {
		return nil, apperrors.ErrRoleMismatch
	}

	v := &models.Volunteer{
		UserID:     userID,
		Experience: req.Experience,
		Skills:     req.Skills,
	}

	id, err := s.userRepo.CreateVolunteer(ctx, v)
	if err != nil {
		return nil, err
	}
	v.ID = id

	return v, nil
}

// GetProfileByUserID retrieves a volunteer profile
func (s *volunteerServiceImpl) GetProfileByUserID(ctx context.Context, userID int64) (*models.Volunteer, error) {
	return s.userRepo.GetVolunteerByUserID(ctx, userID)
}

// UpdateProfile applies a merge-patch to a volunteer profile
func (s *volunteerServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateVolunteerRequest) (*models.Volunteer, error) {
	v, err := s.userRepo.GetVolunteerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch := models.VolunteerPatch{
		Experience: req.Experience,
		Skills:     req.Skills,
	}
	patch.Apply(v)

	if err := s.userRepo.UpdateVolunteer(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

// DeleteProfile removes a volunteer profile
func (s *volunteerServiceImpl) DeleteProfile(ctx context.Context, userID int64) error {
	v, err := s.userRepo.GetVolunteerByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return s.userRepo.DeleteVolunteer(ctx, v.ID)
}
