package services

import (
	"context"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/app/repositories"
	"github.com/emre/eventra/internal/pkg/apperrors"
	"github.com/emre/eventra/internal/pkg/helpers"
)

// SponsorService defines the interface for sponsor profile operations
type SponsorService interface {
	CreateProfile(ctx context.Context, userID int64, req *dto.CreateSponsorRequest) (*models.Sponsor, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.Sponsor, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateSponsorRequest) (*models.Sponsor, error)
	DeleteProfile(ctx context.Context, userID int64) error
}

// sponsorServiceImpl implements the SponsorService interface
type sponsorServiceImpl struct {
	userRepo repositories.IUserRepository
}

// NewSponsorService creates a new SponsorService
func NewSponsorService(userRepo repositories.IUserRepository) SponsorService {
	return &sponsorServiceImpl{userRepo: userRepo}
}

// CreateProfile completes the sponsor profile of a registered user
func (s *sponsorServiceImpl) CreateProfile(ctx context.Context, userID int64, req *dto.CreateSponsorRequest) (*models.Sponsor, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleSponsor {
		return nil, apperrors.ErrRoleMismatch
	}

	startDate, err := helpers.ParseTime(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := helpers.ParseTime(req.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, apperrors.NewValidationError("end date cannot be before start date")
	}

	sponsor := &models.Sponsor{
		UserID:            userID,
		CompanyName:       req.CompanyName,
		Website:           req.Website,
		SponsorshipAmount: req.SponsorshipAmount,
		SponsorshipType:   req.SponsorshipType,
		StartDate:         startDate,
		EndDate:           endDate,
		ContractURL:       req.ContractURL,
	}

	id, err := s.userRepo.CreateSponsor(ctx, sponsor)
	if err != nil {
		return nil, err
	}
	sponsor.ID = id

	return sponsor, nil
}

// GetProfileByUserID retrieves a sponsor profile
func (s *sponsorServiceImpl) GetProfileByUserID(ctx context.Context, userID int64) (*models.Sponsor, error) {
	return s.userRepo.GetSponsorByUserID(ctx, userID)
}

// UpdateProfile applies a merge-patch to a sponsor profile
func (s *sponsorServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateSponsorRequest) (*models.Sponsor, error) {
	sponsor, err := s.userRepo.GetSponsorByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	startDate, err := helpers.ParseOptionalTime(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := helpers.ParseOptionalTime(req.EndDate)
	if err != nil {
		return nil, err
	}

	patch := models.SponsorPatch{
		CompanyName:       req.CompanyName,
		Website:           req.Website,
		SponsorshipAmount: req.SponsorshipAmount,
		SponsorshipType:   req.SponsorshipType,
		StartDate:         startDate,
		EndDate:           endDate,
		ContractURL:       req.ContractURL,
	}
	patch.Apply(sponsor)

	if sponsor.EndDate.Before(sponsor.StartDate) {
		return nil, apperrors.NewValidationError("end date cannot be before start date")
	}

	if err := s.userRepo.UpdateSponsor(ctx, sponsor); err != nil {
		return nil, err
	}

	return sponsor, nil
}

// DeleteProfile removes a sponsor profile
func (s *sponsorServiceImpl) DeleteProfile(ctx context.Context, userID int64) error {
	sponsor, err := s.userRepo.GetSponsorByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return s.userRepo.DeleteSponsor(ctx, sponsor.ID)
}
