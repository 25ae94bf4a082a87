package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/app/repositories"
	"github.com/emre/eventra/internal/pkg/apperrors"
	"github.com/emre/eventra/internal/pkg/auth"
	"github.com/emre/eventra/internal/pkg/logger"
)

// UserService defines the interface for user operations
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, sortBy, sortOrder, name string) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	UpdateUserStatus(ctx context.Context, id int64, status string) (*models.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// GetUserByID retrieves a single user with its role profile attached
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers retrieves users ordered by a whitelisted sort key, optionally
// filtered by a case-insensitive name substring.
// sortBy defaults to id, sortOrder to asc.
func (s *userServiceImpl) ListUsers(ctx context.Context, sortBy, sortOrder, name string) ([]*models.User, error) {
	if sortBy == "" {
		sortBy = "id"
	}
	if sortOrder == "" {
		sortOrder = "asc"
	}

	return s.userRepo.ListUsers(ctx, sortBy, sortOrder, name)
}

// UpdateUser applies a merge-patch to a user. Only fields present in the
// request overwrite stored values; an empty patch is a no-op that returns
// the stored row unchanged.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := models.UserPatch{
		Name:        req.Name,
		Username:    req.Username,
		UserEmail:   req.UserEmail,
		PhoneNumber: req.PhoneNumber,
	}

	if req.Role != nil {
		role := models.UserRole(*req.Role)
		if !models.ValidRole(role) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid role: %s", *req.Role))
		}
		patch.Role = &role
	}

	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.Password = &hashed
	}

	if patch.IsEmpty() {
		return user, nil
	}

	patch.Apply(user)

	// A rename that collides with another user surfaces as a unique
	// violation and is translated to a conflict error by the repository.
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", id).Msg("User updated")
	return user, nil
}

// UpdateUserStatus sets the activity status of a user. Values outside the
// status enum are rejected; setting the current status again is a no-op
// that succeeds.
func (s *userServiceImpl) UpdateUserStatus(ctx context.Context, id int64, status string) (*models.User, error) {
	newStatus := models.UserStatus(status)
	if !models.ValidStatus(newStatus) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", status))
	}

	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.IsActive == newStatus {
		return user, nil
	}

	if err := s.userRepo.UpdateUserStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	user.IsActive = newStatus
	logger.Info().Int64("userID", id).Str("status", status).Msg("User status updated")
	return user, nil
}

// attachProfile loads the role profile matching the user's role, if any.
// A missing profile is not an error: registration completes it later.
// Anything other than the not-found sentinel is a real failure and surfaces.
func (s *userServiceImpl) attachProfile(ctx context.Context, user *models.User) error {
	switch user.Role {
	case models.RoleEventManager:
		em, err := s.userRepo.GetEventManagerByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrEventManagerNotFound) {
				return nil
			}
			return err
		}
		user.EventManager = em
	case models.RoleVolunteer:
		v, err := s.userRepo.GetVolunteerByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrVolunteerNotFound) {
				return nil
			}
			return err
		}
		user.Volunteer = v
	case models.RoleSponsor:
		sp, err := s.userRepo.GetSponsorByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrSponsorNotFound) {
				return nil
			}
			return err
		}
		user.Sponsor = sp
	}
	return nil
}

// ToUserResponse maps a user model to its API representation
func ToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Username:    user.Username,
		UserEmail:   user.UserEmail,
		PhoneNumber: user.PhoneNumber,
		Role:        string(user.Role),
		IsActive:    string(user.IsActive),
	}
}
