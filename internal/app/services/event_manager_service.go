package services

import (
	"context"
	"mime/multipart"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/app/repositories"
	"github.com/emre/eventra/internal/pkg/apperrors"
	"github.com/emre/eventra/internal/pkg/filestorage"
	"github.com/emre/eventra/internal/pkg/logger"
)

// EventManagerService defines the interface for event manager profile operations
type EventManagerService interface {
	CreateProfile(ctx context.Context, userID int64, req *dto.CreateEventManagerRequest) (*models.EventManager, error)
	GetProfileByUserID(ctx context.Context, userID int64) (*models.EventManager, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateEventManagerRequest) (*models.EventManager, error)
	DeleteProfile(ctx context.Context, userID int64) error
	UploadProfilePicture(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error)
}

// eventManagerServiceImpl implements the EventManagerService interface
type eventManagerServiceImpl struct {
	userRepo repositories.IUserRepository
	storage  filestorage.FileStorage
}

// NewEventManagerService creates a new EventManagerService
func NewEventManagerService(userRepo repositories.IUserRepository, storage filestorage.FileStorage) EventManagerService {
	return &eventManagerServiceImpl{
		userRepo: userRepo,
		storage:  storage,
	}
}

// CreateProfile completes the event manager profile of a registered user
func (s *eventManagerServiceImpl) CreateProfile(ctx context.Context, userID int64, req *dto.CreateEventManagerRequest) (*models.EventManager, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleEventManager {
		return nil, apperrors.ErrRoleMismatch
	}

	em := &models.EventManager{
		UserID:            userID,
		Position:          req.Position,
		Organization:      req.Organization,
		Bio:               req.Bio,
		Specialization:    req.Specialization,
		YearsOfExperience: req.YearsOfExperience,
	}

	id, err := s.userRepo.CreateEventManager(ctx, em)
	if err != nil {
		return nil, err
	}
	em.ID = id

	return em, nil
}

// GetProfileByUserID retrieves an event manager profile
func (s *eventManagerServiceImpl) GetProfileByUserID(ctx context.Context, userID int64) (*models.EventManager, error) {
	return s.userRepo.GetEventManagerByUserID(ctx, userID)
}

// UpdateProfile applies a merge-patch to an event manager profile
func (s *eventManagerServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateEventManagerRequest) (*models.EventManager, error) {
	em, err := s.userRepo.GetEventManagerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	patch := models.EventManagerPatch{
		Position:          req.Position,
		Organization:      req.Organization,
		Bio:               req.Bio,
		Specialization:    req.Specialization,
		YearsOfExperience: req.YearsOfExperience,
	}
	patch.Apply(em)

	if err := s.userRepo.UpdateEventManager(ctx, em); err != nil {
		return nil, err
	}

	return em, nil
}

// DeleteProfile removes an event manager profile and its stored picture
func (s *eventManagerServiceImpl) DeleteProfile(ctx context.Context, userID int64) error {
	em, err := s.userRepo.GetEventManagerByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.DeleteEventManager(ctx, em.ID); err != nil {
		return err
	}

	if em.ProfilePicture != nil {
		if err := s.storage.DeleteFile(*em.ProfilePicture); err != nil {
			logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to delete profile picture file")
		}
	}

	return nil
}

// UploadProfilePicture stores an uploaded picture and records its path.
// A previous picture, if any, is removed from storage.
func (s *eventManagerServiceImpl) UploadProfilePicture(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error) {
	em, err := s.userRepo.GetEventManagerByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	path, err := s.storage.SaveFileWithPath(fileHeader, "profile-pictures")
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateProfilePicture(ctx, userID, path); err != nil {
		_ = s.storage.DeleteFile(path)
		return "", err
	}

	if em.ProfilePicture != nil && *em.ProfilePicture != path {
		if err := s.storage.DeleteFile(*em.ProfilePicture); err != nil {
			logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to delete previous profile picture")
		}
	}

	logger.Info().Int64("userID", userID).Str("path", path).Msg("Profile picture updated")
	return path, nil
}
