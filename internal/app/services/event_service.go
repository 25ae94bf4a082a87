package services

import (
	"context"
	"fmt"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/app/models/dto"
	"github.com/emre/eventra/internal/app/repositories"
	"github.com/emre/eventra/internal/pkg/apperrors"
	"github.com/emre/eventra/internal/pkg/helpers"
	"github.com/emre/eventra/internal/pkg/logger"
)

// EventService defines the interface for event operations
type EventService interface {
	CreateEvent(ctx context.Context, userID int64, req *dto.CreateEventRequest) (*models.Event, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
	ListMyEvents(ctx context.Context, userID int64) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, userID, eventID int64, req *dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, userID, eventID int64) error
	AssignVolunteer(ctx context.Context, userID, eventID, volunteerID int64) (*models.Event, error)
	RemoveVolunteer(ctx context.Context, userID, eventID, volunteerID int64) error
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	eventRepo repositories.IEventRepository
	userRepo  repositories.IUserRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.IEventRepository, userRepo repositories.IUserRepository) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

// CreateEvent creates a new event owned by the caller's event manager profile
func (s *eventServiceImpl) CreateEvent(ctx context.Context, userID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	em, err := s.userRepo.GetEventManagerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	date, err := helpers.ParseTime(req.Date)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Name:           req.Name,
		Description:    req.Description,
		Date:           date,
		Status:         models.EventPending,
		Progress:       0,
		EventManagerID: em.ID,
	}

	id, err := s.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id
	event.VolunteerIDs = []int64{}

	return event, nil
}

// GetEventByID retrieves an event with its volunteer team
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetEventByID(ctx, id)
}

// ListEvents retrieves all events
func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.ListEvents(ctx)
}

// ListMyEvents retrieves the events owned by the caller's event manager profile
func (s *eventServiceImpl) ListMyEvents(ctx context.Context, userID int64) ([]*models.Event, error) {
	em, err := s.userRepo.GetEventManagerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.eventRepo.ListEventsByManager(ctx, em.ID)
}

// UpdateEvent applies a merge-patch to an event. Only the owning event
// manager may update it; status values outside the enum are rejected.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, userID, eventID int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	patch := models.EventPatch{
		Name:         req.Name,
		Description:  req.Description,
		ProgressNote: req.ProgressNote,
		Progress:     req.Progress,
	}

	if req.Date != nil {
		date, err := helpers.ParseTime(*req.Date)
		if err != nil {
			return nil, err
		}
		patch.Date = &date
	}

	if req.Status != nil {
		status := models.EventStatus(*req.Status)
		if !models.ValidEventStatus(status) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid event status: %s", *req.Status))
		}
		patch.Status = &status
	}

	patch.Apply(event)

	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes an event owned by the caller
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, userID, eventID int64) error {
	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}

	return s.eventRepo.DeleteEvent(ctx, eventID)
}

// AssignVolunteer adds a volunteer to the team of an owned event
func (s *eventServiceImpl) AssignVolunteer(ctx context.Context, userID, eventID, volunteerID int64) (*models.Event, error) {
	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetVolunteerByID(ctx, volunteerID); err != nil {
		return nil, err
	}

	if err := s.eventRepo.AssignVolunteer(ctx, eventID, volunteerID); err != nil {
		return nil, err
	}

	event.VolunteerIDs = append(event.VolunteerIDs, volunteerID)
	logger.Info().Int64("eventID", eventID).Int64("volunteerID", volunteerID).Msg("Volunteer added to event team")
	return event, nil
}

// RemoveVolunteer removes a volunteer from the team of an owned event
func (s *eventServiceImpl) RemoveVolunteer(ctx context.Context, userID, eventID, volunteerID int64) error {
	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}

	return s.eventRepo.RemoveVolunteer(ctx, eventID, volunteerID)
}

// ownedEvent loads an event and verifies the caller's event manager
// profile owns it.
func (s *eventServiceImpl) ownedEvent(ctx context.Context, userID, eventID int64) (*models.Event, error) {
	em, err := s.userRepo.GetEventManagerByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.EventManagerID != em.ID {
		logger.Warn().Int64("userID", userID).Int64("eventID", eventID).Msg("Event access denied for non-owner")
		return nil, apperrors.ErrPermissionDenied
	}

	return event, nil
}
