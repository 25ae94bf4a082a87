package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/pkg/apperrors"
	"github.com/emre/eventra/internal/pkg/dberrors"
	"github.com/emre/eventra/internal/pkg/logger"
)

const eventManagerColumns = "id, user_id, position, organization, bio, specialization, years_of_experience, profile_picture"

// EventManagerRepository handles event manager profile database operations
type EventManagerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventManagerRepository creates a new EventManagerRepository
func NewEventManagerRepository(db *pgxpool.Pool) *EventManagerRepository {
	return &EventManagerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEventManager(row pgx.Row) (*models.EventManager, error) {
	em := &models.EventManager{}
	err := row.Scan(
		&em.ID, &em.UserID, &em.Position, &em.Organization,
		&em.Bio, &em.Specialization, &em.YearsOfExperience, &em.ProfilePicture)
	if err != nil {
		return nil, err
	}
	return em, nil
}

// CreateEventManager creates a new event manager profile
func (r *EventManagerRepository) CreateEventManager(ctx context.Context, em *models.EventManager) (int64, error) {
	return r.create(ctx, r.db, em)
}

// CreateEventManagerTx creates a new event manager profile within a transaction
func (r *EventManagerRepository) CreateEventManagerTx(ctx context.Context, tx pgx.Tx, em *models.EventManager) (int64, error) {
	return r.create(ctx, tx, em)
}

func (r *EventManagerRepository) create(ctx context.Context, q querier, em *models.EventManager) (int64, error) {
	sql, args, err := r.sb.Insert("event_managers").
		Columns("user_id", "position", "organization", "bio", "specialization", "years_of_experience", "profile_picture").
		Values(em.UserID, em.Position, em.Organization, em.Bio, em.Specialization, em.YearsOfExperience, em.ProfilePicture).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create event manager SQL")
		return 0, fmt.Errorf("failed to build create event manager query: %w", err)
	}

	var id int64
	err = q.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "event_managers_user_id_key") {
			logger.Warn().Int64("userID", em.UserID).Msg("Attempted to create duplicate event manager profile")
			return 0, apperrors.ErrProfileAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", em.UserID).Msg("Error executing create event manager query")
		return 0, fmt.Errorf("error creating event manager: %w", err)
	}

	logger.Info().Int64("userID", em.UserID).Int64("eventManagerID", id).Msg("Event manager profile created")
	return id, nil
}

// GetEventManagerByUserID retrieves an event manager profile by user ID
func (r *EventManagerRepository) GetEventManagerByUserID(ctx context.Context, userID int64) (*models.EventManager, error) {
	sql, args, err := r.sb.Select(eventManagerColumns).
		From("event_managers").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event manager query: %w", err)
	}

	em, err := scanEventManager(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventManagerNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning event manager row")
		return nil, fmt.Errorf("error retrieving event manager: %w", err)
	}

	return em, nil
}

// GetEventManagerByID retrieves an event manager profile by its own ID
func (r *EventManagerRepository) GetEventManagerByID(ctx context.Context, id int64) (*models.EventManager, error) {
	sql, args, err := r.sb.Select(eventManagerColumns).
		From("event_managers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event manager query: %w", err)
	}

	em, err := scanEventManager(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventManagerNotFound
		}
		return nil, fmt.Errorf("error retrieving event manager: %w", err)
	}

	return em, nil
}

// UpdateEventManager persists the mutable fields of an event manager profile
func (r *EventManagerRepository) UpdateEventManager(ctx context.Context, em *models.EventManager) error {
	sql, args, err := r.sb.Update("event_managers").
		Set("position", em.Position).
		Set("organization", em.Organization).
		Set("bio", em.Bio).
		Set("specialization", em.Specialization).
		Set("years_of_experience", em.YearsOfExperience).
		Where(squirrel.Eq{"id": em.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event manager query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventManagerID", em.ID).Msg("Error executing update event manager query")
		return fmt.Errorf("error updating event manager: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventManagerNotFound
	}

	return nil
}

// UpdateProfilePicture stores the filename of an uploaded profile picture
func (r *EventManagerRepository) UpdateProfilePicture(ctx context.Context, userID int64, filename string) error {
	sql, args, err := r.sb.Update("event_managers").
		Set("profile_picture", filename).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile picture query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing update profile picture query")
		return fmt.Errorf("error updating profile picture: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventManagerNotFound
	}

	return nil
}

// DeleteEventManager removes an event manager profile
func (r *EventManagerRepository) DeleteEventManager(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("event_managers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event manager query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting event manager: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventManagerNotFound
	}

	return nil
}
