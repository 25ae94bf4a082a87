package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/pkg/apperrors"
	"github.com/emre/eventra/internal/pkg/dberrors"
	"github.com/emre/eventra/internal/pkg/logger"
)

const eventColumns = "id, name, description, date, status, progress_note, progress, event_manager_id, created_at, updated_at"

// IEventRepository defines the interface for event database operations
type IEventRepository interface {
	CreateEvent(ctx context.Context, event *models.Event) (int64, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
	ListEventsByManager(ctx context.Context, eventManagerID int64) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id int64) error
	AssignVolunteer(ctx context.Context, eventID, volunteerID int64) error
	RemoveVolunteer(ctx context.Context, eventID, volunteerID int64) error
	GetVolunteerIDs(ctx context.Context, eventID int64) ([]int64, error)
}

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID, &event.Name, &event.Description, &event.Date, &event.Status,
		&event.ProgressNote, &event.Progress, &event.EventManagerID,
		&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// CreateEvent inserts a new event and returns its ID
func (r *EventRepository) CreateEvent(ctx context.Context, event *models.Event) (int64, error) {
	sql, args, err := r.sb.Insert("events").
		Columns("name", "description", "date", "status", "progress_note", "progress", "event_manager_id").
		Values(event.Name, event.Description, event.Date, event.Status, event.ProgressNote, event.Progress, event.EventManagerID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create event SQL")
		return 0, fmt.Errorf("failed to build create event query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Str("name", event.Name).Msg("Error executing create event query")
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	logger.Info().Int64("eventID", id).Str("name", event.Name).Msg("Event created")
	return id, nil
}

// GetEventByID retrieves an event together with its volunteer IDs
func (r *EventRepository) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.sb.Select(eventColumns).
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	volunteerIDs, err := r.GetVolunteerIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	event.VolunteerIDs = volunteerIDs

	return event, nil
}

// ListEvents retrieves all events ordered by date
func (r *EventRepository) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return r.listWhere(ctx, nil)
}

// ListEventsByManager retrieves all events owned by an event manager
func (r *EventRepository) ListEventsByManager(ctx context.Context, eventManagerID int64) ([]*models.Event, error) {
	return r.listWhere(ctx, squirrel.Eq{"event_manager_id": eventManagerID})
}

func (r *EventRepository) listWhere(ctx context.Context, pred any) ([]*models.Event, error) {
	builder := r.sb.Select(eventColumns).
		From("events").
		OrderBy("date ASC")
	if pred != nil {
		builder = builder.Where(pred)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list events query")
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// UpdateEvent persists the mutable fields of an event
func (r *EventRepository) UpdateEvent(ctx context.Context, event *models.Event) error {
	sql, args, err := r.sb.Update("events").
		Set("name", event.Name).
		Set("description", event.Description).
		Set("date", event.Date).
		Set("status", event.Status).
		Set("progress_note", event.ProgressNote).
		Set("progress", event.Progress).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", event.ID).Msg("Error executing update event query")
		return fmt.Errorf("error updating event: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes an event and its volunteer assignments
func (r *EventRepository) DeleteEvent(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing delete event query")
		return fmt.Errorf("error deleting event: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	logger.Info().Int64("eventID", id).Msg("Event deleted")
	return nil
}

// AssignVolunteer adds a volunteer to an event's team
func (r *EventRepository) AssignVolunteer(ctx context.Context, eventID, volunteerID int64) error {
	sql, args, err := r.sb.Insert("event_volunteers").
		Columns("event_id", "volunteer_id").
		Values(eventID, volunteerID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build assign volunteer query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			logger.Warn().Int64("eventID", eventID).Int64("volunteerID", volunteerID).Msg("Volunteer already assigned to event")
			return apperrors.ErrVolunteerAlreadyOnTeam
		}
		logger.Error().Err(err).Int64("eventID", eventID).Int64("volunteerID", volunteerID).Msg("Error executing assign volunteer query")
		return fmt.Errorf("error assigning volunteer: %w", err)
	}

	logger.Info().Int64("eventID", eventID).Int64("volunteerID", volunteerID).Msg("Volunteer assigned to event")
	return nil
}

// RemoveVolunteer removes a volunteer from an event's team
func (r *EventRepository) RemoveVolunteer(ctx context.Context, eventID, volunteerID int64) error {
	sql, args, err := r.sb.Delete("event_volunteers").
		Where(squirrel.Eq{"event_id": eventID, "volunteer_id": volunteerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove volunteer query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error removing volunteer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrVolunteerNotFound
	}

	return nil
}

// GetVolunteerIDs retrieves the volunteer IDs assigned to an event
func (r *EventRepository) GetVolunteerIDs(ctx context.Context, eventID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("volunteer_id").
		From("event_volunteers").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("volunteer_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get volunteer IDs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing event volunteers: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning volunteer ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteer IDs: %w", err)
	}

	return ids, nil
}
