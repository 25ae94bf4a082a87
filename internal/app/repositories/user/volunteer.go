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

// VolunteerRepository handles volunteer profile database operations
type VolunteerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewVolunteerRepository creates a new VolunteerRepository
func NewVolunteerRepository(db *pgxpool.Pool) *VolunteerRepository {
	return &VolunteerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanVolunteer(row pgx.Row) (*models.Volunteer, error) {
	v := &models.Volunteer{}
	if err := row.Scan(&v.ID, &v.UserID, &v.Experience, &v.Skills); err != nil {
		return nil, err
	}
	return v, nil
}

// CreateVolunteer creates a new volunteer profile
func (r *VolunteerRepository) CreateVolunteer(ctx context.Context, v *models.Volunteer) (int64, error) {
	return r.create(ctx, r.db, v)
}

// CreateVolunteerTx creates a new volunteer profile within a transaction
func (r *VolunteerRepository) CreateVolunteerTx(ctx context.Context, tx pgx.Tx, v *models.Volunteer) (int64, error) {
	return r.create(ctx, tx, v)
}

func (r *VolunteerRepository) create(ctx context.Context, q querier, v *models.Volunteer) (int64, error) {
	sql, args, err := r.sb.Insert("volunteers").
		Columns("user_id", "experience", "skills").
		Values(v.UserID, v.Experience, v.Skills).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create volunteer SQL")
		return 0, fmt.Errorf("failed to build create volunteer query: %w", err)
	}

	var id int64
	err = q.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "volunteers_user_id_key") {
			logger.Warn().Int64("userID", v.UserID).Msg("Attempted to create duplicate volunteer profile")
			return 0, apperrors.ErrProfileAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", v.UserID).Msg("Error executing create volunteer query")
		return 0, fmt.Errorf("error creating volunteer: %w", err)
	}

	logger.Info().Int64("userID", v.UserID).Int64("volunteerID", id).Msg("Volunteer profile created")
	return id, nil
}

// GetVolunteerByUserID retrieves a volunteer profile by user ID
func (r *VolunteerRepository) GetVolunteerByUserID(ctx context.Context, userID int64) (*models.Volunteer, error) {
	sql, args, err := r.sb.Select("id", "user_id", "experience", "skills").
		From("volunteers").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get volunteer query: %w", err)
	}

	v, err := scanVolunteer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning volunteer row")
		return nil, fmt.Errorf("error retrieving volunteer: %w", err)
	}

	return v, nil
}

// GetVolunteerByID retrieves a volunteer profile by its own ID
func (r *VolunteerRepository) GetVolunteerByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	sql, args, err := r.sb.Select("id", "user_id", "experience", "skills").
		From("volunteers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get volunteer query: %w", err)
	}

	v, err := scanVolunteer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("error retrieving volunteer: %w", err)
	}

	return v, nil
}

// UpdateVolunteer persists the mutable fields of a volunteer profile
func (r *VolunteerRepository) UpdateVolunteer(ctx context.Context, v *models.Volunteer) error {
	sql, args, err := r.sb.Update("volunteers").
		Set("experience", v.Experience).
		Set("skills", v.Skills).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update volunteer query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("volunteerID", v.ID).Msg("Error executing update volunteer query")
		return fmt.Errorf("error updating volunteer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrVolunteerNotFound
	}

	return nil
}

// DeleteVolunteer removes a volunteer profile
func (r *VolunteerRepository) DeleteVolunteer(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("volunteers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete volunteer query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting volunteer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrVolunteerNotFound
	}

	return nil
}
