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

const sponsorColumns = "id, user_id, company_name, website, sponsorship_amount, sponsorship_type, start_date, end_date, contract_url"

// SponsorRepository handles sponsor profile database operations
type SponsorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSponsorRepository creates a new SponsorRepository
func NewSponsorRepository(db *pgxpool.Pool) *SponsorRepository {
	return &SponsorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanSponsor(row pgx.Row) (*models.Sponsor, error) {
	s := &models.Sponsor{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.CompanyName, &s.Website, &s.SponsorshipAmount,
		&s.SponsorshipType, &s.StartDate, &s.EndDate, &s.ContractURL)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateSponsor creates a new sponsor profile
func (r *SponsorRepository) CreateSponsor(ctx context.Context, s *models.Sponsor) (int64, error) {
	return r.create(ctx, r.db, s)
}

// CreateSponsorTx creates a new sponsor profile within a transaction
func (r *SponsorRepository) CreateSponsorTx(ctx context.Context, tx pgx.Tx, s *models.Sponsor) (int64, error) {
	return r.create(ctx, tx, s)
}

func (r *SponsorRepository) create(ctx context.Context, q querier, s *models.Sponsor) (int64, error) {
	sql, args, err := r.sb.Insert("sponsors").
		Columns("user_id", "company_name", "website", "sponsorship_amount", "sponsorship_type", "start_date", "end_date", "contract_url").
		Values(s.UserID, s.CompanyName, s.Website, s.SponsorshipAmount, s.SponsorshipType, s.StartDate, s.EndDate, s.ContractURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create sponsor SQL")
		return 0, fmt.Errorf("failed to build create sponsor query: %w", err)
	}

	var id int64
	err = q.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "sponsors_user_id_key") {
			logger.Warn().Int64("userID", s.UserID).Msg("Attempted to create duplicate sponsor profile")
			return 0, apperrors.ErrProfileAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", s.UserID).Msg("Error executing create sponsor query")
		return 0, fmt.Errorf("error creating sponsor: %w", err)
	}

	logger.Info().Int64("userID", s.UserID).Int64("sponsorID", id).Msg("Sponsor profile created")
	return id, nil
}

// GetSponsorByUserID retrieves a sponsor profile by user ID
func (r *SponsorRepository) GetSponsorByUserID(ctx context.Context, userID int64) (*models.Sponsor, error) {
	sql, args, err := r.sb.Select(sponsorColumns).
		From("sponsors").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get sponsor query: %w", err)
	}

	s, err := scanSponsor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSponsorNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning sponsor row")
		return nil, fmt.Errorf("error retrieving sponsor: %w", err)
	}

	return s, nil
}

// GetSponsorByID retrieves a sponsor profile by its own ID
func (r *SponsorRepository) GetSponsorByID(ctx context.Context, id int64) (*models.Sponsor, error) {
	sql, args, err := r.sb.Select(sponsorColumns).
		From("sponsors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get sponsor query: %w", err)
	}

	s, err := scanSponsor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSponsorNotFound
		}
		return nil, fmt.Errorf("error retrieving sponsor: %w", err)
	}

	return s, nil
}

// UpdateSponsor persists the mutable fields of a sponsor profile
func (r *SponsorRepository) UpdateSponsor(ctx context.Context, s *models.Sponsor) error {
	sql, args, err := r.sb.Update("sponsors").
		Set("company_name", s.CompanyName).
		Set("website", s.Website).
		Set("sponsorship_amount", s.SponsorshipAmount).
		Set("sponsorship_type", s.SponsorshipType).
		Set("start_date", s.StartDate).
		Set("end_date", s.EndDate).
		Set("contract_url", s.ContractURL).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update sponsor query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("sponsorID", s.ID).Msg("Error executing update sponsor query")
		return fmt.Errorf("error updating sponsor: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrSponsorNotFound
	}

	return nil
}

// DeleteSponsor removes a sponsor profile
func (r *SponsorRepository) DeleteSponsor(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("sponsors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete sponsor query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting sponsor: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrSponsorNotFound
	}

	return nil
}
