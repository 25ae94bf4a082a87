package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/pkg/apperrors"
	"github.com/emre/eventra/internal/pkg/dberrors"
	"github.com/emre/eventra/internal/pkg/logger"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so that the same
// statements can run inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const userColumns = "id, name, username, user_email, password, phone_number, role, is_active, reset_password_token, reset_password_expires, created_at, updated_at"

// sortableColumns whitelists the keys accepted for user listing.
// Anything outside this map is rejected before it reaches SQL.
var sortableColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"username":  "username",
	"userEmail": "user_email",
	"role":      "role",
	"isActive":  "is_active",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// Repository handles common user database operations
type Repository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRepository creates a new Repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Username, &user.UserEmail, &user.Password,
		&user.PhoneNumber, &user.Role, &user.IsActive,
		&user.ResetPasswordToken, &user.ResetPasswordExpires,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// translateUserConstraint maps unique violations on the users table to
// the sentinel conflict errors callers branch on.
func translateUserConstraint(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "users_username_key"):
		return apperrors.ErrUsernameAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, "users_user_email_key"):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsUniqueViolation(err):
		return apperrors.ErrConflict
	default:
		return nil
	}
}

// CreateUser inserts a new user and returns its ID
func (r *Repository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	return r.createUser(ctx, r.db, user)
}

// CreateUserTx inserts a new user within an existing transaction
func (r *Repository) CreateUserTx(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error) {
	return r.createUser(ctx, tx, user)
}

func (r *Repository) createUser(ctx context.Context, q querier, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("name", "username", "user_email", "password", "phone_number", "role", "is_active").
		Values(user.Name, user.Username, user.UserEmail, user.Password, user.PhoneNumber, user.Role, user.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = q.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if translated := translateUserConstraint(err); translated != nil {
			logger.Warn().Str("username", user.Username).Msg("Attempted to create user with duplicate identity")
			return 0, translated
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	logger.Info().Int64("userID", id).Str("username", user.Username).Msg("User created successfully")
	return id, nil
}

// GetUserByID retrieves a user by ID
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by username query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email address
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"user_email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// ListUsers retrieves users ordered by the given key, optionally filtered
// by a case-insensitive name substring. The sort key must be one of the
// whitelisted column names.
func (r *Repository) ListUsers(ctx context.Context, sortBy, sortOrder, name string) ([]*models.User, error) {
	column, ok := sortableColumns[sortBy]
	if !ok {
		return nil, apperrors.ErrInvalidSortKey
	}

	direction := "ASC"
	if sortOrder == "desc" || sortOrder == "DESC" {
		direction = "DESC"
	}

	query := r.sb.Select(userColumns).
		From("users").
		OrderBy(column + " " + direction)
	if name != "" {
		query = query.Where(squirrel.ILike{"name": "%" + name + "%"})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// UpdateUser persists the mutable identity fields of a user
func (r *Repository) UpdateUser(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Update("users").
		Set("name", user.Name).
		Set("username", user.Username).
		Set("user_email", user.UserEmail).
		Set("password", user.Password).
		Set("phone_number", user.PhoneNumber).
		Set("role", user.Role).
		Set("is_active", user.IsActive).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if translated := translateUserConstraint(err); translated != nil {
			logger.Warn().Int64("userID", user.ID).Msg("User update collided with existing identity")
			return translated
		}
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateUserStatus sets the activation flag of a user
func (r *Repository) UpdateUserStatus(ctx context.Context, id int64, status models.UserStatus) error {
	sql, args, err := r.sb.Update("users").
		Set("is_active", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing update status query")
		return fmt.Errorf("error updating user status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetResetPasswordToken stores a password reset token with its expiry
func (r *Repository) SetResetPasswordToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	sql, args, err := r.sb.Update("users").
		Set("reset_password_token", token).
		Set("reset_password_expires", expires).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set reset token query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// GetUserByResetToken retrieves the user holding an unexpired reset token
func (r *Repository) GetUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"reset_password_token": token}).
		Where(squirrel.Gt{"reset_password_expires": time.Now()}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by reset token query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidPasswordResetToken
		}
		return nil, fmt.Errorf("error retrieving user by reset token: %w", err)
	}

	return user, nil
}

// UpdatePassword replaces the password hash and clears any reset token
func (r *Repository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	sql, args, err := r.sb.Update("users").
		Set("password", hashedPassword).
		Set("reset_password_token", nil).
		Set("reset_password_expires", nil).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing update password query")
		return fmt.Errorf("error updating password: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	logger.Info().Int64("userID", userID).Msg("Password updated")
	return nil
}
