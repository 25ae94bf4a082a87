// Package seed creates default data required on first startup.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/pkg/auth"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@eventra.local"
	defaultAdminPassword = "ChangeMe123"
)

// CreateDefaultData inserts a default event manager account when the
// users table is empty, so a fresh deployment can be logged into.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	var userID int64
	err = db.QueryRow(ctx, `
		INSERT INTO users (name, username, user_email, password, phone_number, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		"Default Admin", defaultAdminUsername, defaultAdminEmail, hashed,
		"+00 000 000 0000", models.RoleEventManager, models.StatusActive).Scan(&userID)
	if err != nil {
		return fmt.Errorf("failed to insert default user: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO event_managers (user_id, position, organization)
		VALUES ($1, $2, $3)`,
		userID, "Administrator", "Eventra")
	if err != nil {
		return fmt.Errorf("failed to insert default event manager profile: %w", err)
	}

	lgr.Info().
		Str("username", defaultAdminUsername).
		Msg("Default event manager account created, change its password immediately")
	return nil
}
