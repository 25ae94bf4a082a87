package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all data access objects behind one constructor
type Repositories struct {
	User  *UserRepository
	Token *TokenRepository
	Event *EventRepository
}

// NewRepositories creates the repository container from a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:  NewUserRepository(db),
		Token: NewTokenRepository(db),
		Event: NewEventRepository(db),
	}
}
