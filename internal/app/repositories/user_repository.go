package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/app/repositories/user"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	// Identity
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	CreateUserTx(ctx context.Context, tx pgx.Tx, u *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, sortBy, sortOrder, name string) ([]*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	UpdateUserStatus(ctx context.Context, id int64, status models.UserStatus) error

	// Password reset
	SetResetPasswordToken(ctx context.Context, userID int64, token string, expires time.Time) error
	GetUserByResetToken(ctx context.Context, token string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error

	// Event manager profiles
	CreateEventManager(ctx context.Context, em *models.EventManager) (int64, error)
	CreateEventManagerTx(ctx context.Context, tx pgx.Tx, em *models.EventManager) (int64, error)
	GetEventManagerByUserID(ctx context.Context, userID int64) (*models.EventManager, error)
	GetEventManagerByID(ctx context.Context, id int64) (*models.EventManager, error)
	UpdateEventManager(ctx context.Context, em *models.EventManager) error
	UpdateProfilePicture(ctx context.Context, userID int64, filename string) error
	DeleteEventManager(ctx context.Context, id int64) error

	// Volunteer profiles
	CreateVolunteer(ctx context.Context, v *models.Volunteer) (int64, error)
	CreateVolunteerTx(ctx context.Context, tx pgx.Tx, v *models.Volunteer) (int64, error)
	GetVolunteerByUserID(ctx context.Context, userID int64) (*models.Volunteer, error)
	GetVolunteerByID(ctx context.Context, id int64) (*models.Volunteer, error)
	UpdateVolunteer(ctx context.Context, v *models.Volunteer) error
	DeleteVolunteer(ctx context.Context, id int64) error

	// Sponsor profiles
	CreateSponsor(ctx context.Context, s *models.Sponsor) (int64, error)
	CreateSponsorTx(ctx context.Context, tx pgx.Tx, s *models.Sponsor) (int64, error)
	GetSponsorByUserID(ctx context.Context, userID int64) (*models.Sponsor, error)
	GetSponsorByID(ctx context.Context, id int64) (*models.Sponsor, error)
	UpdateSponsor(ctx context.Context, s *models.Sponsor) error
	DeleteSponsor(ctx context.Context, id int64) error
}

// UserRepository combines the common user store with the role profile stores
type UserRepository struct {
	common       *user.Repository
	eventManager *user.EventManagerRepository
	volunteer    *user.VolunteerRepository
	sponsor      *user.SponsorRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		common:       user.NewRepository(db),
		eventManager: user.NewEventManagerRepository(db),
		volunteer:    user.NewVolunteerRepository(db),
		sponsor:      user.NewSponsorRepository(db),
	}
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	return r.common.CreateUser(ctx, u)
}

// CreateUserTx creates a new user within a transaction
func (r *UserRepository) CreateUserTx(ctx context.Context, tx pgx.Tx, u *models.User) (int64, error) {
	return r.common.CreateUserTx(ctx, tx, u)
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.common.GetUserByID(ctx, id)
}

// GetUserByUsername retrieves a user by username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.common.GetUserByUsername(ctx, username)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.common.GetUserByEmail(ctx, email)
}

// ListUsers retrieves users ordered by a whitelisted sort key, optionally
// filtered by a name substring
func (r *UserRepository) ListUsers(ctx context.Context, sortBy, sortOrder, name string) ([]*models.User, error) {
	return r.common.ListUsers(ctx, sortBy, sortOrder, name)
}

// UpdateUser updates a user
func (r *UserRepository) UpdateUser(ctx context.Context, u *models.User) error {
	return r.common.UpdateUser(ctx, u)
}

// UpdateUserStatus updates a user's activation status
func (r *UserRepository) UpdateUserStatus(ctx context.Context, id int64, status models.UserStatus) error {
	return r.common.UpdateUserStatus(ctx, id, status)
}

// SetResetPasswordToken stores a password reset token
func (r *UserRepository) SetResetPasswordToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	return r.common.SetResetPasswordToken(ctx, userID, token, expires)
}

// GetUserByResetToken retrieves the user holding an unexpired reset token
func (r *UserRepository) GetUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	return r.common.GetUserByResetToken(ctx, token)
}

// UpdatePassword replaces a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	return r.common.UpdatePassword(ctx, userID, hashedPassword)
}

// CreateEventManager creates a new event manager profile
func (r *UserRepository) CreateEventManager(ctx context.Context, em *models.EventManager) (int64, error) {
	return r.eventManager.CreateEventManager(ctx, em)
}

// CreateEventManagerTx creates a new event manager profile within a transaction
func (r *UserRepository) CreateEventManagerTx(ctx context.Context, tx pgx.Tx, em *models.EventManager) (int64, error) {
	return r.eventManager.CreateEventManagerTx(ctx, tx, em)
}

// GetEventManagerByUserID retrieves an event manager profile by user ID
func (r *UserRepository) GetEventManagerByUserID(ctx context.Context, userID int64) (*models.EventManager, error) {
	return r.eventManager.GetEventManagerByUserID(ctx, userID)
}

// GetEventManagerByID retrieves an event manager profile by ID
func (r *UserRepository) GetEventManagerByID(ctx context.Context, id int64) (*models.EventManager, error) {
	return r.eventManager.GetEventManagerByID(ctx, id)
}

// UpdateEventManager updates an event manager profile
func (r *UserRepository) UpdateEventManager(ctx context.Context, em *models.EventManager) error {
	return r.eventManager.UpdateEventManager(ctx, em)
}

// UpdateProfilePicture stores an event manager's profile picture filename
func (r *UserRepository) UpdateProfilePicture(ctx context.Context, userID int64, filename string) error {
	return r.eventManager.UpdateProfilePicture(ctx, userID, filename)
}

// DeleteEventManager removes an event manager profile
func (r *UserRepository) DeleteEventManager(ctx context.Context, id int64) error {
	return r.eventManager.DeleteEventManager(ctx, id)
}

// CreateVolunteer creates a new volunteer profile
func (r *UserRepository) CreateVolunteer(ctx context.Context, v *models.Volunteer) (int64, error) {
	return r.volunteer.CreateVolunteer(ctx, v)
}

// CreateVolunteerTx creates a new volunteer profile within a transaction
func (r *UserRepository) CreateVolunteerTx(ctx context.Context, tx pgx.Tx, v *models.Volunteer) (int64, error) {
	return r.volunteer.CreateVolunteerTx(ctx, tx, v)
}

// GetVolunteerByUserID retrieves a volunteer profile by user ID
func (r *UserRepository) GetVolunteerByUserID(ctx context.Context, userID int64) (*models.Volunteer, error) {
	return r.volunteer.GetVolunteerByUserID(ctx, userID)
}

// GetVolunteerByID retrieves a volunteer profile by ID
func (r *UserRepository) GetVolunteerByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	return r.volunteer.GetVolunteerByID(ctx, id)
}

// UpdateVolunteer updates a volunteer profile
func (r *UserRepository) UpdateVolunteer(ctx context.Context, v *models.Volunteer) error {
	return r.volunteer.UpdateVolunteer(ctx, v)
}

// DeleteVolunteer removes a volunteer profile
func (r *UserRepository) DeleteVolunteer(ctx context.Context, id int64) error {
	return r.volunteer.DeleteVolunteer(ctx, id)
}

// CreateSponsor creates a new sponsor profile
func (r *UserRepository) CreateSponsor(ctx context.Context, s *models.Sponsor) (int64, error) {
	return r.sponsor.CreateSponsor(ctx, s)
}

// CreateSponsorTx creates a new sponsor profile within a transaction
func (r *UserRepository) CreateSponsorTx(ctx context.Context, tx pgx.Tx, s *models.Sponsor) (int64, error) {
	return r.sponsor.CreateSponsorTx(ctx, tx, s)
}

// GetSponsorByUserID retrieves a sponsor profile by user ID
func (r *UserRepository) GetSponsorByUserID(ctx context.Context, userID int64) (*models.Sponsor, error) {
	return r.sponsor.GetSponsorByUserID(ctx, userID)
}

// GetSponsorByID retrieves a sponsor profile by ID
func (r *UserRepository) GetSponsorByID(ctx context.Context, id int64) (*models.Sponsor, error) {
	return r.sponsor.GetSponsorByID(ctx, id)
}

// UpdateSponsor updates a sponsor profile
func (r *UserRepository) UpdateSponsor(ctx context.Context, s *models.Sponsor) error {
	return r.sponsor.UpdateSponsor(ctx, s)
}

// DeleteSponsor removes a sponsor profile
func (r *UserRepository) DeleteSponsor(ctx context.Context, id int64) error {
	return r.sponsor.DeleteSponsor(ctx, id)
}
