package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID                   int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name                 string     `json:"name" db:"name" example:"Amy Pond"`                        // Display name
	Username             string     `json:"username" db:"username" example:"amy1"`                    // Login name, globally unique
	UserEmail            string     `json:"userEmail" db:"user_email" example:"amy@example.com"`      // Email address, globally unique
	Password             string     `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	PhoneNumber          string     `json:"phoneNumber" db:"phone_number" example:"+90 555 000 0000"` // Contact phone number
	Role                 UserRole   `json:"role" db:"role" example:"Volunteer"`                       // EventManager, Volunteer or Sponsor
	IsActive             UserStatus `json:"isActive" db:"is_active" example:"Active"`                 // Active or Inactive
	ResetPasswordToken   *string    `json:"-" db:"reset_password_token"`                              // Password-recovery correlation token (nullable)
	ResetPasswordExpires *time.Time `json:"-" db:"reset_password_expires"`                            // Expiry of the recovery token (nullable)
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	EventManager *EventManager `json:"eventManager,omitempty"`
	Volunteer    *Volunteer    `json:"volunteer,omitempty"`
	Sponsor      *Sponsor      `json:"sponsor,omitempty"`
}

// UserPatch is a partial update for a User. Only non-nil fields are applied;
// absent fields leave the stored row untouched.
type UserPatch struct {
	Name        *string
	Username    *string
	UserEmail   *string
	Password    *string
	PhoneNumber *string
	Role        *UserRole
}

// Apply merges the patch into u, overwriting only the fields present in p.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.UserEmail != nil {
		u.UserEmail = *p.UserEmail
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}

// IsEmpty reports whether the patch carries no fields at all
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Username == nil && p.UserEmail == nil &&
		p.Password == nil && p.PhoneNumber == nil && p.Role == nil
}
