package models

// EventManager defines the event manager profile based on the 'event_managers' table
type EventManager struct {
	ID                int64   `json:"id" db:"id" example:"1"`          // Unique identifier for the profile record
	UserID            int64   `json:"userId" db:"user_id" example:"5"` // ID of the associated user account
	Position          string  `json:"position" db:"position" example:"Lead Coordinator"`
	Organization      string  `json:"organization" db:"organization" example:"City Events Co."`
	Bio               *string `json:"bio,omitempty" db:"bio"`
	Specialization    *string `json:"specialization,omitempty" db:"specialization"`
	YearsOfExperience *int    `json:"yearsOfExperience,omitempty" db:"years_of_experience"`
	ProfilePicture    *string `json:"profilePicture,omitempty" db:"profile_picture"` // Stored filename of the uploaded picture

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}

// EventManagerPatch is a partial update for an EventManager profile
type EventManagerPatch struct {
	Position          *string
	Organization      *string
	Bio               *string
	Specialization    *string
	YearsOfExperience *int
	ProfilePicture    *string
}

// Apply merges the patch into m, overwriting only the fields present in p.
func (p EventManagerPatch) Apply(m *EventManager) {
	if p.Position != nil {
		m.Position = *p.Position
	}
	if p.Organization != nil {
		m.Organization = *p.Organization
	}
	if p.Bio != nil {
		m.Bio = p.Bio
	}
	if p.Specialization != nil {
		m.Specialization = p.Specialization
	}
	if p.YearsOfExperience != nil {
		m.YearsOfExperience = p.YearsOfExperience
	}
	if p.ProfilePicture != nil {
		m.ProfilePicture = p.ProfilePicture
	}
}
