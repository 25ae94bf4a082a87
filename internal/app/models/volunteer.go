package models

// Volunteer defines the volunteer profile based on the 'volunteers' table
type Volunteer struct {
	ID         int64   `json:"id" db:"id" example:"1"`          // Unique identifier for the profile record
	UserID     int64   `json:"userId" db:"user_id" example:"5"` // ID of the associated user account
	Experience *string `json:"experience,omitempty" db:"experience"`
	Skills     *string `json:"skills,omitempty" db:"skills"`

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}

// VolunteerPatch is a partial update for a Volunteer profile
type VolunteerPatch struct {
	Experience *string
	Skills     *string
}

// Apply merges the patch into v, overwriting only the fields present in p.
func (p VolunteerPatch) Apply(v *Volunteer) {
	if p.Experience != nil {
		v.Experience = p.Experience
	}
	if p.Skills != nil {
		v.Skills = p.Skills
	}
}
