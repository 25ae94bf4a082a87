package models

import "time"

// Sponsor defines the sponsor profile based on the 'sponsors' table
type Sponsor struct {
	ID                int64      `json:"id" db:"id" example:"1"`          // Unique identifier for the profile record
	UserID            int64      `json:"userId" db:"user_id" example:"5"` // ID of the associated user account
	CompanyName       string     `json:"companyName" db:"company_name" example:"Acme Corp"`
	Website           string     `json:"website" db:"website" example:"https://acme.example.com"`
	SponsorshipAmount float64    `json:"sponsorshipAmount" db:"sponsorship_amount" example:"2500"`
	SponsorshipType   string     `json:"sponsorshipType" db:"sponsorship_type" example:"Gold"`
	StartDate         time.Time  `json:"startDate" db:"start_date"`
	EndDate           time.Time  `json:"endDate" db:"end_date"`
	ContractURL       *string    `json:"contractUrl,omitempty" db:"contract_url"`

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}

// SponsorPatch is a partial update for a Sponsor profile
type SponsorPatch struct {
	CompanyName       *string
	Website           *string
	SponsorshipAmount *float64
	SponsorshipType   *string
	StartDate         *time.Time
	EndDate           *time.Time
	ContractURL       *string
}

// Apply merges the patch into s, overwriting only the fields present in p.
func (p SponsorPatch) Apply(s *Sponsor) {
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.Website != nil {
		s.Website = *p.Website
	}
	if p.SponsorshipAmount != nil {
		s.SponsorshipAmount = *p.SponsorshipAmount
	}
	if p.SponsorshipType != nil {
		s.SponsorshipType = *p.SponsorshipType
	}
	if p.StartDate != nil {
		s.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		s.EndDate = *p.EndDate
	}
	if p.ContractURL != nil {
		s.ContractURL = p.ContractURL
	}
}
