package dto

// CreateEventManagerRequest completes an event manager profile after registration
type CreateEventManagerRequest struct {
	Position          string  `json:"position" binding:"required"`
	Organization      string  `json:"organization" binding:"required"`
	Bio               *string `json:"bio,omitempty"`
	Specialization    *string `json:"specialization,omitempty"`
	YearsOfExperience *int    `json:"yearsOfExperience,omitempty" binding:"omitempty,min=0"`
}

// UpdateEventManagerRequest is a merge-patch for an event manager profile
type UpdateEventManagerRequest struct {
	Position          *string `json:"position,omitempty"`
	Organization      *string `json:"organization,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	Specialization    *string `json:"specialization,omitempty"`
	YearsOfExperience *int    `json:"yearsOfExperience,omitempty" binding:"omitempty,min=0"`
}

// CreateVolunteerRequest completes a volunteer profile after registration
type CreateVolunteerRequest struct {
	Experience *string `json:"experience,omitempty"`
	Skills     *string `json:"skills,omitempty"`
}

// UpdateVolunteerRequest is a merge-patch for a volunteer profile
type UpdateVolunteerRequest struct {
	Experience *string `json:"experience,omitempty"`
	Skills     *string `json:"skills,omitempty"`
}

// CreateSponsorRequest completes a sponsor profile after registration
type CreateSponsorRequest struct {
	CompanyName       string  `json:"companyName" binding:"required"`
	Website           string  `json:"website" binding:"required,url"`
	SponsorshipAmount float64 `json:"sponsorshipAmount" binding:"required,gt=0"`
	SponsorshipType   string  `json:"sponsorshipType" binding:"required"`
	StartDate         string  `json:"startDate" binding:"required"` // RFC 3339 date
	EndDate           string  `json:"endDate" binding:"required"`   // RFC 3339 date
	ContractURL       *string `json:"contractUrl,omitempty"`
}

// UpdateSponsorRequest is a merge-patch for a sponsor profile
type UpdateSponsorRequest struct {
	CompanyName       *string  `json:"companyName,omitempty"`
	Website           *string  `json:"website,omitempty" binding:"omitempty,url"`
	SponsorshipAmount *float64 `json:"sponsorshipAmount,omitempty" binding:"omitempty,gt=0"`
	SponsorshipType   *string  `json:"sponsorshipType,omitempty"`
	StartDate         *string  `json:"startDate,omitempty"`
	EndDate           *string  `json:"endDate,omitempty"`
	ContractURL       *string  `json:"contractUrl,omitempty"`
}

// ProfilePictureResponse reports the stored filename after an upload
type ProfilePictureResponse struct {
	ProfilePicture string `json:"profilePicture"`
	FileURL        string `json:"fileUrl"`
}
