package dto

// CreateEventRequest creates a new event owned by an event manager
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"` // RFC 3339 timestamp
}

// UpdateEventRequest is a merge-patch for an event
type UpdateEventRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Date         *string `json:"date,omitempty"`
	Status       *string `json:"status,omitempty"`
	ProgressNote *string `json:"progressNote,omitempty"`
	Progress     *int    `json:"progress,omitempty" binding:"omitempty,min=0,max=100"`
}

// AssignVolunteerRequest assigns a volunteer to an event
type AssignVolunteerRequest struct {
	VolunteerID int64 `json:"volunteerId" binding:"required,min=1"`
}

// EventResponse represents event information
type EventResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
	ProgressNote   *string `json:"progressNote,omitempty"`
	Progress       int     `json:"progress"`
	EventManagerID int64   `json:"eventManagerId"`
	VolunteerIDs   []int64 `json:"volunteerIds,omitempty"`
}
