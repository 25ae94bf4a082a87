package models

import "time"

// Event defines the event model based on the 'events' table
type Event struct {
	ID             int64       `json:"id" db:"id" example:"1"`
	Name           string      `json:"name" db:"name" example:"Charity Gala"`
	Description    string      `json:"description" db:"description"`
	Date           time.Time   `json:"date" db:"date"`
	Status         EventStatus `json:"status" db:"status" example:"Pending"`
	ProgressNote   *string     `json:"progressNote,omitempty" db:"progress_note"`
	Progress       int         `json:"progress" db:"progress" example:"40"` // Completion percentage, 0-100
	EventManagerID int64       `json:"eventManagerId" db:"event_manager_id"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	EventManager *EventManager `json:"eventManager,omitempty"`
	VolunteerIDs []int64       `json:"volunteerIds,omitempty"`
}

// EventPatch is a partial update for an Event
type EventPatch struct {
	Name         *string
	Description  *string
	Date         *time.Time
	Status       *EventStatus
	ProgressNote *string
	Progress     *int
}

// Apply merges the patch into e, overwriting only the fields present in p.
func (p EventPatch) Apply(e *Event) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.ProgressNote != nil {
		e.ProgressNote = p.ProgressNote
	}
	if p.Progress != nil {
		e.Progress = *p.Progress
	}
}
