package models

// UserRole defines the role a user account holds
type UserRole string

const (
	RoleEventManager UserRole = "EventManager"
	RoleVolunteer    UserRole = "Volunteer"
	RoleSponsor      UserRole = "Sponsor"
)

// ValidRole reports whether r is a member of the UserRole enum
func ValidRole(r UserRole) bool {
	switch r {
	case RoleEventManager, RoleVolunteer, RoleSponsor:
		return true
	}
	return false
}

// UserStatus defines the activity state of a user account
type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

// ValidStatus reports whether s is a member of the UserStatus enum
func ValidStatus(s UserStatus) bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}

// EventStatus defines the lifecycle state of an event
type EventStatus string

const (
	EventPending    EventStatus = "Pending"
	EventInProgress EventStatus = "In Progress"
	EventCompleted  EventStatus = "Completed"
	EventCancelled  EventStatus = "Cancelled"
)

// ValidEventStatus reports whether s is a member of the EventStatus enum
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventPending, EventInProgress, EventCompleted, EventCancelled:
		return true
	}
	return false
}
