package models

import (
	"testing"
	"time"
)

func TestUserPatchApply(t *testing.T) {
	u := &User{
		Name:      "Amy Pond",
		Username:  "amy1",
		UserEmail: "amy@example.com",
		Role:      RoleVolunteer,
	}

	name := "Amelia Pond"
	role := RoleSponsor
	UserPatch{Name: &name, Role: &role}.Apply(u)

	if u.Name != "Amelia Pond" {
		t.Errorf("Name = %q, want patched value", u.Name)
	}
	if u.Role != RoleSponsor {
		t.Errorf("Role = %q, want patched value", u.Role)
	}
	if u.Username != "amy1" || u.UserEmail != "amy@example.com" {
		t.Error("absent patch fields changed the row")
	}
}

func TestUserPatchIsEmpty(t *testing.T) {
	if !(UserPatch{}).IsEmpty() {
		t.Error("zero patch must be empty")
	}

	name := "x"
	if (UserPatch{Name: &name}).IsEmpty() {
		t.Error("patch with a field must not be empty")
	}
}

func TestEventPatchApply(t *testing.T) {
	e := &Event{
		Name:     "Charity Gala",
		Status:   EventPending,
		Progress: 0,
		Date:     time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC),
	}

	status := EventInProgress
	progress := 40
	note := "venue booked"
	EventPatch{Status: &status, Progress: &progress, ProgressNote: &note}.Apply(e)

	if e.Status != EventInProgress {
		t.Errorf("Status = %q, want In Progress", e.Status)
	}
	if e.Progress != 40 {
		t.Errorf("Progress = %d, want 40", e.Progress)
	}
	if e.ProgressNote == nil || *e.ProgressNote != "venue booked" {
		t.Errorf("ProgressNote = %v", e.ProgressNote)
	}
	if e.Name != "Charity Gala" || !e.Date.Equal(time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC)) {
		t.Error("absent patch fields changed the event")
	}
}

func TestEnumValidation(t *testing.T) {
	if !ValidRole(RoleEventManager) || !ValidRole(RoleVolunteer) || !ValidRole(RoleSponsor) {
		t.Error("enum members rejected")
	}
	if ValidRole(UserRole("Admin")) || ValidRole(UserRole("")) {
		t.Error("unknown role accepted")
	}

	if !ValidStatus(StatusActive) || !ValidStatus(StatusInactive) {
		t.Error("enum members rejected")
	}
	if ValidStatus(UserStatus("active")) {
		t.Error("status enum must be case sensitive")
	}

	if !ValidEventStatus(EventInProgress) {
		t.Error("In Progress rejected")
	}
	if ValidEventStatus(EventStatus("Postponed")) {
		t.Error("unknown event status accepted")
	}
}
