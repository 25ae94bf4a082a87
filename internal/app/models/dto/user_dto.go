package dto

// UserResponse represents basic user information
type UserResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	UserEmail   string `json:"userEmail"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	IsActive    string `json:"isActive"`
}

// UpdateUserRequest represents a merge-patch for a user. Absent fields
// leave the stored row untouched.
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty"`
	Username    *string `json:"username,omitempty" binding:"omitempty,min=3"`
	UserEmail   *string `json:"userEmail,omitempty" binding:"omitempty,email"`
	Password    *string `json:"password,omitempty" binding:"omitempty,min=8"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Role        *string `json:"role,omitempty" binding:"omitempty,oneof=EventManager Volunteer Sponsor"`
}

// UpdateStatusRequest sets a user's activity status
type UpdateStatusRequest struct {
	IsActive string `json:"isActive" binding:"required"`
}

// UserListResponse represents an ordered list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
