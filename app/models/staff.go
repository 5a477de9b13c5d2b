package models

import "time"

// Staff is the role-specific profile owned by a user with role staff.
type Staff struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Gender      string     `json:"gender"`
	Address     string     `json:"address"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	User        *User      `json:"user,omitempty"`
}
