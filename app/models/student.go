package models

import "time"

// Student is the role-specific profile owned by a user with role student.
// Course and session year are nullable: a student may be unassigned.
type Student struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	Gender        string       `json:"gender"`
	Address       string       `json:"address"`
	DateOfBirth   *time.Time   `json:"date_of_birth,omitempty"`
	CourseID      *string      `json:"course_id,omitempty"`
	SessionYearID *string      `json:"session_year_id,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	User          *User        `json:"user,omitempty"`
	Course        *Course      `json:"course,omitempty"`
	SessionYear   *SessionYear `json:"session_year,omitempty"`
}
