package models

import "time"

type Course struct {
	ID         string    `json:"id"`
	CourseName string    `json:"course_name" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SessionYear is an academic session boundary. Overlapping sessions are
// not rejected.
type SessionYear struct {
	ID        string    `json:"id"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subject belongs to a course and optionally names the staff member
// teaching it.
type Subject struct {
	ID          string    `json:"id"`
	SubjectName string    `json:"subject_name" validate:"required"`
	CourseID    string    `json:"course_id" validate:"required"`
	StaffID     *string   `json:"staff_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Course      *Course   `json:"course,omitempty"`
	Staff       *Staff    `json:"staff,omitempty"`
}
