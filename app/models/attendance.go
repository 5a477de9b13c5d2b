package models

import "time"

// Attendance is the per-class-session header. At most one row exists per
// (subject, session year, date); the triple is unique at the schema level.
type Attendance struct {
	ID             string       `json:"id"`
	SubjectID      string       `json:"subject_id"`
	SessionYearID  string       `json:"session_year_id"`
	AttendanceDate time.Time    `json:"attendance_date"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Subject        *Subject     `json:"subject,omitempty"`
	SessionYear    *SessionYear `json:"session_year,omitempty"`
}

// AttendanceReport is one student's line under a header. Every submit
// rewrites the full report set for its header, so the set always matches
// the roster resolved at submission time.
type AttendanceReport struct {
	ID            string      `json:"id"`
	StudentUserID string      `json:"student_user_id"`
	AttendanceID  string      `json:"attendance_id"`
	Status        bool        `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	Student       *User       `json:"student,omitempty"`
	Attendance    *Attendance `json:"attendance,omitempty"`
}
