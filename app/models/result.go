package models

import "time"

// Result stores a student's marks for a subject in a session year. One
// row per (student, subject, session year), enforced by the schema.
type Result struct {
	ID            string       `json:"id"`
	StudentID     string       `json:"student_id" validate:"required"`
	SubjectID     string       `json:"subject_id" validate:"required"`
	SessionYearID string       `json:"session_year_id" validate:"required"`
	SubjectMarks  float64      `json:"subject_marks" validate:"gte=0"`
	ExamMarks     float64      `json:"exam_marks" validate:"gte=0"`
	FinalGrade    *string      `json:"final_grade,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Student       *Student     `json:"student,omitempty"`
	Subject       *Subject     `json:"subject,omitempty"`
	SessionYear   *SessionYear `json:"session_year,omitempty"`
}
