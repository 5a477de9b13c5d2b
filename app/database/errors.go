package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// ConflictError is a uniqueness violation translated to a message naming
// the conflicting constraint instead of leaking the raw database error.
type ConflictError struct {
	Constraint string
	Message    string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// conflictMessages maps unique constraint names from the schema to
// human-readable messages.
var conflictMessages = map[string]string{
	"users_username_key":                  "a user with this username already exists",
	"users_email_key":                     "a user with this email already exists",
	"courses_course_name_key":             "a course with this name already exists",
	"results_student_subject_session_key": "a result for this student in this subject and session already exists",
	"attendance_subject_session_date_key": "attendance for this subject, session and date already exists",
	"students_user_id_key":                "this user already has a student profile",
	"staff_user_id_key":                   "this user already has a staff profile",
}

// translateErr maps driver errors to the package's error taxonomy.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			msg, ok := conflictMessages[pqErr.Constraint]
			if !ok {
				msg = "a record with these values already exists"
			}
			return &ConflictError{Constraint: pqErr.Constraint, Message: msg}
		case "23503":
			return &ConflictError{
				Constraint: pqErr.Constraint,
				Message:    "this record is referenced by other records and cannot be removed",
			}
		case "22P02":
			// a malformed uuid in an id parameter can never match a row
			return ErrNotFound
		}
	}
	return err
}

// IsUniqueViolation reports whether err is a uniqueness conflict, either
// already translated or straight from the driver.
func IsUniqueViolation(err error) bool {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
