package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
)

func TestTranslateErr(t *testing.T) {
	opaque := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows becomes not found", sql.ErrNoRows, ErrNotFound},
		{"malformed uuid becomes not found", &pq.Error{Code: "22P02"}, ErrNotFound},
		{"other errors pass through", opaque, opaque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateErr(tt.in); !errors.Is(got, tt.want) {
				t.Errorf("translateErr(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTranslateErrUniqueViolation(t *testing.T) {
	err := translateErr(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Constraint != "users_username_key" {
		t.Errorf("constraint = %q", conflict.Constraint)
	}
	if conflict.Message != "a user with this username already exists" {
		t.Errorf("message = %q", conflict.Message)
	}
	if !IsUniqueViolation(err) {
		t.Error("IsUniqueViolation = false for translated conflict")
	}

	unknown := translateErr(&pq.Error{Code: "23505", Constraint: "mystery_key"})
	if !errors.As(unknown, &conflict) {
		t.Fatalf("expected ConflictError for unknown constraint, got %v", unknown)
	}
	if conflict.Message != "a record with these values already exists" {
		t.Errorf("unknown constraint message = %q", conflict.Message)
	}
}

func TestTranslateErrForeignKeyViolation(t *testing.T) {
	err := translateErr(&pq.Error{Code: "23503", Constraint: "subjects_course_id_fkey"})

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Message != "this record is referenced by other records and cannot be removed" {
		t.Errorf("message = %q", conflict.Message)
	}
}
