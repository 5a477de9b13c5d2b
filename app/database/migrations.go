package database

import (
	"database/sql"
	"log"
)

// RunMigrations applies the schema. Every statement is idempotent so the
// function is safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username VARCHAR(150) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		first_name VARCHAR(100) NOT NULL DEFAULT '',
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		role VARCHAR(10) NOT NULL CHECK (role IN ('admin', 'staff', 'student')),
		is_active BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT users_username_key UNIQUE (username),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS sessions_user_id_idx ON sessions(user_id)`,

	`CREATE TABLE IF NOT EXISTS courses (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		course_name VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT courses_course_name_key UNIQUE (course_name)
	)`,

	`CREATE TABLE IF NOT EXISTS session_years (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS staff (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		gender VARCHAR(20) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		date_of_birth DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT staff_user_id_key UNIQUE (user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		gender VARCHAR(20) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		date_of_birth DATE,
		course_id UUID REFERENCES courses(id),
		session_year_id UUID REFERENCES session_years(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT students_user_id_key UNIQUE (user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS students_course_session_idx ON students(course_id, session_year_id)`,

	`CREATE TABLE IF NOT EXISTS subjects (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		subject_name VARCHAR(255) NOT NULL,
		course_id UUID NOT NULL REFERENCES courses(id),
		staff_id UUID REFERENCES staff(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS attendance (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		subject_id UUID NOT NULL REFERENCES subjects(id),
		session_year_id UUID NOT NULL REFERENCES session_years(id) ON DELETE CASCADE,
		attendance_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT attendance_subject_session_date_key UNIQUE (subject_id, session_year_id, attendance_date)
	)`,

	`CREATE TABLE IF NOT EXISTS attendance_reports (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		attendance_id UUID NOT NULL REFERENCES attendance(id) ON DELETE CASCADE,
		status BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS attendance_reports_attendance_idx ON attendance_reports(attendance_id)`,
	`CREATE INDEX IF NOT EXISTS attendance_reports_student_idx ON attendance_reports(student_user_id)`,

	`CREATE TABLE IF NOT EXISTS results (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		session_year_id UUID NOT NULL REFERENCES session_years(id) ON DELETE CASCADE,
		subject_marks DOUBLE PRECISION NOT NULL DEFAULT 0,
		exam_marks DOUBLE PRECISION NOT NULL DEFAULT 0,
		final_grade VARCHAR(10),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT results_student_subject_session_key UNIQUE (student_id, subject_id, session_year_id)
	)`,

	`CREATE TABLE IF NOT EXISTS leaves (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		leave_date DATE NOT NULL,
		message TEXT NOT NULL,
		status INT NOT NULL DEFAULT 0 CHECK (status IN (0, 1, 2)),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		subject VARCHAR(255) NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		reply TEXT,
		status BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}
