package database

import (
	"database/sql"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

const studentSelect = `
	SELECT st.id, st.user_id, st.gender, st.address, st.date_of_birth, st.course_id, st.session_year_id,
		   st.created_at, st.updated_at,
		   u.id, u.username, u.email, u.first_name, u.last_name, u.role, u.is_active,
		   c.id, c.course_name,
		   sy.id, sy.start_date, sy.end_date
	FROM students st
	JOIN users u ON u.id = st.user_id
	LEFT JOIN courses c ON c.id = st.course_id
	LEFT JOIN session_years sy ON sy.id = st.session_year_id`

func scanStudentRows(rows *sql.Rows) ([]*models.Student, error) {
	students := []*models.Student{}
	for rows.Next() {
		st := &models.Student{User: &models.User{}}
		var courseID, courseName, sessionID sql.NullString
		var sessionStart, sessionEnd sql.NullTime
		err := rows.Scan(
			&st.ID, &st.UserID, &st.Gender, &st.Address, &st.DateOfBirth, &st.CourseID, &st.SessionYearID,
			&st.CreatedAt, &st.UpdatedAt,
			&st.User.ID, &st.User.Username, &st.User.Email, &st.User.FirstName, &st.User.LastName,
			&st.User.Role, &st.User.IsActive,
			&courseID, &courseName,
			&sessionID, &sessionStart, &sessionEnd,
		)
		if err != nil {
			return nil, err
		}
		if courseID.Valid {
			st.Course = &models.Course{ID: courseID.String, CourseName: courseName.String}
		}
		if sessionID.Valid {
			st.SessionYear = &models.SessionYear{ID: sessionID.String, StartDate: sessionStart.Time, EndDate: sessionEnd.Time}
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

func ListStudents(db *sql.DB, limit, offset int) ([]*models.Student, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(studentSelect+` ORDER BY u.username LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students, err := scanStudentRows(rows)
	return students, total, err
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	rows, err := db.Query(studentSelect+` WHERE st.id = $1`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students, err := scanStudentRows(rows)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, ErrNotFound
	}
	return students[0], nil
}

func GetStudentByUserID(db *sql.DB, userID string) (*models.Student, error) {
	rows, err := db.Query(studentSelect+` WHERE st.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students, err := scanStudentRows(rows)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, ErrNotFound
	}
	return students[0], nil
}

// UpdateStudent writes the identity row and the profile row in one
// transaction so neither can land without the other. The role is never
// touched. hashedPassword is optional; empty keeps the current password.
func UpdateStudent(db *sql.DB, student *models.Student, user *models.User, hashedPassword string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE users SET username = $1, email = $2, first_name = $3, last_name = $4, updated_at = now()
			  WHERE id = $5`
	if _, err := tx.Exec(query, user.Username, user.Email, user.FirstName, user.LastName, student.UserID); err != nil {
		return translateErr(err)
	}

	if hashedPassword != "" {
		if _, err := tx.Exec(`UPDATE users SET password = $1 WHERE id = $2`, hashedPassword, student.UserID); err != nil {
			return translateErr(err)
		}
	}

	query = `UPDATE students SET gender = $1, address = $2, date_of_birth = $3, course_id = $4,
			 session_year_id = $5, updated_at = now() WHERE id = $6`
	res, err := tx.Exec(query, student.Gender, student.Address, student.DateOfBirth,
		student.CourseID, student.SessionYearID, student.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// DeleteStudent removes the owning identity; the profile and the
// student's reports cascade with it.
func DeleteStudent(db *sql.DB, studentID string) error {
	student, err := GetStudentByID(db, studentID)
	if err != nil {
		return err
	}
	_, err = db.Exec(`DELETE FROM users WHERE id = $1`, student.UserID)
	return translateErr(err)
}

// GetRoster resolves the students enrolled in a course for a session
// year, ordered by name. An empty roster is a valid result.
func GetRoster(db *sql.DB, courseID, sessionYearID string) ([]*models.Student, error) {
	rows, err := db.Query(studentSelect+`
		WHERE st.course_id = $1 AND st.session_year_id = $2
		ORDER BY u.first_name, u.last_name`, courseID, sessionYearID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudentRows(rows)
}
