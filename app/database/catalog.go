package database

import (
	"database/sql"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

// Courses

func CreateCourse(db *sql.DB, course *models.Course) error {
	query := `INSERT INTO courses (course_name) VALUES ($1) RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, course.CourseName).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	return translateErr(err)
}

func ListCourses(db *sql.DB, limit, offset int) ([]*models.Course, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, course_name, created_at, updated_at FROM courses
			  ORDER BY course_name LIMIT $1 OFFSET $2`
	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.CourseName, &course.CreatedAt, &course.UpdatedAt); err != nil {
			return nil, 0, err
		}
		courses = append(courses, course)
	}
	return courses, total, rows.Err()
}

func GetCourseByID(db *sql.DB, courseID string) (*models.Course, error) {
	course := &models.Course{}
	query := `SELECT id, course_name, created_at, updated_at FROM courses WHERE id = $1`
	err := db.QueryRow(query, courseID).Scan(&course.ID, &course.CourseName, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return course, nil
}

func UpdateCourse(db *sql.DB, course *models.Course) error {
	query := `UPDATE courses SET course_name = $1, updated_at = now() WHERE id = $2`
	res, err := db.Exec(query, course.CourseName, course.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteCourse(db *sql.DB, courseID string) error {
	res, err := db.Exec(`DELETE FROM courses WHERE id = $1`, courseID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Session years

func CreateSessionYear(db *sql.DB, sy *models.SessionYear) error {
	query := `INSERT INTO session_years (start_date, end_date) VALUES ($1, $2) RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, sy.StartDate, sy.EndDate).Scan(&sy.ID, &sy.CreatedAt, &sy.UpdatedAt)
	return translateErr(err)
}

func ListSessionYears(db *sql.DB, limit, offset int) ([]*models.SessionYear, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM session_years`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, start_date, end_date, created_at, updated_at FROM session_years
			  ORDER BY start_date DESC LIMIT $1 OFFSET $2`
	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	years := []*models.SessionYear{}
	for rows.Next() {
		sy := &models.SessionYear{}
		if err := rows.Scan(&sy.ID, &sy.StartDate, &sy.EndDate, &sy.CreatedAt, &sy.UpdatedAt); err != nil {
			return nil, 0, err
		}
		years = append(years, sy)
	}
	return years, total, rows.Err()
}

func GetSessionYearByID(db *sql.DB, sessionYearID string) (*models.SessionYear, error) {
	sy := &models.SessionYear{}
	query := `SELECT id, start_date, end_date, created_at, updated_at FROM session_years WHERE id = $1`
	err := db.QueryRow(query, sessionYearID).Scan(&sy.ID, &sy.StartDate, &sy.EndDate, &sy.CreatedAt, &sy.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return sy, nil
}

func UpdateSessionYear(db *sql.DB, sy *models.SessionYear) error {
	query := `UPDATE session_years SET start_date = $1, end_date = $2, updated_at = now() WHERE id = $3`
	res, err := db.Exec(query, sy.StartDate, sy.EndDate, sy.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteSessionYear(db *sql.DB, sessionYearID string) error {
	res, err := db.Exec(`DELETE FROM session_years WHERE id = $1`, sessionYearID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Subjects

const subjectSelect = `
	SELECT sb.id, sb.subject_name, sb.course_id, sb.staff_id, sb.created_at, sb.updated_at,
		   c.course_name,
		   u.first_name, u.last_name
	FROM subjects sb
	JOIN courses c ON c.id = sb.course_id
	LEFT JOIN staff sf ON sf.id = sb.staff_id
	LEFT JOIN users u ON u.id = sf.user_id`

func scanSubjectRows(rows *sql.Rows) ([]*models.Subject, error) {
	subjects := []*models.Subject{}
	for rows.Next() {
		sb := &models.Subject{Course: &models.Course{}}
		var teacherFirst, teacherLast sql.NullString
		err := rows.Scan(
			&sb.ID, &sb.SubjectName, &sb.CourseID, &sb.StaffID, &sb.CreatedAt, &sb.UpdatedAt,
			&sb.Course.CourseName,
			&teacherFirst, &teacherLast,
		)
		if err != nil {
			return nil, err
		}
		sb.Course.ID = sb.CourseID
		if sb.StaffID != nil {
			sb.Staff = &models.Staff{
				ID:   *sb.StaffID,
				User: &models.User{FirstName: teacherFirst.String, LastName: teacherLast.String},
			}
		}
		subjects = append(subjects, sb)
	}
	return subjects, rows.Err()
}

func CreateSubject(db *sql.DB, subject *models.Subject) error {
	query := `INSERT INTO subjects (subject_name, course_id, staff_id) VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, subject.SubjectName, subject.CourseID, subject.StaffID).
		Scan(&subject.ID, &subject.CreatedAt, &subject.UpdatedAt)
	return translateErr(err)
}

func ListSubjects(db *sql.DB, limit, offset int) ([]*models.Subject, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM subjects`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(subjectSelect+` ORDER BY sb.subject_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	subjects, err := scanSubjectRows(rows)
	return subjects, total, err
}

func GetSubjectByID(db *sql.DB, subjectID string) (*models.Subject, error) {
	rows, err := db.Query(subjectSelect+` WHERE sb.id = $1`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects, err := scanSubjectRows(rows)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, ErrNotFound
	}
	return subjects[0], nil
}

func UpdateSubject(db *sql.DB, subject *models.Subject) error {
	query := `UPDATE subjects SET subject_name = $1, course_id = $2, staff_id = $3, updated_at = now() WHERE id = $4`
	res, err := db.Exec(query, subject.SubjectName, subject.CourseID, subject.StaffID, subject.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteSubject(db *sql.DB, subjectID string) error {
	res, err := db.Exec(`DELETE FROM subjects WHERE id = $1`, subjectID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
