package database

import (
	"database/sql"
	"strconv"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

const resultSelect = `
	SELECT r.id, r.student_id, r.subject_id, r.session_year_id, r.subject_marks, r.exam_marks,
		   r.final_grade, r.created_at, r.updated_at,
		   u.username, u.first_name, u.last_name,
		   sb.subject_name,
		   sy.start_date, sy.end_date
	FROM results r
	JOIN students st ON st.id = r.student_id
	JOIN users u ON u.id = st.user_id
	JOIN subjects sb ON sb.id = r.subject_id
	JOIN session_years sy ON sy.id = r.session_year_id`

func scanResultRows(rows *sql.Rows) ([]*models.Result, error) {
	results := []*models.Result{}
	for rows.Next() {
		r := &models.Result{
			Student:     &models.Student{User: &models.User{}},
			Subject:     &models.Subject{},
			SessionYear: &models.SessionYear{},
		}
		err := rows.Scan(
			&r.ID, &r.StudentID, &r.SubjectID, &r.SessionYearID, &r.SubjectMarks, &r.ExamMarks,
			&r.FinalGrade, &r.CreatedAt, &r.UpdatedAt,
			&r.Student.User.Username, &r.Student.User.FirstName, &r.Student.User.LastName,
			&r.Subject.SubjectName,
			&r.SessionYear.StartDate, &r.SessionYear.EndDate,
		)
		if err != nil {
			return nil, err
		}
		r.Student.ID = r.StudentID
		r.Subject.ID = r.SubjectID
		r.SessionYear.ID = r.SessionYearID
		results = append(results, r)
	}
	return results, rows.Err()
}

func CreateResult(db *sql.DB, result *models.Result) error {
	query := `INSERT INTO results (student_id, subject_id, session_year_id, subject_marks, exam_marks, final_grade)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, result.StudentID, result.SubjectID, result.SessionYearID,
		result.SubjectMarks, result.ExamMarks, result.FinalGrade).
		Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	return translateErr(err)
}

func UpdateResult(db *sql.DB, result *models.Result) error {
	query := `UPDATE results SET subject_marks = $1, exam_marks = $2, final_grade = $3, updated_at = now()
			  WHERE id = $4`
	res, err := db.Exec(query, result.SubjectMarks, result.ExamMarks, result.FinalGrade, result.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteResult(db *sql.DB, resultID string) error {
	res, err := db.Exec(`DELETE FROM results WHERE id = $1`, resultID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func GetResultByID(db *sql.DB, resultID string) (*models.Result, error) {
	rows, err := db.Query(resultSelect+` WHERE r.id = $1`, resultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results, err := scanResultRows(rows)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return results[0], nil
}

// ListResults returns results newest session first. When studentID is
// non-empty the listing is restricted to that student; the student view
// passes its own profile id here unconditionally.
func ListResults(db *sql.DB, studentID string, limit, offset int) ([]*models.Result, int, error) {
	where := ``
	args := []interface{}{}
	if studentID != "" {
		where = `WHERE r.student_id = $1`
		args = append(args, studentID)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM results r ` + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := resultSelect + ` ` + where + `
		ORDER BY sy.start_date DESC, u.username
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	results, err := scanResultRows(rows)
	return results, total, err
}

// CheckStudentResults is the admin lookup of one student's results for a
// course and session year.
func CheckStudentResults(db *sql.DB, courseID, sessionYearID, studentID string) ([]*models.Result, error) {
	rows, err := db.Query(resultSelect+`
		WHERE r.student_id = $1 AND r.session_year_id = $2 AND sb.course_id = $3
		ORDER BY sb.subject_name`, studentID, sessionYearID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResultRows(rows)
}
