package database

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

// SubmitAttendance records attendance for every student enrolled in the
// subject's course for the session year, as one atomic transaction:
// header upsert, delete of all existing reports for the header, then one
// insert per roster member. The roster is re-resolved here rather than
// trusted from the caller, and students missing from statuses are
// recorded absent. Any failure rolls the whole submission back.
func SubmitAttendance(db *sql.DB, subjectID, sessionYearID string, date time.Time, statuses map[string]bool) (*models.Attendance, int, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	var courseID string
	err = tx.QueryRow(`SELECT course_id FROM subjects WHERE id = $1`, subjectID).Scan(&courseID)
	if err != nil {
		return nil, 0, translateErr(err)
	}

	// The unique triple makes concurrent submits converge on one header:
	// the second writer lands on the first writer's row instead of
	// creating a duplicate.
	header := &models.Attendance{SubjectID: subjectID, SessionYearID: sessionYearID}
	err = tx.QueryRow(`
		INSERT INTO attendance (subject_id, session_year_id, attendance_date)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT attendance_subject_session_date_key
		DO UPDATE SET updated_at = now()
		RETURNING id, attendance_date, created_at, updated_at`,
		subjectID, sessionYearID, date).
		Scan(&header.ID, &header.AttendanceDate, &header.CreatedAt, &header.UpdatedAt)
	if err != nil {
		return nil, 0, translateErr(err)
	}

	if _, err := tx.Exec(`DELETE FROM attendance_reports WHERE attendance_id = $1`, header.ID); err != nil {
		return nil, 0, err
	}

	rows, err := tx.Query(`
		SELECT st.user_id FROM students st
		JOIN users u ON u.id = st.user_id
		WHERE st.course_id = $1 AND st.session_year_id = $2
		ORDER BY u.first_name, u.last_name`, courseID, sessionYearID)
	if err != nil {
		return nil, 0, err
	}
	roster := []string{}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			rows.Close()
			return nil, 0, err
		}
		roster = append(roster, userID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, 0, err
	}
	rows.Close()

	for _, userID := range roster {
		_, err := tx.Exec(`
			INSERT INTO attendance_reports (student_user_id, attendance_id, status)
			VALUES ($1, $2, $3)`, userID, header.ID, statuses[userID])
		if err != nil {
			return nil, 0, translateErr(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}
	return header, len(roster), nil
}

// ListAttendance returns attendance headers for the admin overview,
// newest date first.
func ListAttendance(db *sql.DB, limit, offset int) ([]*models.Attendance, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM attendance`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT a.id, a.subject_id, a.session_year_id, a.attendance_date, a.created_at, a.updated_at,
			   sb.subject_name, sy.start_date, sy.end_date
		FROM attendance a
		JOIN subjects sb ON sb.id = a.subject_id
		JOIN session_years sy ON sy.id = a.session_year_id
		ORDER BY a.attendance_date DESC, sb.subject_name
		LIMIT $1 OFFSET $2`
	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	headers := []*models.Attendance{}
	for rows.Next() {
		a := &models.Attendance{Subject: &models.Subject{}, SessionYear: &models.SessionYear{}}
		err := rows.Scan(
			&a.ID, &a.SubjectID, &a.SessionYearID, &a.AttendanceDate, &a.CreatedAt, &a.UpdatedAt,
			&a.Subject.SubjectName, &a.SessionYear.StartDate, &a.SessionYear.EndDate,
		)
		if err != nil {
			return nil, 0, err
		}
		a.Subject.ID = a.SubjectID
		a.SessionYear.ID = a.SessionYearID
		headers = append(headers, a)
	}
	return headers, total, rows.Err()
}

// ListReports returns attendance reports for the viewer, most recent
// attendance date first. Students only ever see their own rows; the
// filter comes from the authenticated viewer, not from parameters.
func ListReports(db *sql.DB, viewer *models.User, limit, offset int) ([]*models.AttendanceReport, int, error) {
	where := ``
	args := []interface{}{}
	if viewer.Role == models.RoleStudent {
		where = `WHERE r.student_user_id = $1`
		args = append(args, viewer.ID)
	}

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM attendance_reports r `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT r.id, r.student_user_id, r.attendance_id, r.status, r.created_at, r.updated_at,
			   u.username, u.first_name, u.last_name,
			   a.attendance_date, sb.subject_name
		FROM attendance_reports r
		JOIN users u ON u.id = r.student_user_id
		JOIN attendance a ON a.id = r.attendance_id
		JOIN subjects sb ON sb.id = a.subject_id
		` + where + `
		ORDER BY a.attendance_date DESC, u.first_name
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reports := []*models.AttendanceReport{}
	for rows.Next() {
		r := &models.AttendanceReport{
			Student:    &models.User{},
			Attendance: &models.Attendance{Subject: &models.Subject{}},
		}
		err := rows.Scan(
			&r.ID, &r.StudentUserID, &r.AttendanceID, &r.Status, &r.CreatedAt, &r.UpdatedAt,
			&r.Student.Username, &r.Student.FirstName, &r.Student.LastName,
			&r.Attendance.AttendanceDate, &r.Attendance.Subject.SubjectName,
		)
		if err != nil {
			return nil, 0, err
		}
		r.Student.ID = r.StudentUserID
		r.Attendance.ID = r.AttendanceID
		reports = append(reports, r)
	}
	return reports, total, rows.Err()
}

// CountReports returns the number of reports under a header.
func CountReports(db *sql.DB, attendanceID string) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM attendance_reports WHERE attendance_id = $1`, attendanceID).Scan(&n)
	return n, err
}
