package database

import (
	"database/sql"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

// CourseCount is a per-course aggregate for the admin dashboard charts.
type CourseCount struct {
	CourseName string `json:"course_name"`
	Count      int    `json:"count"`
}

// AdminStats backs the admin dashboard.
type AdminStats struct {
	TotalStudents     int           `json:"total_students"`
	TotalStaff        int           `json:"total_staff"`
	TotalCourses      int           `json:"total_courses"`
	TotalSubjects     int           `json:"total_subjects"`
	PendingUsers      int           `json:"pending_users"`
	StudentsPerCourse []CourseCount `json:"students_per_course"`
	SubjectsPerCourse []CourseCount `json:"subjects_per_course"`
}

func GetAdminStats(db *sql.DB) (*AdminStats, error) {
	stats := &AdminStats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM students`, &stats.TotalStudents},
		{`SELECT COUNT(*) FROM staff`, &stats.TotalStaff},
		{`SELECT COUNT(*) FROM courses`, &stats.TotalCourses},
		{`SELECT COUNT(*) FROM subjects`, &stats.TotalSubjects},
		{`SELECT COUNT(*) FROM users WHERE is_active = false`, &stats.PendingUsers},
	}
	for _, c := range counts {
		if err := db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	var err error
	stats.StudentsPerCourse, err = courseCounts(db, `
		SELECT COALESCE(c.course_name, 'Unassigned'), COUNT(st.id)
		FROM students st LEFT JOIN courses c ON c.id = st.course_id
		GROUP BY c.course_name ORDER BY c.course_name`)
	if err != nil {
		return nil, err
	}

	stats.SubjectsPerCourse, err = courseCounts(db, `
		SELECT c.course_name, COUNT(sb.id)
		FROM subjects sb JOIN courses c ON c.id = sb.course_id
		GROUP BY c.course_name ORDER BY c.course_name`)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func courseCounts(db *sql.DB, query string) ([]CourseCount, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []CourseCount{}
	for rows.Next() {
		var cc CourseCount
		if err := rows.Scan(&cc.CourseName, &cc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, cc)
	}
	return counts, rows.Err()
}

// StaffStats backs the staff dashboard: the subjects the staff member
// teaches and the students enrolled across the courses of those
// subjects.
type StaffStats struct {
	SubjectsTaught    int `json:"subjects_taught"`
	StudentsInCourses int `json:"students_in_courses"`
	PendingLeaves     int `json:"pending_leaves"`
	FeedbackSent      int `json:"feedback_sent"`
}

func GetStaffStats(db *sql.DB, staffID, userID string) (*StaffStats, error) {
	stats := &StaffStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM subjects WHERE staff_id = $1`, staffID).Scan(&stats.SubjectsTaught)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COUNT(*) FROM students
		WHERE course_id IN (SELECT DISTINCT course_id FROM subjects WHERE staff_id = $1)`, staffID).
		Scan(&stats.StudentsInCourses)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM leaves WHERE user_id = $1 AND status = 0`, userID).Scan(&stats.PendingLeaves)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM feedback WHERE user_id = $1`, userID).Scan(&stats.FeedbackSent)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// GetStudentsForStaff lists the students across every course the staff
// member teaches a subject in.
func GetStudentsForStaff(db *sql.DB, staffID string) ([]*models.Student, error) {
	rows, err := db.Query(studentSelect+`
		WHERE st.course_id IN (SELECT DISTINCT course_id FROM subjects WHERE staff_id = $1)
		ORDER BY u.first_name`, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudentRows(rows)
}
