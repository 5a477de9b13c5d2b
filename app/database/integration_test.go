package database

import (
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

// Integration tests run against a throwaway Postgres pointed to by
// TEST_DATABASE_URL, e.g.
//
//	TEST_DATABASE_URL=postgres://postgres@localhost/sms_test?sslmode=disable go test ./app/database/
//
// They skip when the variable is unset.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping test database: %v", err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testUser(t *testing.T, db *sql.DB, role string, active bool) *models.User {
	t.Helper()
	tag := uuid.New().String()[:8]
	user := &models.User{
		Username:  role + "-" + tag,
		Email:     role + "-" + tag + "@example.com",
		Password:  "not-a-real-hash",
		FirstName: "Test",
		LastName:  role,
		Role:      role,
		IsActive:  active,
	}
	if err := CreateUser(db, user, nil, nil); err != nil {
		t.Fatalf("create %s user: %v", role, err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM users WHERE id = $1`, user.ID)
	})
	return user
}

func testCourse(t *testing.T, db *sql.DB) *models.Course {
	t.Helper()
	course := &models.Course{CourseName: "Course " + uuid.New().String()[:8]}
	if err := CreateCourse(db, course); err != nil {
		t.Fatalf("create course: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM courses WHERE id = $1`, course.ID)
	})
	return course
}

func testSessionYear(t *testing.T, db *sql.DB) *models.SessionYear {
	t.Helper()
	sy := &models.SessionYear{
		StartDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	if err := CreateSessionYear(db, sy); err != nil {
		t.Fatalf("create session year: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM session_years WHERE id = $1`, sy.ID)
	})
	return sy
}

func testSubject(t *testing.T, db *sql.DB, courseID string) *models.Subject {
	t.Helper()
	subject := &models.Subject{SubjectName: "Subject " + uuid.New().String()[:8], CourseID: courseID}
	if err := CreateSubject(db, subject); err != nil {
		t.Fatalf("create subject: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM subjects WHERE id = $1`, subject.ID)
	})
	return subject
}

func enrollStudent(t *testing.T, db *sql.DB, courseID, sessionYearID string) *models.User {
	t.Helper()
	user := testUser(t, db, models.RoleStudent, true)
	_, err := db.Exec(`UPDATE students SET course_id = $1, session_year_id = $2 WHERE user_id = $3`,
		courseID, sessionYearID, user.ID)
	if err != nil {
		t.Fatalf("enroll student: %v", err)
	}
	return user
}

func TestApproveUserIdempotent(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, models.RoleStaff, false)

	approved, activated, err := ApproveUser(db, user.ID)
	if err != nil {
		t.Fatalf("first approve: %v", err)
	}
	if !activated || !approved.IsActive {
		t.Error("first approve did not activate the account")
	}

	approved, activated, err = ApproveUser(db, user.ID)
	if err != nil {
		t.Fatalf("second approve: %v", err)
	}
	if activated {
		t.Error("second approve reported activation again")
	}
	if !approved.IsActive {
		t.Error("second approve deactivated the account")
	}
}

// A fresh signup stays locked out until an admin approves it, and the
// stored account reflects the flip immediately.
func TestSignupApprovalFlow(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, models.RoleStudent, false)

	stored, err := GetUserByUsername(db, user.Username)
	if err != nil {
		t.Fatalf("lookup after signup: %v", err)
	}
	if stored.IsActive {
		t.Fatal("self-registered account created active")
	}

	if _, _, err := ApproveUser(db, user.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	stored, err = GetUserByUsername(db, user.Username)
	if err != nil {
		t.Fatalf("lookup after approval: %v", err)
	}
	if !stored.IsActive {
		t.Error("account still inactive after approval")
	}
}

func TestApproveUserNotFound(t *testing.T) {
	db := testDB(t)
	_, _, err := ApproveUser(db, uuid.New().String())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, models.RoleStudent, false)

	dup := &models.User{
		Username: user.Username,
		Email:    "other-" + uuid.New().String()[:8] + "@example.com",
		Password: "not-a-real-hash",
		Role:     models.RoleStudent,
	}
	err := CreateUser(db, dup, nil, nil)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Constraint != "users_username_key" {
		t.Errorf("conflict constraint = %q", conflict.Constraint)
	}
}

func TestCreateUserMakesProfile(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, models.RoleStudent, false)

	student, err := GetStudentByUserID(db, user.ID)
	if err != nil {
		t.Fatalf("student profile missing after create: %v", err)
	}
	if student.UserID != user.ID {
		t.Errorf("profile user id = %q, want %q", student.UserID, user.ID)
	}
}

// Resubmitting attendance for the same subject, session year and date
// must fully replace the previous records under a single header.
func TestSubmitAttendanceReplaces(t *testing.T) {
	db := testDB(t)
	course := testCourse(t, db)
	sy := testSessionYear(t, db)
	subject := testSubject(t, db, course.ID)

	alice := enrollStudent(t, db, course.ID, sy.ID)
	bob := enrollStudent(t, db, course.ID, sy.ID)

	date := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)

	first, marked, err := SubmitAttendance(db, subject.ID, sy.ID, date, map[string]bool{alice.ID: true})
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if marked != 2 {
		t.Errorf("first submit marked %d students, want 2", marked)
	}

	second, _, err := SubmitAttendance(db, subject.ID, sy.ID, date, map[string]bool{bob.ID: true})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("resubmission produced a new header: %q vs %q", second.ID, first.ID)
	}

	n, err := CountReports(db, first.ID)
	if err != nil {
		t.Fatalf("count reports: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d reports after resubmission, want 2", n)
	}

	var aliceStatus, bobStatus bool
	if err := db.QueryRow(`SELECT status FROM attendance_reports WHERE attendance_id = $1 AND student_user_id = $2`,
		first.ID, alice.ID).Scan(&aliceStatus); err != nil {
		t.Fatalf("read alice report: %v", err)
	}
	if err := db.QueryRow(`SELECT status FROM attendance_reports WHERE attendance_id = $1 AND student_user_id = $2`,
		first.ID, bob.ID).Scan(&bobStatus); err != nil {
		t.Fatalf("read bob report: %v", err)
	}
	if aliceStatus || !bobStatus {
		t.Errorf("statuses not replaced: alice=%v bob=%v, want alice=false bob=true", aliceStatus, bobStatus)
	}
}

// Students missing from the statuses map are recorded absent, not
// skipped.
func TestSubmitAttendanceDefaultsAbsent(t *testing.T) {
	db := testDB(t)
	course := testCourse(t, db)
	sy := testSessionYear(t, db)
	subject := testSubject(t, db, course.ID)
	student := enrollStudent(t, db, course.ID, sy.ID)

	date := time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC)
	header, marked, err := SubmitAttendance(db, subject.ID, sy.ID, date, nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if marked != 1 {
		t.Errorf("marked %d, want 1", marked)
	}

	var status bool
	if err := db.QueryRow(`SELECT status FROM attendance_reports WHERE attendance_id = $1 AND student_user_id = $2`,
		header.ID, student.ID).Scan(&status); err != nil {
		t.Fatalf("read report: %v", err)
	}
	if status {
		t.Error("student without a status entry recorded present, want absent")
	}
}

// A submission that fails partway through reinsertion must leave the
// header's previous report set untouched.
func TestSubmitAttendanceRollsBackOnFailure(t *testing.T) {
	db := testDB(t)
	course := testCourse(t, db)
	sy := testSessionYear(t, db)
	subject := testSubject(t, db, course.ID)

	alice := enrollStudent(t, db, course.ID, sy.ID)
	bob := enrollStudent(t, db, course.ID, sy.ID)

	date := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)
	header, _, err := SubmitAttendance(db, subject.ID, sy.ID, date, map[string]bool{alice.ID: true, bob.ID: true})
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}

	// make absent rows unstorable so the resubmission fails on bob's
	// insert, after the delete and alice's insert already ran
	if _, err := db.Exec(`ALTER TABLE attendance_reports
		ADD CONSTRAINT attendance_reports_block_absent CHECK (status = true) NOT VALID`); err != nil {
		t.Fatalf("add blocking constraint: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`ALTER TABLE attendance_reports DROP CONSTRAINT IF EXISTS attendance_reports_block_absent`)
	})

	if _, _, err := SubmitAttendance(db, subject.ID, sy.ID, date, map[string]bool{alice.ID: true}); err == nil {
		t.Fatal("expected resubmission to fail")
	}

	n, err := CountReports(db, header.ID)
	if err != nil {
		t.Fatalf("count reports: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d reports after failed resubmission, want the original 2", n)
	}

	var bobStatus bool
	if err := db.QueryRow(`SELECT status FROM attendance_reports WHERE attendance_id = $1 AND student_user_id = $2`,
		header.ID, bob.ID).Scan(&bobStatus); err != nil {
		t.Fatalf("read bob report: %v", err)
	}
	if !bobStatus {
		t.Error("failed resubmission altered bob's status")
	}
}

// Concurrent submissions of the same triple must converge on a single
// header instead of racing into duplicates.
func TestSubmitAttendanceConcurrent(t *testing.T) {
	db := testDB(t)
	course := testCourse(t, db)
	sy := testSessionYear(t, db)
	subject := testSubject(t, db, course.ID)
	enrollStudent(t, db, course.ID, sy.ID)

	date := time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = SubmitAttendance(db, subject.ID, sy.ID, date, nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("submit %d failed: %v", i, err)
		}
	}

	var headers int
	err := db.QueryRow(`SELECT COUNT(*) FROM attendance
		WHERE subject_id = $1 AND session_year_id = $2 AND attendance_date = $3`,
		subject.ID, sy.ID, date).Scan(&headers)
	if err != nil {
		t.Fatalf("count headers: %v", err)
	}
	if headers != 1 {
		t.Errorf("got %d headers for the same triple, want 1", headers)
	}
}

// A student viewer only ever sees their own reports, whatever the
// listing is asked for.
func TestListReportsStudentIsolation(t *testing.T) {
	db := testDB(t)
	course := testCourse(t, db)
	sy := testSessionYear(t, db)
	subject := testSubject(t, db, course.ID)

	alice := enrollStudent(t, db, course.ID, sy.ID)
	bob := enrollStudent(t, db, course.ID, sy.ID)

	date := time.Date(2025, 10, 9, 0, 0, 0, 0, time.UTC)
	if _, _, err := SubmitAttendance(db, subject.ID, sy.ID, date, map[string]bool{alice.ID: true, bob.ID: true}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	reports, total, err := ListReports(db, alice, 100, 0)
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if total != 1 {
		t.Errorf("student viewer total = %d, want 1", total)
	}
	for _, r := range reports {
		if r.StudentUserID != alice.ID {
			t.Errorf("student viewer saw report for %q", r.StudentUserID)
		}
	}

	admin := testUser(t, db, models.RoleAdmin, true)
	_, adminTotal, err := ListReports(db, admin, 100, 0)
	if err != nil {
		t.Fatalf("admin list reports: %v", err)
	}
	if adminTotal < 2 {
		t.Errorf("admin viewer total = %d, want at least 2", adminTotal)
	}
}

func TestResultUniquePerStudentSubjectSession(t *testing.T) {
	db := testDB(t)
	course := testCourse(t, db)
	sy := testSessionYear(t, db)
	subject := testSubject(t, db, course.ID)
	user := enrollStudent(t, db, course.ID, sy.ID)

	profile, err := GetStudentByUserID(db, user.ID)
	if err != nil {
		t.Fatalf("student profile: %v", err)
	}

	result := &models.Result{StudentID: profile.ID, SubjectID: subject.ID, SessionYearID: sy.ID, SubjectMarks: 70, ExamMarks: 80}
	if err := CreateResult(db, result); err != nil {
		t.Fatalf("create result: %v", err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM results WHERE id = $1`, result.ID)
	})

	dup := &models.Result{StudentID: profile.ID, SubjectID: subject.ID, SessionYearID: sy.ID}
	if err := CreateResult(db, dup); !IsUniqueViolation(err) {
		t.Errorf("expected uniqueness conflict, got %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, models.RoleStaff, true)

	sessionID := uuid.New().String()
	if err := CreateSession(db, sessionID, user.ID, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("create session: %v", err)
	}

	got, err := GetSessionUser(db, sessionID)
	if err != nil {
		t.Fatalf("resolve session: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("session resolved to %q, want %q", got.ID, user.ID)
	}

	if err := DeleteSessionsForUser(db, user.ID); err != nil {
		t.Fatalf("delete sessions: %v", err)
	}
	if _, err := GetSessionUser(db, sessionID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted session still resolves, err = %v", err)
	}
}

func TestExpiredSessionNotResolved(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, models.RoleStudent, true)

	sessionID := uuid.New().String()
	if err := CreateSession(db, sessionID, user.ID, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("create session: %v", err)
	}

	if _, err := GetSessionUser(db, sessionID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired session resolved, err = %v", err)
	}
}
