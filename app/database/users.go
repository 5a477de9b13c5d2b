package database

import (
	"database/sql"
	"time"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

const userColumns = `id, username, email, password, first_name, last_name, role, is_active, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, translateErr(err)
	}
	return user, nil
}

// GetUserByUsername returns the user regardless of is_active; activity is
// the gate's decision, not the lookup's.
func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(db.QueryRow(query, username))
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(db.QueryRow(query, userID))
}

// CreateUser inserts the identity and, in the same transaction, the
// role-matching profile row. Student/staff identities therefore never
// exist without their profile.
func CreateUser(db *sql.DB, user *models.User, student *models.Student, staff *models.Staff) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO users (username, email, password, first_name, last_name, role, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query, user.Username, user.Email, user.Password, user.FirstName,
		user.LastName, user.Role, user.IsActive).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}

	switch user.Role {
	case models.RoleStudent:
		if student == nil {
			student = &models.Student{}
		}
		student.UserID = user.ID
		query = `INSERT INTO students (user_id, gender, address, date_of_birth, course_id, session_year_id)
				 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
		err = tx.QueryRow(query, user.ID, student.Gender, student.Address,
			student.DateOfBirth, student.CourseID, student.SessionYearID).Scan(&student.ID)
	case models.RoleStaff:
		if staff == nil {
			staff = &models.Staff{}
		}
		staff.UserID = user.ID
		query = `INSERT INTO staff (user_id, gender, address, date_of_birth)
				 VALUES ($1, $2, $3, $4) RETURNING id`
		err = tx.QueryRow(query, user.ID, staff.Gender, staff.Address, staff.DateOfBirth).Scan(&staff.ID)
	}
	if err != nil {
		return translateErr(err)
	}

	return tx.Commit()
}

// ApproveUser activates an account. Approving an already active account
// is a no-op; the returned flag reports whether this call actually
// activated it, so callers can skip repeat side effects.
func ApproveUser(db *sql.DB, userID string) (*models.User, bool, error) {
	user, err := GetUserByID(db, userID)
	if err != nil {
		return nil, false, err
	}
	if user.IsActive {
		return user, false, nil
	}

	query := `UPDATE users SET is_active = true, updated_at = now() WHERE id = $1`
	if _, err := db.Exec(query, userID); err != nil {
		return nil, false, translateErr(err)
	}
	user.IsActive = true
	return user, true, nil
}

// ListPendingUsers returns inactive accounts awaiting approval, newest
// first.
func ListPendingUsers(db *sql.DB, limit, offset int) ([]*models.User, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE is_active = false`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE is_active = false
			  ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.Password, &user.FirstName,
			&user.LastName, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	return users, total, rows.Err()
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = now() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

func CreateSession(db *sql.DB, sessionID, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at) VALUES ($1, $2, $3)`
	_, err := db.Exec(query, sessionID, userID, expiresAt)
	return err
}

// GetSessionUser resolves a live session to its owning user in one round
// trip. Expired sessions resolve to ErrNotFound.
func GetSessionUser(db *sql.DB, sessionID string) (*models.User, error) {
	query := `SELECT u.id, u.username, u.email, u.password, u.first_name, u.last_name, u.role, u.is_active, u.created_at, u.updated_at
			  FROM sessions s JOIN users u ON u.id = s.user_id
			  WHERE s.id = $1 AND s.expires_at > now()`
	return scanUser(db.QueryRow(query, sessionID))
}

func DeleteSession(db *sql.DB, sessionID string) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE id = $1`, sessionID)
	return err
}

// DeleteSessionsForUser forces the user out everywhere. Used when an
// inactive account is denied at the gate.
func DeleteSessionsForUser(db *sql.DB, userID string) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}
