package database

import (
	"database/sql"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

func CreateLeave(db *sql.DB, leave *models.Leave) error {
	query := `INSERT INTO leaves (user_id, leave_date, message) VALUES ($1, $2, $3)
			  RETURNING id, status, created_at, updated_at`
	err := db.QueryRow(query, leave.UserID, leave.LeaveDate, leave.Message).
		Scan(&leave.ID, &leave.Status, &leave.CreatedAt, &leave.UpdatedAt)
	return translateErr(err)
}

// ListLeavesForUser returns the user's own applications, most recent
// leave date first.
func ListLeavesForUser(db *sql.DB, userID string) ([]*models.Leave, error) {
	query := `SELECT id, user_id, leave_date, message, status, created_at, updated_at
			  FROM leaves WHERE user_id = $1 ORDER BY leave_date DESC`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := []*models.Leave{}
	for rows.Next() {
		l := &models.Leave{}
		err := rows.Scan(&l.ID, &l.UserID, &l.LeaveDate, &l.Message, &l.Status, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// ListLeaves is the admin review queue, newest application first.
func ListLeaves(db *sql.DB, limit, offset int) ([]*models.Leave, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM leaves`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT l.id, l.user_id, l.leave_date, l.message, l.status, l.created_at, l.updated_at,
			  u.username, u.first_name, u.last_name, u.role
			  FROM leaves l JOIN users u ON u.id = l.user_id
			  ORDER BY l.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	leaves := []*models.Leave{}
	for rows.Next() {
		l := &models.Leave{User: &models.User{}}
		err := rows.Scan(&l.ID, &l.UserID, &l.LeaveDate, &l.Message, &l.Status, &l.CreatedAt, &l.UpdatedAt,
			&l.User.Username, &l.User.FirstName, &l.User.LastName, &l.User.Role)
		if err != nil {
			return nil, 0, err
		}
		l.User.ID = l.UserID
		leaves = append(leaves, l)
	}
	return leaves, total, rows.Err()
}

func GetLeaveByID(db *sql.DB, leaveID string) (*models.Leave, error) {
	l := &models.Leave{}
	query := `SELECT id, user_id, leave_date, message, status, created_at, updated_at
			  FROM leaves WHERE id = $1`
	err := db.QueryRow(query, leaveID).
		Scan(&l.ID, &l.UserID, &l.LeaveDate, &l.Message, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return l, nil
}

func UpdateLeaveStatus(db *sql.DB, leaveID string, status int) error {
	res, err := db.Exec(`UPDATE leaves SET status = $1, updated_at = now() WHERE id = $2`, status, leaveID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
