package database

import (
	"database/sql"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

func CreateFeedback(db *sql.DB, fb *models.Feedback) error {
	query := `INSERT INTO feedback (user_id, subject, message) VALUES ($1, $2, $3)
			  RETURNING id, status, created_at, updated_at`
	err := db.QueryRow(query, fb.UserID, fb.Subject, fb.Message).
		Scan(&fb.ID, &fb.Status, &fb.CreatedAt, &fb.UpdatedAt)
	return translateErr(err)
}

func ListFeedbackForUser(db *sql.DB, userID string) ([]*models.Feedback, error) {
	query := `SELECT id, user_id, subject, message, reply, status, created_at, updated_at
			  FROM feedback WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.Feedback{}
	for rows.Next() {
		fb := &models.Feedback{}
		err := rows.Scan(&fb.ID, &fb.UserID, &fb.Subject, &fb.Message, &fb.Reply, &fb.Status,
			&fb.CreatedAt, &fb.UpdatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, fb)
	}
	return items, rows.Err()
}

func ListFeedback(db *sql.DB, limit, offset int) ([]*models.Feedback, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM feedback`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT f.id, f.user_id, f.subject, f.message, f.reply, f.status, f.created_at, f.updated_at,
			  u.username, u.first_name, u.last_name, u.role
			  FROM feedback f JOIN users u ON u.id = f.user_id
			  ORDER BY f.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []*models.Feedback{}
	for rows.Next() {
		fb := &models.Feedback{User: &models.User{}}
		err := rows.Scan(&fb.ID, &fb.UserID, &fb.Subject, &fb.Message, &fb.Reply, &fb.Status,
			&fb.CreatedAt, &fb.UpdatedAt,
			&fb.User.Username, &fb.User.FirstName, &fb.User.LastName, &fb.User.Role)
		if err != nil {
			return nil, 0, err
		}
		fb.User.ID = fb.UserID
		items = append(items, fb)
	}
	return items, total, rows.Err()
}

func GetFeedbackByID(db *sql.DB, feedbackID string) (*models.Feedback, error) {
	fb := &models.Feedback{}
	query := `SELECT id, user_id, subject, message, reply, status, created_at, updated_at
			  FROM feedback WHERE id = $1`
	err := db.QueryRow(query, feedbackID).
		Scan(&fb.ID, &fb.UserID, &fb.Subject, &fb.Message, &fb.Reply, &fb.Status, &fb.CreatedAt, &fb.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return fb, nil
}

// ReplyFeedback stores the admin's reply and marks the thread replied.
func ReplyFeedback(db *sql.DB, feedbackID, reply string) error {
	query := `UPDATE feedback SET reply = $1, status = true, updated_at = now() WHERE id = $2`
	res, err := db.Exec(query, reply, feedbackID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
