package database

import (
	"database/sql"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

const staffSelect = `
	SELECT sf.id, sf.user_id, sf.gender, sf.address, sf.date_of_birth, sf.created_at, sf.updated_at,
		   u.id, u.username, u.email, u.first_name, u.last_name, u.role, u.is_active
	FROM staff sf
	JOIN users u ON u.id = sf.user_id`

func scanStaffRows(rows *sql.Rows) ([]*models.Staff, error) {
	staff := []*models.Staff{}
	for rows.Next() {
		sf := &models.Staff{User: &models.User{}}
		err := rows.Scan(
			&sf.ID, &sf.UserID, &sf.Gender, &sf.Address, &sf.DateOfBirth, &sf.CreatedAt, &sf.UpdatedAt,
			&sf.User.ID, &sf.User.Username, &sf.User.Email, &sf.User.FirstName, &sf.User.LastName,
			&sf.User.Role, &sf.User.IsActive,
		)
		if err != nil {
			return nil, err
		}
		staff = append(staff, sf)
	}
	return staff, rows.Err()
}

func ListStaff(db *sql.DB, limit, offset int) ([]*models.Staff, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM staff`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(staffSelect+` ORDER BY u.username LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	staff, err := scanStaffRows(rows)
	return staff, total, err
}

func GetStaffByID(db *sql.DB, staffID string) (*models.Staff, error) {
	rows, err := db.Query(staffSelect+` WHERE sf.id = $1`, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff, err := scanStaffRows(rows)
	if err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		return nil, ErrNotFound
	}
	return staff[0], nil
}

func GetStaffByUserID(db *sql.DB, userID string) (*models.Staff, error) {
	rows, err := db.Query(staffSelect+` WHERE sf.user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff, err := scanStaffRows(rows)
	if err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		return nil, ErrNotFound
	}
	return staff[0], nil
}

// UpdateStaff mirrors UpdateStudent: identity and profile in one
// transaction, role untouched, password only when provided.
func UpdateStaff(db *sql.DB, staff *models.Staff, user *models.User, hashedPassword string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE users SET username = $1, email = $2, first_name = $3, last_name = $4, updated_at = now()
			  WHERE id = $5`
	if _, err := tx.Exec(query, user.Username, user.Email, user.FirstName, user.LastName, staff.UserID); err != nil {
		return translateErr(err)
	}

	if hashedPassword != "" {
		if _, err := tx.Exec(`UPDATE users SET password = $1 WHERE id = $2`, hashedPassword, staff.UserID); err != nil {
			return translateErr(err)
		}
	}

	query = `UPDATE staff SET gender = $1, address = $2, date_of_birth = $3, updated_at = now() WHERE id = $4`
	res, err := tx.Exec(query, staff.Gender, staff.Address, staff.DateOfBirth, staff.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func DeleteStaff(db *sql.DB, staffID string) error {
	staff, err := GetStaffByID(db, staffID)
	if err != nil {
		return err
	}
	_, err = db.Exec(`DELETE FROM users WHERE id = $1`, staff.UserID)
	return translateErr(err)
}
