package models

import "time"

const (
	LeavePending  = 0
	LeaveApproved = 1
	LeaveRejected = 2
)

// Leave is a dated leave application owned by the submitting user and
// resolved by an admin reviewer.
type Leave struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	LeaveDate time.Time `json:"leave_date" validate:"required"`
	Message   string    `json:"message" validate:"required"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      *User     `json:"user,omitempty"`
}

func (l *Leave) StatusLabel() string {
	switch l.Status {
	case LeavePending:
		return "Pending"
	case LeaveApproved:
		return "Approved"
	case LeaveRejected:
		return "Rejected"
	}
	return "Unknown"
}
