package models

import "time"

// Feedback is a message thread: the submitter writes message, an admin
// fills reply. Status is false while the thread awaits a reply.
type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" validate:"required"`
	Reply     *string   `json:"reply,omitempty"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      *User     `json:"user,omitempty"`
}
