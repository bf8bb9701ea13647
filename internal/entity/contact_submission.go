package entity

import "time"

type ContactSubmission struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Phone       *string   `db:"phone"`
	Email       string    `db:"email"`
	Subject     *string   `db:"subject"`
	Message     string    `db:"message"`
	SubmittedAt time.Time `db:"submitted_at"`
	Read        bool      `db:"read"`
}
