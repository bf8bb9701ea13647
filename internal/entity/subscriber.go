package entity

import "time"

type Subscriber struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	SubscribedAt time.Time `db:"subscribed_at"`
}
