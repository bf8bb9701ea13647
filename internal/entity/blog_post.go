package entity

import "time"

type BlogPost struct {
	ID          string    `db:"id"`
	Category    string    `db:"category"`
	Title       string    `db:"title"`
	Excerpt     *string   `db:"excerpt"`
	ImageURL    *string   `db:"image_url"`
	Likes       int       `db:"likes"`
	Comments    int       `db:"comments"`
	Featured    bool      `db:"featured"`
	PublishedAt time.Time `db:"published_at"`
}
