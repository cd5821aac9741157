package model

import "time"

// Comment is a guestbook entry left on the contact page.
type Comment struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Mood      float64 `json:"mood"`
	Timestamp int64   `json:"timestamp"` // epoch millis
	Text      string  `json:"comment"`

	// AuthorHash is a salted hash of the poster's IP, kept for moderation only.
	AuthorHash string `json:"-"`
}

// Time returns the comment timestamp as a time.Time.
func (c Comment) Time() time.Time {
	return time.UnixMilli(c.Timestamp)
}

// CommentStats summarises the guestbook for the admin dashboard.
type CommentStats struct {
	TotalComments int64     `json:"total_comments"`
	AverageMood   int       `json:"average_mood"`
	Negative      int64     `json:"negative"`
	Neutral       int64     `json:"neutral"`
	Positive      int64     `json:"positive"`
	Recent        []Comment `json:"recent"`
}
