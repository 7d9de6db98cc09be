package model

import "time"

// Comment is attached to exactly one task. ID, Author and CreatedAt are
// assigned by the server when the comment is posted.
type Comment struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
