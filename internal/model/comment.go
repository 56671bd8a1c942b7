package model

import "time"

// Comment belongs to a post via PostID. The reference is not validated
// against the posts collection; deleting a post leaves its comments
// behind.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
