package model

import "time"

// Post is a feed post. This is a pure domain model with no
// store-specific dependencies or tags; persistence mapping lives in the
// codec package.
type Post struct {
	ID          string    `json:"postId"`
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	UserImage   string    `json:"userImage"`
	CreatedAt   time.Time `json:"createdAt"`
	// Likes holds the IDs of users who liked the post. Membership is
	// what matters; order is not meaningful.
	Likes []string `json:"likes"`
}

// Liked reports whether userID is in the like set.
func (p *Post) Liked(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
