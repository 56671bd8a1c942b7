package model

import "time"

// Topic is a learning plan of up to five named topics with a progress
// percentage. Progress is stored as supplied; the 0-100 range is a
// client convention, not enforced here.
type Topic struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"userId"`
	Progress              int       `json:"progress"`
	TopicOne              string    `json:"topicOne"`
	TopicOneDescription   string    `json:"topicOneDescription"`
	TopicTwo              string    `json:"topicTwo"`
	TopicTwoDescription   string    `json:"topicTwoDescription"`
	TopicThree            string    `json:"topicThree"`
	TopicThreeDescription string    `json:"topicThreeDescription"`
	TopicFour             string    `json:"topicFour"`
	TopicFourDescription  string    `json:"topicFourDescription"`
	TopicFive             string    `json:"topicFive"`
	TopicFiveDescription  string    `json:"topicFiveDescription"`
	CreatedAt             time.Time `json:"createdAt"`
}
