package model

import "time"

// Message is a single saved question/answer pair.
type Message struct {
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatHistory is the per-user history record. Exactly one exists per
// user; messages are appended in arrival order and kept embedded in
// the record itself.
type ChatHistory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Messages  []Message `json:"messages"`
	UpdatedAt time.Time `json:"updated_at"`
}
