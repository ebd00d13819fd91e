package model

import "time"

// ChatMessage is one append-only chat log entry. IDs increase monotonically
// across the whole process, not per session.
type ChatMessage struct {
	ID        int       `json:"id"`
	SessionID string    `json:"sessionId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
