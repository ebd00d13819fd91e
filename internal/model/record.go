package model

import "time"

// SessionRecord is the database shape of a Session for the gorm-backed
// store. Analysis payloads are opaque JSON columns so the shallow
// field-replace contract stays identical to the in-memory store.
type SessionRecord struct {
	ID            uint      `gorm:"primaryKey"`
	SessionID     string    `gorm:"size:191;uniqueIndex;not null"`
	GithubData    []byte    `gorm:"type:json"`
	ResumeData    []byte    `gorm:"type:json"`
	PortfolioData []byte    `gorm:"type:json"`
	ManualSkills  []byte    `gorm:"type:json"`
	Insights      []byte    `gorm:"type:json"`
	CreatedAt     time.Time
}

func (SessionRecord) TableName() string {
	return "sessions"
}

type ChatMessageRecord struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"size:191;index;not null"`
	Message   string `gorm:"type:text"`
	Response  string `gorm:"type:text"`
	Timestamp time.Time
}

func (ChatMessageRecord) TableName() string {
	return "chat_messages"
}
