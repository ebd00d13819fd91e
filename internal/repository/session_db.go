package repository

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/madhuri-perumalla/CareerValidAI/internal/model"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

// DBStore persists the session aggregate through gorm, with the analysis
// payloads stored as JSON columns. The merge contract matches MemoryStore:
// field replacement happens in Go before the row is written, inside a
// transaction so concurrent updates to the same session serialize.
type DBStore struct {
	DB *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{DB: db}
}

func (s *DBStore) Create(sessionID string) (*model.Session, error) {
	record := model.SessionRecord{
		SessionID: sessionID,
		CreatedAt: time.Now(),
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return recordToSession(&record)
}

func (s *DBStore) Get(sessionID string) (*model.Session, error) {
	var record model.SessionRecord
	err := s.DB.First(&record, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return recordToSession(&record)
}

func (s *DBStore) Update(sessionID string, update model.SessionUpdate) (*model.Session, error) {
	var session *model.Session

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var record model.SessionRecord
		err := tx.First(&record, "session_id = ?", sessionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSessionNotFound
		}
		if err != nil {
			return err
		}

		if update.GithubData != nil {
			if record.GithubData, err = json.Marshal(update.GithubData); err != nil {
				return err
			}
		}
		if update.ResumeData != nil {
			if record.ResumeData, err = json.Marshal(update.ResumeData); err != nil {
				return err
			}
		}
		if update.PortfolioData != nil {
			if record.PortfolioData, err = json.Marshal(update.PortfolioData); err != nil {
				return err
			}
		}
		if update.ManualSkills != nil {
			if record.ManualSkills, err = json.Marshal(update.ManualSkills); err != nil {
				return err
			}
		}
		if update.Insights != nil {
			insights := map[string]string{}
			if len(record.Insights) > 0 {
				if err := json.Unmarshal(record.Insights, &insights); err != nil {
					return err
				}
			}
			for k, v := range update.Insights {
				insights[k] = v
			}
			if record.Insights, err = json.Marshal(insights); err != nil {
				return err
			}
		}

		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		session, err = recordToSession(&record)
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DBStore) AppendChatMessage(sessionID, message, response string) (*model.ChatMessage, error) {
	var count int64
	if err := s.DB.Model(&model.SessionRecord{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, util.ErrSessionNotFound
	}

	record := model.ChatMessageRecord{
		SessionID: sessionID,
		Message:   message,
		Response:  response,
		Timestamp: time.Now(),
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, err
	}

	return &model.ChatMessage{
		ID:        int(record.ID),
		SessionID: record.SessionID,
		Message:   record.Message,
		Response:  record.Response,
		Timestamp: record.Timestamp,
	}, nil
}

func (s *DBStore) GetChatMessages(sessionID string) ([]model.ChatMessage, error) {
	var count int64
	if err := s.DB.Model(&model.SessionRecord{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, util.ErrSessionNotFound
	}

	var records []model.ChatMessageRecord
	if err := s.DB.Where("session_id = ?", sessionID).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	messages := make([]model.ChatMessage, 0, len(records))
	for _, r := range records {
		messages = append(messages, model.ChatMessage{
			ID:        int(r.ID),
			SessionID: r.SessionID,
			Message:   r.Message,
			Response:  r.Response,
			Timestamp: r.Timestamp,
		})
	}
	return messages, nil
}

func recordToSession(record *model.SessionRecord) (*model.Session, error) {
	session := &model.Session{
		ID:           int(record.ID),
		SessionID:    record.SessionID,
		ManualSkills: []model.ManualSkill{},
		CreatedAt:    record.CreatedAt,
	}

	if len(record.GithubData) > 0 {
		session.GithubData = &model.GitHubData{}
		if err := json.Unmarshal(record.GithubData, session.GithubData); err != nil {
			return nil, err
		}
	}
	if len(record.ResumeData) > 0 {
		session.ResumeData = &model.ResumeData{}
		if err := json.Unmarshal(record.ResumeData, session.ResumeData); err != nil {
			return nil, err
		}
	}
	if len(record.PortfolioData) > 0 {
		session.PortfolioData = &model.PortfolioData{}
		if err := json.Unmarshal(record.PortfolioData, session.PortfolioData); err != nil {
			return nil, err
		}
	}
	if len(record.ManualSkills) > 0 {
		if err := json.Unmarshal(record.ManualSkills, &session.ManualSkills); err != nil {
			return nil, err
		}
	}
	if len(record.Insights) > 0 {
		if err := json.Unmarshal(record.Insights, &session.Insights); err != nil {
			return nil, err
		}
	}

	return session, nil
}
