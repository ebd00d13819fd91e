package repository

import (
	"sync"
	"time"

	"github.com/madhuri-perumalla/CareerValidAI/internal/model"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

// SessionStore is the single source of truth for Session and ChatMessage
// aggregates. Update performs a shallow field-level merge: a non-nil field
// on the partial replaces the stored field wholesale, omitted fields stay
// untouched, and Insights is merged key by key. Create is unconditional;
// callers implement get-or-create on top of Get.
type SessionStore interface {
	Create(sessionID string) (*model.Session, error)
	Get(sessionID string) (*model.Session, error)
	Update(sessionID string, update model.SessionUpdate) (*model.Session, error)
	AppendChatMessage(sessionID, message, response string) (*model.ChatMessage, error)
	GetChatMessages(sessionID string) ([]model.ChatMessage, error)
}

// MemoryStore keeps every session for the lifetime of the process.
// Chat message ids come from a process-wide counter, not a per-session one.
type MemoryStore struct {
	mu               sync.RWMutex
	sessions         map[string]*model.Session
	chatMessages     map[string][]model.ChatMessage
	sessionIDCounter int
	messageIDCounter int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:         make(map[string]*model.Session),
		chatMessages:     make(map[string][]model.ChatMessage),
		sessionIDCounter: 1,
		messageIDCounter: 1,
	}
}

func (s *MemoryStore) Create(sessionID string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &model.Session{
		ID:           s.sessionIDCounter,
		SessionID:    sessionID,
		ManualSkills: []model.ManualSkill{},
		CreatedAt:    time.Now(),
	}
	s.sessionIDCounter++

	s.sessions[sessionID] = session
	s.chatMessages[sessionID] = []model.ChatMessage{}
	return session.Clone(), nil
}

func (s *MemoryStore) Get(sessionID string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (s *MemoryStore) Update(sessionID string, update model.SessionUpdate) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	if update.GithubData != nil {
		session.GithubData = update.GithubData
	}
	if update.ResumeData != nil {
		session.ResumeData = update.ResumeData
	}
	if update.PortfolioData != nil {
		session.PortfolioData = update.PortfolioData
	}
	if update.ManualSkills != nil {
		session.ManualSkills = update.ManualSkills
	}
	if update.Insights != nil {
		if session.Insights == nil {
			session.Insights = make(map[string]string, len(update.Insights))
		}
		for k, v := range update.Insights {
			session.Insights[k] = v
		}
	}

	return session.Clone(), nil
}

func (s *MemoryStore) AppendChatMessage(sessionID, message, response string) (*model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, ok := s.chatMessages[sessionID]
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	msg := model.ChatMessage{
		ID:        s.messageIDCounter,
		SessionID: sessionID,
		Message:   message,
		Response:  response,
		Timestamp: time.Now(),
	}
	s.messageIDCounter++

	s.chatMessages[sessionID] = append(messages, msg)
	return &msg, nil
}

func (s *MemoryStore) GetChatMessages(sessionID string) ([]model.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.chatMessages[sessionID]
	if !ok {
		return nil, util.ErrSessionNotFound
	}

	out := make([]model.ChatMessage, len(messages))
	copy(out, messages)
	return out, nil
}
