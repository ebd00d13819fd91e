package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/madhuri-perumalla/CareerValidAI/internal/model"
	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

// SessionService implements get-or-create on top of the store's
// unconditional Create and assembles the session read/export views.
type SessionService struct {
	store repository.SessionStore
}

func NewSessionService(store repository.SessionStore) *SessionService {
	return &SessionService{store: store}
}

// SessionView is the combined read model returned to the client.
type SessionView struct {
	Session      *model.Session      `json:"session"`
	ChatMessages []model.ChatMessage `json:"chatMessages"`
}

// SessionExport adds the export timestamp to the read model.
type SessionExport struct {
	SessionView
	ExportedAt time.Time `json:"exportedAt"`
}

// GetOrCreate returns the existing session for the id, creating one when
// absent. An empty id gets a server-generated identifier.
func (s *SessionService) GetOrCreate(sessionID string) (*model.Session, error) {
	if sessionID == "" {
		sessionID = fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	}

	session, err := s.store.Get(sessionID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, util.ErrSessionNotFound) {
		return nil, err
	}
	return s.store.Create(sessionID)
}

func (s *SessionService) Get(sessionID string) (*SessionView, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	messages, err := s.store.GetChatMessages(sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionView{Session: session, ChatMessages: messages}, nil
}

func (s *SessionService) Export(sessionID string) (*SessionExport, error) {
	view, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionExport{SessionView: *view, ExportedAt: time.Now()}, nil
}
