package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/madhuri-perumalla/CareerValidAI/internal/model"
	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
)

// ChatService answers user messages with the session's accumulated
// analysis data as context and appends each exchange to the chat log.
type ChatService struct {
	store repository.SessionStore
	ai    *AIService
}

func NewChatService(store repository.SessionStore, ai *AIService) *ChatService {
	return &ChatService{store: store, ai: ai}
}

func (s *ChatService) Chat(ctx context.Context, sessionID, message string) (*model.ChatMessage, error) {
	session, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	response, err := s.ai.Complete(ctx, chatPrompt(session, message))
	if err != nil {
		return nil, err
	}

	return s.store.AppendChatMessage(sessionID, message, response)
}

func chatPrompt(session *model.Session, message string) string {
	// Only the analysis fields go into the prompt, not the chat log.
	context := map[string]interface{}{
		"githubData":    session.GithubData,
		"resumeData":    session.ResumeData,
		"portfolioData": session.PortfolioData,
		"manualSkills":  session.ManualSkills,
	}
	contextJSON, _ := json.MarshalIndent(context, "", "  ")

	return fmt.Sprintf(`You are CareerValid AI, a helpful career development assistant.

User's session context: %s

User message: %s

Provide helpful, actionable career advice. Keep responses concise but informative.
Focus on practical next steps, learning resources, and career guidance.
If the user asks about resume improvements, skill development, project ideas, or career paths,
use their session data to provide personalized recommendations.

Always end with encouragement and maintain a positive, supportive tone.`, contextJSON, message)
}
