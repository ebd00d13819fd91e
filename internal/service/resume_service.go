package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/madhuri-perumalla/CareerValidAI/internal/model"
	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/logger"
)

// fallbackResumeScore is substituted when the narrative carries no
// recognizable score. The substitution is logged so quality regressions in
// the upstream model's phrasing stay visible.
const fallbackResumeScore = 75

var resumeScorePattern = regexp.MustCompile(`(?i)(\d+)(?:/100|\s*out\s*of\s*100)`)

// ResumeService analyzes client-extracted resume text and stores the
// result wholesale as the session's resumeData.
type ResumeService struct {
	store repository.SessionStore
	ai    *AIService
}

func NewResumeService(store repository.SessionStore, ai *AIService) *ResumeService {
	return &ResumeService{store: store, ai: ai}
}

// ExtractResumeScore finds the first "<n>/100" or "<n> out of 100" match.
// When the text has several matches the first one wins.
func ExtractResumeScore(text string) (int, bool) {
	m := resumeScorePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return score, true
}

func (s *ResumeService) Analyze(ctx context.Context, sessionID, fileName, fileType, fileContent string) (*model.ResumeData, error) {
	insights, err := s.ai.Complete(ctx, resumeAnalysisPrompt(fileName, fileContent))
	if err != nil {
		return nil, err
	}

	score, ok := ExtractResumeScore(insights)
	if !ok {
		logger.Log.Warn("Resume score not found in analysis, using fallback",
			zap.String("sessionId", sessionID),
			zap.Int("fallback", fallbackResumeScore))
		score = fallbackResumeScore
	}

	resumeData := &model.ResumeData{
		FileName:   fileName,
		FileType:   fileType,
		Insights:   insights,
		Score:      score,
		AnalyzedAt: time.Now(),
	}

	if _, err := s.store.Update(sessionID, model.SessionUpdate{ResumeData: resumeData}); err != nil {
		return nil, err
	}
	return resumeData, nil
}

func resumeAnalysisPrompt(fileName, fileContent string) string {
	return fmt.Sprintf(`Analyze this resume content and provide feedback:

File: %s
Content: %s

Please provide analysis in this exact format:

🧠 **Career Insights**
- Key Skills Detected: (list as inline code style)
- Experience Summary: (years, roles, industries)
- Resume Strengths: (what stands out)

💡 **AI Recommendations**
🔧 **Skills to Highlight**
• [skills to emphasize more]

📝 **Format Improvements**
• [specific formatting suggestions]

📚 **Content Enhancements**
• [what to add or modify]

🚀 **Role Alignment**
• [how well it matches target roles]

Provide a resume score from 1-100 and explain the scoring.

🔄 **Final Motivation**
[One motivational line]`, fileName, fileContent)
}
