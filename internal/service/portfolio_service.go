package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/madhuri-perumalla/CareerValidAI/internal/config"
	"github.com/madhuri-perumalla/CareerValidAI/internal/model"
	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/monitoring"
)

// maxPortfolioPreview caps how much page content goes into the prompt.
const maxPortfolioPreview = 2000

var (
	titlePattern       = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
	descriptionPattern = regexp.MustCompile(`(?is)<meta\s+name="description"\s+content="(.*?)"`)
)

// PortfolioService fetches a portfolio page, extracts its title and meta
// description and stores the AI review wholesale as the session's
// portfolioData.
type PortfolioService struct {
	client *http.Client
	store  repository.SessionStore
	ai     *AIService
}

func NewPortfolioService(cfg config.GitHubConfig, store repository.SessionStore, ai *AIService) *PortfolioService {
	return &PortfolioService{
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		store:  store,
		ai:     ai,
	}
}

func (s *PortfolioService) Analyze(ctx context.Context, sessionID, portfolioURL string) (*model.PortfolioData, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", portfolioURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid portfolio URL: %v", util.ErrUpstream, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		monitoring.ObserveUpstream("portfolio", err)
		return nil, fmt.Errorf("%w: portfolio fetch failed: %v", util.ErrUpstream, err)
	}
	defer resp.Body.Close()
	monitoring.ObserveUpstream("portfolio", nil)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: portfolio read failed: %v", util.ErrUpstream, err)
	}
	htmlContent := string(body)

	title := firstSubmatch(titlePattern, htmlContent)
	description := firstSubmatch(descriptionPattern, htmlContent)

	insights, err := s.ai.Complete(ctx, portfolioAnalysisPrompt(portfolioURL, title, description, htmlContent))
	if err != nil {
		return nil, err
	}

	portfolioData := &model.PortfolioData{
		URL:         portfolioURL,
		Title:       title,
		Description: description,
		Insights:    insights,
		AnalyzedAt:  time.Now(),
	}

	if _, err := s.store.Update(sessionID, model.SessionUpdate{PortfolioData: portfolioData}); err != nil {
		return nil, err
	}
	return portfolioData, nil
}

func firstSubmatch(pattern *regexp.Regexp, content string) string {
	m := pattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return m[1]
}

func portfolioAnalysisPrompt(portfolioURL, title, description, htmlContent string) string {
	preview := htmlContent
	if len(preview) > maxPortfolioPreview {
		preview = preview[:maxPortfolioPreview]
	}

	return fmt.Sprintf(`Analyze this portfolio website and provide feedback:

URL: %s
Title: %s
Description: %s
Content Preview: %s...

Please provide analysis in this exact format:

🧠 **Career Insights**
- Personal Branding: (how well they present themselves)
- Technical Skills Shown: (evident from projects/content)
- Portfolio Strengths: (what works well)

💡 **AI Recommendations**
🎨 **Design Improvements**
• [UI/UX suggestions]

📝 **Content Enhancements**
• [what sections to add/improve]

🚀 **Professional Impact**
• [how to increase impact]

📱 **Technical Suggestions**
• [performance, accessibility, etc.]

🔄 **Final Motivation**
[One motivational line]`, portfolioURL, title, description, preview)
}
