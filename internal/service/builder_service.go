package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/madhuri-perumalla/CareerValidAI/internal/model"
	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/logger"
)

// BuilderService generates a resume from the session's accumulated data
// plus the user's form input. The result is returned to the client and
// optionally archived, but never written into the session.
type BuilderService struct {
	store   repository.SessionStore
	ai      *AIService
	storage *StorageService
}

func NewBuilderService(store repository.SessionStore, ai *AIService, storage *StorageService) *BuilderService {
	return &BuilderService{store: store, ai: ai, storage: storage}
}

type BuildResumeRequest struct {
	SessionID         string                   `json:"sessionId" binding:"required"`
	TargetRole        string                   `json:"targetRole" binding:"required"`
	ContactInfo       *model.ContactInfo       `json:"contactInfo"`
	ProfessionalLinks *model.ProfessionalLinks `json:"professionalLinks"`
	Education         []model.Education        `json:"education"`
	Certifications    []model.Certification    `json:"certifications"`
	Awards            []model.Award            `json:"awards"`
	Languages         []model.SpokenLanguage   `json:"languages"`
	AdditionalInfo    string                   `json:"additionalInfo"`

	// nil means include; only an explicit false excludes a data source.
	IncludeGithubData    *bool `json:"includeGithubData"`
	IncludeSkillsData    *bool `json:"includeSkillsData"`
	IncludePortfolioData *bool `json:"includePortfolioData"`
}

func include(flag *bool) bool {
	return flag == nil || *flag
}

func (s *BuilderService) Build(ctx context.Context, req BuildResumeRequest) (*model.BuiltResume, error) {
	session, err := s.store.Get(req.SessionID)
	if err != nil {
		return nil, err
	}

	html, err := s.ai.Complete(ctx, buildResumePrompt(session, req))
	if err != nil {
		return nil, err
	}

	resume := &model.BuiltResume{
		TargetRole:        req.TargetRole,
		HTML:              html,
		AdditionalInfo:    req.AdditionalInfo,
		ContactInfo:       req.ContactInfo,
		ProfessionalLinks: req.ProfessionalLinks,
		Education:         req.Education,
		Certifications:    req.Certifications,
		Awards:            req.Awards,
		Languages:         req.Languages,
		GeneratedAt:       time.Now(),
	}

	if s.storage.Enabled() {
		filename := fmt.Sprintf("resumes/%s_%d.html", req.SessionID, resume.GeneratedAt.UnixMilli())
		reader := strings.NewReader(html)
		url, err := s.storage.Provider.Upload(ctx, filename, reader, int64(len(html)), "text/html")
		if err != nil {
			// Archiving is best-effort; the client still gets the HTML.
			logger.Log.Warn("Resume archive upload failed", zap.String("sessionId", req.SessionID), zap.Error(err))
		} else {
			resume.FileURL = url
		}
	}

	return resume, nil
}

func buildResumePrompt(session *model.Session, req BuildResumeRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a professional resume for the target role: %s\n\n", req.TargetRole)
	fmt.Fprintf(&b, "Contact Information:\n%s\n\n", marshalOrEmpty(req.ContactInfo))
	fmt.Fprintf(&b, "Professional Links:\n%s\n\n", marshalOrEmpty(req.ProfessionalLinks))

	b.WriteString("Available analyzed data:\n")
	if include(req.IncludeGithubData) && session.GithubData != nil {
		topLangs := session.GithubData.LanguageStats
		if len(topLangs) > 5 {
			topLangs = topLangs[:5]
		}
		topRepos := session.GithubData.Repositories
		if len(topRepos) > 5 {
			topRepos = topRepos[:5]
		}
		fmt.Fprintf(&b, "GitHub Stats: %s\n", marshalOrEmpty(session.GithubData.Stats))
		fmt.Fprintf(&b, "Top Languages: %s\n", marshalOrEmpty(topLangs))
		fmt.Fprintf(&b, "Top Repositories: %s\n", marshalOrEmpty(topRepos))
	}
	if include(req.IncludeSkillsData) {
		fmt.Fprintf(&b, "Manual Skills: %s\n", marshalOrEmpty(session.ManualSkills))
	}
	if include(req.IncludePortfolioData) && session.PortfolioData != nil {
		fmt.Fprintf(&b, "Portfolio: %s\n", marshalOrEmpty(session.PortfolioData))
	}

	fmt.Fprintf(&b, "\nAdditional sections provided by user:\n")
	fmt.Fprintf(&b, "Education: %s\n", marshalOrEmpty(req.Education))
	fmt.Fprintf(&b, "Certifications: %s\n", marshalOrEmpty(req.Certifications))
	fmt.Fprintf(&b, "Awards: %s\n", marshalOrEmpty(req.Awards))
	fmt.Fprintf(&b, "Languages: %s\n", marshalOrEmpty(req.Languages))

	additional := req.AdditionalInfo
	if additional == "" {
		additional = "None provided"
	}
	fmt.Fprintf(&b, "\nAdditional Info: %s\n", additional)

	fmt.Fprintf(&b, `
Generate a complete, professional resume in HTML format with:
1. Header with contact information and professional links
2. Professional Summary (3-4 lines highlighting key qualifications for %s)
3. Technical Skills (organized by category based on analyzed data)
4. Projects (from GitHub repositories if available)
5. Experience Summary (inferred from skills and project data)
6. Education (from provided data or inferred)
7. Certifications (if provided)
8. Awards (if provided)
9. Languages (if provided)

Use clean, professional HTML/CSS formatting. Make it ATS-friendly and well-structured.
Focus on achievements and impact, not just responsibilities.`, req.TargetRole)

	return b.String()
}

func marshalOrEmpty(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
