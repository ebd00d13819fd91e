package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/madhuri-perumalla/CareerValidAI/internal/model"
	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

// SkillService validates and scores manual skill submissions and keeps the
// session's append-only skill list plus the skills narrative insight.
type SkillService struct {
	store repository.SessionStore
	ai    *AIService
}

func NewSkillService(store repository.SessionStore, ai *AIService) *SkillService {
	return &SkillService{store: store, ai: ai}
}

type AddSkillRequest struct {
	SessionID       string `json:"sessionId" binding:"required"`
	SkillName       string `json:"skillName" binding:"required"`
	YearsExperience string `json:"yearsExperience" binding:"required,oneof=0-1 1-2 2-3 3+"`
	UsageType       string `json:"usageType" binding:"required,oneof='Personal Project' 'Work Experience' 'Open Source' 'Learning'"`
	ConfidenceLevel int    `json:"confidenceLevel" binding:"required,min=1,max=10"`
}

type AddSkillResult struct {
	Skills   []model.ManualSkill `json:"skills"`
	Insights string              `json:"insights"`
}

var yearsWeight = map[string]int{
	"0-1": 10,
	"1-2": 20,
	"2-3": 30,
	"3+":  40,
}

var usageWeight = map[string]int{
	"Personal Project": 10,
	"Work Experience":  20,
	"Open Source":      15,
	"Learning":         5,
}

// ProficiencyScore maps a skill submission onto [0,100]. Confidence
// contributes up to half the maximum; the clamp guards the top
// combination (40+20+50).
func ProficiencyScore(yearsExperience, usageType string, confidenceLevel int) int {
	score := yearsWeight[yearsExperience] + usageWeight[usageType] + confidenceLevel*5
	if score > 100 {
		score = 100
	}
	return score
}

// AddSkill rejects case-insensitive duplicates, appends the scored skill
// and merges the regenerated narrative into the session's skills insight.
func (s *SkillService) AddSkill(ctx context.Context, req AddSkillRequest) (*AddSkillResult, error) {
	session, err := s.store.Get(req.SessionID)
	if err != nil {
		return nil, err
	}

	for _, existing := range session.ManualSkills {
		if strings.EqualFold(existing.SkillName, req.SkillName) {
			return nil, util.ErrDuplicateSkill
		}
	}

	skill := model.ManualSkill{
		SkillName:        req.SkillName,
		YearsExperience:  req.YearsExperience,
		UsageType:        req.UsageType,
		ConfidenceLevel:  req.ConfidenceLevel,
		ProficiencyScore: ProficiencyScore(req.YearsExperience, req.UsageType, req.ConfidenceLevel),
		AddedAt:          time.Now(),
	}

	updatedSkills := append(session.ManualSkills, skill)

	insights, err := s.ai.Complete(ctx, skillsPrompt(updatedSkills))
	if err != nil {
		return nil, err
	}

	_, err = s.store.Update(req.SessionID, model.SessionUpdate{
		ManualSkills: updatedSkills,
		Insights:     map[string]string{"skills": insights},
	})
	if err != nil {
		return nil, err
	}

	return &AddSkillResult{Skills: updatedSkills, Insights: insights}, nil
}

func skillsPrompt(skills []model.ManualSkill) string {
	skillsJSON, _ := json.MarshalIndent(skills, "", "  ")

	return fmt.Sprintf(`Analyze these manually entered skills and provide insights:

Skills: %s

Please provide analysis in this exact format:

🧠 **Career Insights**
- Skill Categories: (frontend, backend, tools, etc.)
- Proficiency Overview: (strongest and weakest areas)
- Experience Level: (junior, mid, senior assessment)

💡 **AI Recommendations**
🔧 **Skills to Focus On**
• [skills to improve or learn next]

🧪 **Suggested Projects**
• [projects that would use these skills]

📚 **Learning Resources**
• [specific learning recommendations]

🚀 **Career Path Suggestions**
• [suitable roles based on skill mix]

🔄 **Final Motivation**
[One motivational line]`, skillsJSON)
}
