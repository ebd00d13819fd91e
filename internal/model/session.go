package model

import (
	"time"
)

// Session is the root aggregate for one anonymous visit. All analysis
// results accumulate here, keyed by the client-held SessionID.
type Session struct {
	ID            int               `json:"id"`
	SessionID     string            `json:"sessionId"`
	GithubData    *GitHubData       `json:"githubData,omitempty"`
	ResumeData    *ResumeData       `json:"resumeData,omitempty"`
	PortfolioData *PortfolioData    `json:"portfolioData,omitempty"`
	ManualSkills  []ManualSkill     `json:"manualSkills"`
	Insights      map[string]string `json:"insights,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// SessionUpdate carries a shallow field-level merge: nil fields are left
// untouched, non-nil fields replace the stored value wholesale. Insights is
// the exception and is merged key by key.
type SessionUpdate struct {
	GithubData    *GitHubData
	ResumeData    *ResumeData
	PortfolioData *PortfolioData
	ManualSkills  []ManualSkill
	Insights      map[string]string
}

// Clone returns an independent copy so the store keeps exclusive ownership
// of its records.
func (s *Session) Clone() *Session {
	out := *s
	if s.ManualSkills != nil {
		out.ManualSkills = make([]ManualSkill, len(s.ManualSkills))
		copy(out.ManualSkills, s.ManualSkills)
	}
	if s.Insights != nil {
		out.Insights = make(map[string]string, len(s.Insights))
		for k, v := range s.Insights {
			out.Insights[k] = v
		}
	}
	return &out
}
