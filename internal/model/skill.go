package model

import "time"

// Experience brackets and usage contexts accepted for a manual skill.
// Request validation rejects anything outside these sets before the scorer
// runs.
const (
	Years0to1  = "0-1"
	Years1to2  = "1-2"
	Years2to3  = "2-3"
	Years3Plus = "3+"

	UsagePersonal   = "Personal Project"
	UsageWork       = "Work Experience"
	UsageOpenSource = "Open Source"
	UsageLearning   = "Learning"
)

// ManualSkill is one manually declared skill. ProficiencyScore is derived
// at creation time and never recomputed; the skill list itself is
// append-only.
type ManualSkill struct {
	SkillName        string    `json:"skillName"`
	YearsExperience  string    `json:"yearsExperience"`
	UsageType        string    `json:"usageType"`
	ConfidenceLevel  int       `json:"confidenceLevel"`
	ProficiencyScore int       `json:"proficiencyScore"`
	AddedAt          time.Time `json:"addedAt"`
}
