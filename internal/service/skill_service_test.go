package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

func TestProficiencyScore(t *testing.T) {
	tests := []struct {
		name            string
		yearsExperience string
		usageType       string
		confidenceLevel int
		want            int
	}{
		{"minimum combination", "0-1", "Learning", 1, 20},
		{"work experience mid", "1-2", "Work Experience", 5, 65},
		{"open source", "2-3", "Open Source", 7, 80},
		{"clamped at 100", "3+", "Work Experience", 10, 100},
		{"personal project", "3+", "Personal Project", 8, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProficiencyScore(tt.yearsExperience, tt.usageType, tt.confidenceLevel)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProficiencyScoreMonotonicInConfidence(t *testing.T) {
	prev := 0
	for confidence := 1; confidence <= 10; confidence++ {
		score := ProficiencyScore("1-2", "Personal Project", confidence)
		assert.Greater(t, score, prev)
		assert.LessOrEqual(t, score, 100)
		prev = score
	}
}

func TestAddSkill(t *testing.T) {
	store := repository.NewMemoryStore()
	_, err := store.Create("session_1")
	require.NoError(t, err)

	svc := NewSkillService(store, newStubAI(t, "skills narrative"))

	result, err := svc.AddSkill(context.Background(), AddSkillRequest{
		SessionID:       "session_1",
		SkillName:       "Go",
		YearsExperience: "2-3",
		UsageType:       "Work Experience",
		ConfidenceLevel: 8,
	})
	require.NoError(t, err)

	require.Len(t, result.Skills, 1)
	assert.Equal(t, "Go", result.Skills[0].SkillName)
	assert.Equal(t, 90, result.Skills[0].ProficiencyScore)
	assert.Equal(t, "skills narrative", result.Insights)

	session, err := store.Get("session_1")
	require.NoError(t, err)
	require.Len(t, session.ManualSkills, 1)
	assert.Equal(t, "skills narrative", session.Insights["skills"])
}

func TestAddSkillRejectsDuplicates(t *testing.T) {
	store := repository.NewMemoryStore()
	_, err := store.Create("session_1")
	require.NoError(t, err)

	svc := NewSkillService(store, newStubAI(t, "skills narrative"))

	_, err = svc.AddSkill(context.Background(), AddSkillRequest{
		SessionID:       "session_1",
		SkillName:       "TypeScript",
		YearsExperience: "1-2",
		UsageType:       "Personal Project",
		ConfidenceLevel: 6,
	})
	require.NoError(t, err)

	// Duplicate detection is case-insensitive.
	_, err = svc.AddSkill(context.Background(), AddSkillRequest{
		SessionID:       "session_1",
		SkillName:       "typescript",
		YearsExperience: "3+",
		UsageType:       "Work Experience",
		ConfidenceLevel: 9,
	})
	assert.ErrorIs(t, err, util.ErrDuplicateSkill)

	session, err := store.Get("session_1")
	require.NoError(t, err)
	assert.Len(t, session.ManualSkills, 1)
}

func TestAddSkillUnknownSession(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSkillService(store, newStubAI(t, "skills narrative"))

	_, err := svc.AddSkill(context.Background(), AddSkillRequest{
		SessionID:       "missing",
		SkillName:       "Go",
		YearsExperience: "0-1",
		UsageType:       "Learning",
		ConfidenceLevel: 3,
	})
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestAddSkillUpstreamFailureLeavesSessionUntouched(t *testing.T) {
	store := repository.NewMemoryStore()
	_, err := store.Create("session_1")
	require.NoError(t, err)

	svc := NewSkillService(store, newFailingAI(t, 500))

	_, err = svc.AddSkill(context.Background(), AddSkillRequest{
		SessionID:       "session_1",
		SkillName:       "Rust",
		YearsExperience: "0-1",
		UsageType:       "Learning",
		ConfidenceLevel: 4,
	})
	assert.ErrorIs(t, err, util.ErrUpstream)

	session, err := store.Get("session_1")
	require.NoError(t, err)
	assert.Empty(t, session.ManualSkills)
}
