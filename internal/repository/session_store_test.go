package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhuri-perumalla/CareerValidAI/internal/model"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.Create("session_1")
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "session_1", created.SessionID)
	assert.NotNil(t, created.ManualSkills)
	assert.Empty(t, created.ManualSkills)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.Get("session_1")
	require.NoError(t, err)
	assert.Equal(t, created.SessionID, got.SessionID)

	messages, err := store.GetChatMessages("session_1")
	require.NoError(t, err)
	assert.Empty(t, messages)

	second, err := store.Create("session_2")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	_, err = store.Update("missing", model.SessionUpdate{})
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	_, err = store.AppendChatMessage("missing", "hi", "hello")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	_, err = store.GetChatMessages("missing")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestMemoryStoreUpdateIsFieldIsolated(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Create("session_1")
	require.NoError(t, err)

	githubData := &model.GitHubData{Insights: "github insights"}
	_, err = store.Update("session_1", model.SessionUpdate{GithubData: githubData})
	require.NoError(t, err)

	resumeData := &model.ResumeData{FileName: "resume.pdf", Score: 85}
	updated, err := store.Update("session_1", model.SessionUpdate{ResumeData: resumeData})
	require.NoError(t, err)

	require.NotNil(t, updated.GithubData)
	assert.Equal(t, "github insights", updated.GithubData.Insights)
	require.NotNil(t, updated.ResumeData)
	assert.Equal(t, 85, updated.ResumeData.Score)
	assert.Nil(t, updated.PortfolioData)
}

func TestMemoryStoreInsightsMergeKeyWise(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Create("session_1")
	require.NoError(t, err)

	_, err = store.Update("session_1", model.SessionUpdate{
		Insights: map[string]string{"github": "first", "skills": "skills v1"},
	})
	require.NoError(t, err)

	updated, err := store.Update("session_1", model.SessionUpdate{
		Insights: map[string]string{"skills": "skills v2"},
	})
	require.NoError(t, err)

	assert.Equal(t, "first", updated.Insights["github"])
	assert.Equal(t, "skills v2", updated.Insights["skills"])
}

func TestMemoryStoreReturnsClones(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Create("session_1")
	require.NoError(t, err)

	first, err := store.Get("session_1")
	require.NoError(t, err)
	first.ManualSkills = append(first.ManualSkills, model.ManualSkill{SkillName: "Go"})
	first.Insights = map[string]string{"injected": "value"}

	second, err := store.Get("session_1")
	require.NoError(t, err)
	assert.Empty(t, second.ManualSkills)
	assert.Nil(t, second.Insights)
}

func TestMemoryStoreChatMessageIDsAreProcessWide(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Create("session_a")
	require.NoError(t, err)
	_, err = store.Create("session_b")
	require.NoError(t, err)

	msg1, err := store.AppendChatMessage("session_a", "first", "reply one")
	require.NoError(t, err)
	msg2, err := store.AppendChatMessage("session_b", "second", "reply two")
	require.NoError(t, err)
	msg3, err := store.AppendChatMessage("session_a", "third", "reply three")
	require.NoError(t, err)

	assert.Equal(t, 1, msg1.ID)
	assert.Equal(t, 2, msg2.ID)
	assert.Equal(t, 3, msg3.ID)

	messages, err := store.GetChatMessages("session_a")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Message)
	assert.Equal(t, "third", messages[1].Message)
	assert.Equal(t, "reply three", messages[1].Response)
}
