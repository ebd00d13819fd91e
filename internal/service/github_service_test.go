package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhuri-perumalla/CareerValidAI/internal/config"
	"github.com/madhuri-perumalla/CareerValidAI/internal/model"
	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

func TestUsernameFromProfileURL(t *testing.T) {
	tests := []struct {
		name       string
		profileURL string
		want       string
		wantErr    bool
	}{
		{"plain url", "https://github.com/octocat", "octocat", false},
		{"trailing slash", "https://github.com/octocat/", "octocat", false},
		{"surrounding whitespace", "  https://github.com/octocat  ", "octocat", false},
		{"bare username", "octocat", "octocat", false},
		{"empty", "", "", true},
		{"only slashes", "///", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UsernameFromProfileURL(tt.profileURL)
			if tt.wantErr {
				assert.ErrorIs(t, err, util.ErrInvalidProfileURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageDistribution(t *testing.T) {
	repos := []model.GitHubRepo{
		{Name: "a", Language: "Go", Size: 200},
		{Name: "b", Language: "Rust", Size: 100},
		{Name: "c", Language: "Go", Size: 100},
	}

	stats := LanguageDistribution(repos)
	require.Len(t, stats, 2)
	assert.Equal(t, model.LanguageStat{Language: "Go", Percentage: 75, Bytes: 300}, stats[0])
	assert.Equal(t, model.LanguageStat{Language: "Rust", Percentage: 25, Bytes: 100}, stats[1])
}

func TestLanguageDistributionExcludesUntagged(t *testing.T) {
	repos := []model.GitHubRepo{
		{Name: "docs", Language: "", Size: 5000},
		{Name: "app", Language: "Go", Size: 100},
	}

	stats := LanguageDistribution(repos)
	require.Len(t, stats, 1)
	assert.Equal(t, "Go", stats[0].Language)
	assert.Equal(t, 100, stats[0].Percentage)
}

func TestLanguageDistributionEmpty(t *testing.T) {
	assert.Empty(t, LanguageDistribution(nil))
	assert.Empty(t, LanguageDistribution([]model.GitHubRepo{
		{Name: "only-docs", Language: "", Size: 1000},
	}))
}

func TestLanguageDistributionTiesKeepEncounterOrder(t *testing.T) {
	repos := []model.GitHubRepo{
		{Name: "a", Language: "Python", Size: 100},
		{Name: "b", Language: "Ruby", Size: 100},
	}

	stats := LanguageDistribution(repos)
	require.Len(t, stats, 2)
	assert.Equal(t, "Python", stats[0].Language)
	assert.Equal(t, "Ruby", stats[1].Language)
}

func TestLanguageDistributionTopTen(t *testing.T) {
	var repos []model.GitHubRepo
	for i := 0; i < 15; i++ {
		repos = append(repos, model.GitHubRepo{
			Name:     fmt.Sprintf("repo-%d", i),
			Language: fmt.Sprintf("Lang%d", i),
			Size:     1000 - i,
		})
	}

	stats := LanguageDistribution(repos)
	require.Len(t, stats, 10)
	assert.Equal(t, "Lang0", stats[0].Language)
	assert.Equal(t, "Lang9", stats[9].Language)
}

func TestGitHubAnalyze(t *testing.T) {
	github := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/octocat":
			fmt.Fprint(w, `{"login":"octocat","name":"The Octocat","public_repos":8,"followers":42}`)
		case "/users/octocat/repos":
			fmt.Fprint(w, `[
				{"id":1,"name":"hello","language":"Go","stargazers_count":10,"forks_count":2,"size":300},
				{"id":2,"name":"world","language":"Rust","stargazers_count":5,"forks_count":1,"size":100}
			]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer github.Close()

	store := repository.NewMemoryStore()
	_, err := store.Create("session_1")
	require.NoError(t, err)

	cfg := config.GitHubConfig{BaseURL: github.URL, TimeoutSeconds: 5}
	svc := NewGitHubService(cfg, nil, store, newStubAI(t, "github insights"))

	data, err := svc.Analyze(context.Background(), "session_1", "https://github.com/octocat", "")
	require.NoError(t, err)

	assert.Equal(t, "octocat", data.Profile.Login)
	assert.Equal(t, "github insights", data.Insights)
	assert.Equal(t, 8, data.Stats.TotalRepos)
	assert.Equal(t, 15, data.Stats.TotalStars)
	assert.Equal(t, 3, data.Stats.TotalForks)
	require.Len(t, data.LanguageStats, 2)
	assert.Equal(t, "Go", data.LanguageStats[0].Language)

	session, err := store.Get("session_1")
	require.NoError(t, err)
	require.NotNil(t, session.GithubData)
	assert.Equal(t, "octocat", session.GithubData.Profile.Login)
}

func TestGitHubAnalyzeUpstreamError(t *testing.T) {
	github := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"rate limit exceeded"}`, http.StatusForbidden)
	}))
	defer github.Close()

	store := repository.NewMemoryStore()
	_, err := store.Create("session_1")
	require.NoError(t, err)

	cfg := config.GitHubConfig{BaseURL: github.URL, TimeoutSeconds: 5}
	svc := NewGitHubService(cfg, nil, store, newStubAI(t, "unused"))

	_, err = svc.Analyze(context.Background(), "session_1", "https://github.com/octocat", "")
	assert.ErrorIs(t, err, util.ErrUpstream)

	session, err := store.Get("session_1")
	require.NoError(t, err)
	assert.Nil(t, session.GithubData)
}

func TestGitHubAnalyzeInvalidProfileURL(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewGitHubService(config.GitHubConfig{TimeoutSeconds: 5}, nil, store, newStubAI(t, "unused"))

	_, err := svc.Analyze(context.Background(), "session_1", "   ", "")
	assert.ErrorIs(t, err, util.ErrInvalidProfileURL)
}
