package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/madhuri-perumalla/CareerValidAI/internal/config"
	"github.com/madhuri-perumalla/CareerValidAI/internal/model"
	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/logger"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/monitoring"
)

// GitHubService fetches public GitHub data, reduces it into the session's
// githubData aggregate and caches unauthenticated API responses in redis.
type GitHubService struct {
	config config.GitHubConfig
	client *http.Client
	redis  *redis.Client
	store  repository.SessionStore
	ai     *AIService
}

func NewGitHubService(cfg config.GitHubConfig, rdb *redis.Client, store repository.SessionStore, ai *AIService) *GitHubService {
	return &GitHubService{
		config: cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		redis:  rdb,
		store:  store,
		ai:     ai,
	}
}

// UsernameFromProfileURL returns the last path segment of a GitHub profile
// URL.
func UsernameFromProfileURL(profileURL string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(profileURL), "/")
	idx := strings.LastIndex(trimmed, "/")
	username := trimmed
	if idx >= 0 {
		username = trimmed[idx+1:]
	}
	if username == "" {
		return "", util.ErrInvalidProfileURL
	}
	return username, nil
}

// LanguageDistribution reduces a repository list into a ranked percentage
// breakdown. Repositories without a language tag are excluded from both
// the buckets and the grand total. Ties keep first-encounter order; the
// result is truncated to the top 10.
func LanguageDistribution(repos []model.GitHubRepo) []model.LanguageStat {
	bytes := make(map[string]int)
	var order []string
	totalBytes := 0

	for _, repo := range repos {
		if repo.Language == "" {
			continue
		}
		if _, seen := bytes[repo.Language]; !seen {
			order = append(order, repo.Language)
		}
		bytes[repo.Language] += repo.Size
		totalBytes += repo.Size
	}

	stats := make([]model.LanguageStat, 0, len(order))
	for _, lang := range order {
		percentage := 0
		if totalBytes > 0 {
			percentage = int(float64(bytes[lang])/float64(totalBytes)*100 + 0.5)
		}
		stats = append(stats, model.LanguageStat{
			Language:   lang,
			Percentage: percentage,
			Bytes:      bytes[lang],
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Percentage > stats[j].Percentage
	})

	if len(stats) > 10 {
		stats = stats[:10]
	}
	return stats
}

func repoStats(profile *model.GitHubProfile, repos []model.GitHubRepo) model.GitHubStats {
	stats := model.GitHubStats{TotalRepos: profile.PublicRepos}
	for _, repo := range repos {
		stats.TotalStars += repo.StargazersCount
		stats.TotalForks += repo.ForksCount
	}
	return stats
}

// Analyze runs the full GitHub analysis for a session and replaces the
// session's githubData wholesale.
func (s *GitHubService) Analyze(ctx context.Context, sessionID, profileURL, token string) (*model.GitHubData, error) {
	username, err := UsernameFromProfileURL(profileURL)
	if err != nil {
		return nil, err
	}

	var profile model.GitHubProfile
	if err := s.fetchJSON(ctx, "/users/"+username, token, "github:user:"+username, &profile); err != nil {
		return nil, err
	}

	var repos []model.GitHubRepo
	if err := s.fetchJSON(ctx, "/users/"+username+"/repos?per_page=100&sort=updated", token, "github:repos:"+username, &repos); err != nil {
		return nil, err
	}

	insights, err := s.ai.Complete(ctx, githubAnalysisPrompt(&profile, repos))
	if err != nil {
		return nil, err
	}

	githubData := &model.GitHubData{
		Profile:       profile,
		Repositories:  repos,
		Insights:      insights,
		LanguageStats: LanguageDistribution(repos),
		Stats:         repoStats(&profile, repos),
	}

	if _, err := s.store.Update(sessionID, model.SessionUpdate{GithubData: githubData}); err != nil {
		return nil, err
	}
	return githubData, nil
}

// fetchJSON gets one GitHub API resource. Unauthenticated responses are
// cached in redis to stay inside the public rate limit; authenticated
// requests bypass the cache so tokens never leak shared state.
func (s *GitHubService) fetchJSON(ctx context.Context, path, token, cacheKey string, out interface{}) error {
	useCache := s.redis != nil && token == ""

	if useCache {
		cached, err := s.redis.Get(ctx, cacheKey).Bytes()
		if err == nil {
			return json.Unmarshal(cached, out)
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", s.config.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "CareerValid-AI")
	if token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		monitoring.ObserveUpstream("github", err)
		return fmt.Errorf("%w: GitHub request failed: %v", util.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		monitoring.ObserveUpstream("github", util.ErrUpstream)
		return fmt.Errorf("%w: GitHub API error: %d", util.ErrUpstream, resp.StatusCode)
	}
	monitoring.ObserveUpstream("github", nil)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: GitHub response read failed: %v", util.ErrUpstream, err)
	}

	if useCache {
		ttl := time.Duration(s.config.CacheTTLMinutes) * time.Minute
		if err := s.redis.Set(ctx, cacheKey, body, ttl).Err(); err != nil {
			logger.Log.Warn("GitHub cache write failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return json.Unmarshal(body, out)
}

func githubAnalysisPrompt(profile *model.GitHubProfile, repos []model.GitHubRepo) string {
	promptRepos := repos
	if len(promptRepos) > 20 {
		promptRepos = promptRepos[:20]
	}
	profileJSON, _ := json.MarshalIndent(profile, "", "  ")
	reposJSON, _ := json.MarshalIndent(promptRepos, "", "  ")

	return fmt.Sprintf(`Analyze this GitHub profile data and provide career insights:

Profile: %s
Repositories: %s

Please provide insights in this exact format:

🧠 **Career Insights**
- Key Skills Detected: (list as inline code style)
- Activity Summary: (commit behavior, projects, patterns)
- Profile Strengths: (Frontend/Backend/Data Science/etc.)

💡 **AI Recommendations**
🔧 **Skills to Focus On**
• [specific recommendations]

🧪 **Suggested Projects**
• [project ideas based on current skills]

📚 **Learning Resources**
• [specific learning recommendations]

🚀 **Career Path Suggestions**
• [role recommendations]

🔄 **Final Motivation**
[One motivational line]`, profileJSON, reposJSON)
}
