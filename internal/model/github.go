package model

// GitHubProfile mirrors the fields consumed from the GitHub users endpoint.
type GitHubProfile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// GitHubRepo mirrors the fields consumed from the GitHub repos endpoint.
// Size is the repository size in kilobytes as reported by the API.
type GitHubRepo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Size            int    `json:"size"`
	HTMLURL         string `json:"html_url"`
	UpdatedAt       string `json:"updated_at"`
}

// LanguageStat is one row of the byte-weighted language distribution,
// recomputed fresh on every GitHub analysis.
type LanguageStat struct {
	Language   string `json:"language"`
	Percentage int    `json:"percentage"`
	Bytes      int    `json:"bytes"`
}

type GitHubStats struct {
	TotalRepos int `json:"totalRepos"`
	TotalStars int `json:"totalStars"`
	TotalForks int `json:"totalForks"`
}

// GitHubData is the composed analysis result written wholesale into the
// session on each GitHub analysis.
type GitHubData struct {
	Profile       GitHubProfile  `json:"profile"`
	Repositories  []GitHubRepo   `json:"repositories"`
	Insights      string         `json:"insights"`
	LanguageStats []LanguageStat `json:"languageStats"`
	Stats         GitHubStats    `json:"stats"`
}
