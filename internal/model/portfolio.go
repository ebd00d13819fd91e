package model

import "time"

// PortfolioData is the stored result of one portfolio analysis. Title and
// Description are best-effort extractions from the fetched page.
type PortfolioData struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Insights    string    `json:"insights"`
	AnalyzedAt  time.Time `json:"analyzedAt"`
}
