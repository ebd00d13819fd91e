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
	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

func TestPortfolioMetadataExtraction(t *testing.T) {
	html := `<html><head>
		<title>Jane Doe | Portfolio</title>
		<meta name="description" content="Full-stack developer portfolio">
	</head><body></body></html>`

	assert.Equal(t, "Jane Doe | Portfolio", firstSubmatch(titlePattern, html))
	assert.Equal(t, "Full-stack developer portfolio", firstSubmatch(descriptionPattern, html))

	assert.Equal(t, "", firstSubmatch(titlePattern, "<html><body>no head</body></html>"))
	assert.Equal(t, "", firstSubmatch(descriptionPattern, "<html><head></head></html>"))
}

func TestPortfolioAnalyze(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>My Work</title><meta name="description" content="Projects and writing"></head><body>content</body></html>`)
	}))
	defer site.Close()

	store := repository.NewMemoryStore()
	_, err := store.Create("session_1")
	require.NoError(t, err)

	svc := NewPortfolioService(config.GitHubConfig{TimeoutSeconds: 5}, store, newStubAI(t, "portfolio review"))

	data, err := svc.Analyze(context.Background(), "session_1", site.URL)
	require.NoError(t, err)
	assert.Equal(t, site.URL, data.URL)
	assert.Equal(t, "My Work", data.Title)
	assert.Equal(t, "Projects and writing", data.Description)
	assert.Equal(t, "portfolio review", data.Insights)

	session, err := store.Get("session_1")
	require.NoError(t, err)
	require.NotNil(t, session.PortfolioData)
	assert.Equal(t, "My Work", session.PortfolioData.Title)
}

func TestPortfolioAnalyzeFetchFailure(t *testing.T) {
	site := httptest.NewServer(http.NotFoundHandler())
	site.Close()

	store := repository.NewMemoryStore()
	_, err := store.Create("session_1")
	require.NoError(t, err)

	svc := NewPortfolioService(config.GitHubConfig{TimeoutSeconds: 1}, store, newStubAI(t, "unused"))

	_, err = svc.Analyze(context.Background(), "session_1", site.URL)
	assert.ErrorIs(t, err, util.ErrUpstream)
}
