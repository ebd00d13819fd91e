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
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

func TestAICompleteSendsAuthAndModel(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`)
	}))
	defer srv.Close()

	svc := NewAIService(config.AIConfig{
		BaseURL:        srv.URL,
		APIKey:         "secret",
		Model:          "gpt-test",
		TimeoutSeconds: 5,
	})

	reply, err := svc.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "hello", reply)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
}

func TestAICompleteUpstreamError(t *testing.T) {
	svc := newFailingAI(t, http.StatusTooManyRequests)

	_, err := svc.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, util.ErrUpstream)
}

func TestAICompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	svc := NewAIService(config.AIConfig{BaseURL: srv.URL, TimeoutSeconds: 5})

	_, err := svc.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, util.ErrUpstream)
}

func TestAIUpdateConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"from new endpoint"}}]}`)
	}))
	defer srv.Close()

	svc := NewAIService(config.AIConfig{BaseURL: "http://127.0.0.1:0", TimeoutSeconds: 1})
	svc.UpdateConfig(config.AIConfig{BaseURL: srv.URL, APIKey: "rotated", Model: "gpt-test", TimeoutSeconds: 5})

	reply, err := svc.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "from new endpoint", reply)
}
