package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
	"github.com/madhuri-perumalla/CareerValidAI/internal/util"
)

func TestGetOrCreateGeneratesID(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store)

	session, err := svc.GetOrCreate("")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(session.SessionID, "session_"))

	// A second empty-id call starts a fresh session.
	other, err := svc.GetOrCreate("")
	require.NoError(t, err)
	assert.NotEqual(t, session.SessionID, other.SessionID)
}

func TestGetOrCreateResumesExisting(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store)

	created, err := svc.GetOrCreate("session_42")
	require.NoError(t, err)

	resumed, err := svc.GetOrCreate("session_42")
	require.NoError(t, err)
	assert.Equal(t, created.ID, resumed.ID)
	assert.Equal(t, created.SessionID, resumed.SessionID)
}

func TestSessionGetAndExport(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewSessionService(store)

	_, err := svc.GetOrCreate("session_1")
	require.NoError(t, err)
	_, err = store.AppendChatMessage("session_1", "hello", "hi there")
	require.NoError(t, err)

	view, err := svc.Get("session_1")
	require.NoError(t, err)
	assert.Equal(t, "session_1", view.Session.SessionID)
	require.Len(t, view.ChatMessages, 1)
	assert.Equal(t, "hello", view.ChatMessages[0].Message)

	export, err := svc.Export("session_1")
	require.NoError(t, err)
	assert.Equal(t, "session_1", export.Session.SessionID)
	assert.False(t, export.ExportedAt.IsZero())
}

func TestSessionGetUnknown(t *testing.T) {
	svc := NewSessionService(repository.NewMemoryStore())

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	_, err = svc.Export("missing")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}
