package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u, err := s.User(ctx, "sid-1")
	require.NoError(t, err)
	require.Empty(t, u)

	require.NoError(t, s.SetUser(ctx, "sid-1", "alice"))
	u, err = s.User(ctx, "sid-1")
	require.NoError(t, err)
	require.Equal(t, "alice", u)

	require.NoError(t, s.ClearUser(ctx, "sid-1"))
	u, err = s.User(ctx, "sid-1")
	require.NoError(t, err)
	require.Empty(t, u)
}

func TestMemoryStoreFlashesDrainOnce(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.AddFlash(ctx, "sid-1", Flash{Level: FlashSuccess, Message: "one"}))
	require.NoError(t, s.AddFlash(ctx, "sid-1", Flash{Level: FlashDanger, Message: "two"}))

	got, err := s.Flashes(ctx, "sid-1")
	require.NoError(t, err)
	require.Equal(t, []Flash{{FlashSuccess, "one"}, {FlashDanger, "two"}}, got)

	got, err = s.Flashes(ctx, "sid-1")
	require.NoError(t, err)
	require.Empty(t, got)
}
