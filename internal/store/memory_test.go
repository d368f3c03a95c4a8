package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solutions-kit/os-tracker/internal/domain"
)

func TestMemoryStoreSeedsOnce(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "FACTASK0000001", first[0].OSNumber)
	require.Len(t, first[0].History, 1)

	second, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMemoryStoreWithSkipsSeed(t *testing.T) {
	s := NewMemoryStoreWith([]domain.Ticket{{ID: "a", OSNumber: "FACTASK0000004"}})

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "a", loaded[0].ID)
}

func TestMemoryStoreWithEmptyStaysEmpty(t *testing.T) {
	s := NewMemoryStoreWith(nil)

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	s := NewMemoryStoreWith([]domain.Ticket{{
		ID:      "a",
		Status:  domain.StatusNotStarted,
		History: []domain.HistoryEntry{{Action: "Chamado aberto"}},
	}})
	ctx := context.Background()

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	loaded[0].Status = domain.StatusCompleted
	loaded[0].History[0].Action = "tampered"

	reloaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotStarted, reloaded[0].Status)
	assert.Equal(t, "Chamado aberto", reloaded[0].History[0].Action)
}

func TestMemoryStoreSaveReplaces(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []domain.Ticket{{ID: "x"}, {ID: "y"}}))
	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	require.NoError(t, s.Save(ctx, []domain.Ticket{{ID: "z"}}))
	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "z", loaded[0].ID)
}
