package data

import (
	"context"
	"testing"

	"github.com/lk2023060901/assistant-directory/internal/assistant/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryConnector_InsertAndList(t *testing.T) {
	store := NewMemoryConnector()
	ctx := context.Background()

	conn, err := store.Acquire(ctx)
	require.NoError(t, err)

	for _, name := range []string{"Zeta", "Alpha", "Mona"} {
		_, err := conn.InsertAssistant(ctx, &types.Assistant{Name: name})
		require.NoError(t, err)
	}

	got, err := conn.ListAssistants(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(got))
	for _, a := range got {
		names = append(names, a.Name)
		assert.NotEmpty(t, a.UUID)
		assert.Equal(t, []string{}, a.EnabledTools)
	}
	assert.Equal(t, []string{"Alpha", "Mona", "Zeta"}, names)

	require.NoError(t, store.Release(conn))
}

func TestMemoryConnector_ListReturnsCopies(t *testing.T) {
	store := NewMemoryConnector()
	store.Seed(types.Assistant{Name: "Nova", EnabledTools: []string{"timer"}})
	ctx := context.Background()

	conn, err := store.Acquire(ctx)
	require.NoError(t, err)
	defer store.Release(conn)

	first, err := conn.ListAssistants(ctx)
	require.NoError(t, err)
	first[0].Name = "changed"
	first[0].EnabledTools[0] = "changed"

	second, err := conn.ListAssistants(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nova", second[0].Name)
	assert.Equal(t, []string{"timer"}, second[0].EnabledTools)
}

func TestMemoryConnector_ReleasedConn(t *testing.T) {
	store := NewMemoryConnector()
	ctx := context.Background()

	conn, err := store.Acquire(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Release(conn))

	_, err = conn.ListAssistants(ctx)
	assert.ErrorIs(t, err, errConnReleased)

	_, err = conn.InsertAssistant(ctx, &types.Assistant{Name: "Nova"})
	assert.ErrorIs(t, err, errConnReleased)
}

func TestMemoryConnector_AcquireCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryConnector().Acquire(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryConnector_ReleaseForeignConn(t *testing.T) {
	a, b := NewMemoryConnector(), NewMemoryConnector()

	conn, err := a.Acquire(context.Background())
	require.NoError(t, err)

	assert.Error(t, b.Release(conn))
	assert.NoError(t, a.HealthCheck(context.Background()))
}
