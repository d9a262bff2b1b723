package data

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/lk2023060901/assistant-directory/internal/assistant/biz"
	"github.com/lk2023060901/assistant-directory/internal/assistant/types"
)

var errConnReleased = errors.New("connection already released")

// MemoryConnector is an in-process assistant store. Names are ordered by
// byte-wise comparison, which matches the C collation.
type MemoryConnector struct {
	mu   sync.RWMutex
	rows []types.Assistant
}

// NewMemoryConnector creates an empty in-memory store
func NewMemoryConnector() *MemoryConnector {
	return &MemoryConnector{}
}

// Seed stores rows as given, generating a uuid where one is missing
func (m *MemoryConnector) Seed(rows ...types.Assistant) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range rows {
		if row.UUID == "" {
			row.UUID = uuid.New().String()
		}
		m.rows = append(m.rows, clone(&row))
	}
}

// Acquire returns a connection handle bound to this store
func (m *MemoryConnector) Acquire(ctx context.Context) (biz.AssistantConn, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return &memoryConn{store: m}, nil
}

// Release invalidates the handle
func (m *MemoryConnector) Release(conn biz.AssistantConn) error {
	mc, ok := conn.(*memoryConn)
	if !ok || mc.store != m {
		return fmt.Errorf("unexpected connection type %T", conn)
	}
	mc.released = true
	return nil
}

// HealthCheck always succeeds
func (m *MemoryConnector) HealthCheck(context.Context) error {
	return nil
}

type memoryConn struct {
	store    *MemoryConnector
	released bool
}

func (c *memoryConn) ListAssistants(ctx context.Context) ([]*types.Assistant, error) {
	if c.released {
		return nil, errConnReleased
	}

	c.store.mu.RLock()
	out := make([]*types.Assistant, 0, len(c.store.rows))
	for i := range c.store.rows {
		row := clone(&c.store.rows[i])
		out = append(out, &row)
	}
	c.store.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b *types.Assistant) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (c *memoryConn) InsertAssistant(ctx context.Context, assistant *types.Assistant) (*types.Assistant, error) {
	if c.released {
		return nil, errConnReleased
	}

	row := clone(assistant)
	row.UUID = uuid.New().String()
	if row.EnabledTools == nil {
		row.EnabledTools = []string{}
	}

	c.store.mu.Lock()
	c.store.rows = append(c.store.rows, row)
	c.store.mu.Unlock()

	created := clone(&row)
	return &created, nil
}

func clone(a *types.Assistant) types.Assistant {
	out := *a
	if a.VoiceID != nil {
		v := *a.VoiceID
		out.VoiceID = &v
	}
	if a.EnabledTools != nil {
		out.EnabledTools = slices.Clone(a.EnabledTools)
	}
	return out
}
