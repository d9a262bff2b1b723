package data

import (
	"context"
	"testing"

	"github.com/lk2023060901/assistant-directory/internal/conf"
	"github.com/lk2023060901/assistant-directory/internal/pkg/database"
	"github.com/lk2023060901/assistant-directory/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewData_Memory(t *testing.T) {
	config := &conf.Config{Database: database.Config{Driver: database.DriverMemory}}

	d, cleanup, err := NewData(config, logger.NewNop())
	require.NoError(t, err)
	defer cleanup()

	assert.Nil(t, d.DB)
	require.NotNil(t, d.Store)
	assert.NoError(t, d.Store.HealthCheck(context.Background()))

	conn, err := d.Store.Acquire(context.Background())
	require.NoError(t, err)
	assert.NoError(t, d.Store.Release(conn))
}

func TestNewData_UnknownDriver(t *testing.T) {
	config := &conf.Config{Database: database.Config{Driver: "sqlite"}}

	_, _, err := NewData(config, logger.NewNop())
	assert.Error(t, err)
}
