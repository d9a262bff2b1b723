package data

import (
	"context"
	"fmt"

	assistantbiz "github.com/lk2023060901/assistant-directory/internal/assistant/biz"
	assistantdata "github.com/lk2023060901/assistant-directory/internal/assistant/data"
	"github.com/lk2023060901/assistant-directory/internal/conf"
	"github.com/lk2023060901/assistant-directory/internal/pkg/database"
	"github.com/lk2023060901/assistant-directory/internal/pkg/logger"
	"go.uber.org/zap"
)

// Store is an assistant connector that can report its own health
type Store interface {
	assistantbiz.Connector
	HealthCheck(ctx context.Context) error
}

type Data struct {
	Store  Store
	DB     *database.DB // nil for the memory driver
	Logger *logger.Logger
}

func NewData(config *conf.Config, log *logger.Logger) (*Data, func(), error) {
	d := &Data{Logger: log}

	switch config.Database.Driver {
	case database.DriverPostgres:
		db, err := database.New(&config.Database, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init database: %w", err)
		}
		d.DB = db
		d.Store = assistantdata.NewPostgresConnector(db)
	case database.DriverMemory:
		log.Warn("using in-memory assistant store, data is lost on exit")
		d.Store = assistantdata.NewMemoryConnector()
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", config.Database.Driver)
	}

	cleanup := func() {
		log.Info("cleaning up data resources")

		if d.DB != nil {
			if err := d.DB.Close(); err != nil {
				log.Error("failed to close database", zap.Error(err))
			}
		}
	}

	return d, cleanup, nil
}
