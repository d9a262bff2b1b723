package injector

import (
	assistantbiz "github.com/lk2023060901/assistant-directory/internal/assistant/biz"
	"github.com/lk2023060901/assistant-directory/internal/data"
	"github.com/lk2023060901/assistant-directory/internal/server"
)

func provideConnector(d *data.Data) assistantbiz.Connector {
	return d.Store
}

func provideHealthChecker(d *data.Data) server.HealthChecker {
	return d.Store
}
