//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/google/wire"
	assistantbiz "github.com/lk2023060901/assistant-directory/internal/assistant/biz"
	assistantservice "github.com/lk2023060901/assistant-directory/internal/assistant/service"
	"github.com/lk2023060901/assistant-directory/internal/conf"
	"github.com/lk2023060901/assistant-directory/internal/data"
	"github.com/lk2023060901/assistant-directory/internal/pkg/logger"
	"github.com/lk2023060901/assistant-directory/internal/server"
)

// ProviderSet is the Wire provider set for all dependencies
var ProviderSet = wire.NewSet(
	// Data layer
	data.NewData,
	provideConnector,
	provideHealthChecker,

	// Use cases
	assistantbiz.NewAssistantUseCase,

	// HTTP services
	assistantservice.NewAssistantService,

	// Servers
	server.NewHTTPServer,
)

// InitializeApp initializes the application with Wire
func InitializeApp(config *conf.Config, log *logger.Logger) (*App, func(), error) {
	wire.Build(ProviderSet, wire.Struct(new(App), "*"))
	return nil, nil, nil
}
