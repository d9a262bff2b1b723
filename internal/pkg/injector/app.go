package injector

import (
	"github.com/lk2023060901/assistant-directory/internal/conf"
	"github.com/lk2023060901/assistant-directory/internal/pkg/logger"
	"github.com/lk2023060901/assistant-directory/internal/server"
)

// App encapsulates all application dependencies
type App struct {
	Config     *conf.Config
	Logger     *logger.Logger
	HTTPServer *server.HTTPServer
}
