package server

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"message-processor/internal/config"
	"message-processor/internal/handlers"
	"message-processor/internal/logging"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *logrus.Logger
	EventHandler *handlers.EventHandler
}

// NewContainer creates a new dependency injection container. Logs are
// written to out.
func NewContainer(cfg *config.Config, out io.Writer) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger, err := logging.New(cfg.Log, out)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	serverless := config.GetServerlessConfig()
	entry := logger.WithFields(logrus.Fields{
		"environment":     cfg.Environment,
		"deployment_mode": config.GetDeploymentMode(),
	})
	if serverless.IsLambda {
		entry = entry.WithFields(logrus.Fields{
			"function_name": serverless.FunctionName,
			"region":        serverless.Region,
			"stage":         serverless.Stage,
		})
	}

	return &Container{
		Config:       cfg,
		Logger:       logger,
		EventHandler: handlers.NewEventHandler(entry, nil),
	}, nil
}

// RouterConfig returns the route configuration for the local invoke server
func (c *Container) RouterConfig() *handlers.RouterConfig {
	return &handlers.RouterConfig{
		EventHandler: c.EventHandler,
		Logger:       c.Logger,
		Server:       c.Config.Server,
	}
}
