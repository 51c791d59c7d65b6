package main

import (
	"github.com/dmitrymomot/commandhttp/core/server"
	"github.com/dmitrymomot/commandhttp/core/telemetry"
)

// Config holds the command server configuration loaded from the environment.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"commandserver"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DefaultStatus int   `env:"COMMAND_DEFAULT_STATUS" envDefault:"500"`
	SuccessStatus int   `env:"COMMAND_SUCCESS_STATUS" envDefault:"200"`
	MaxBodyBytes  int64 `env:"COMMAND_MAX_BODY_BYTES" envDefault:"1048576"`

	Server    server.Config
	Telemetry telemetry.Config
}

// IsProduction reports whether the service runs in production.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
