// Package config loads typed configuration from environment variables.
//
// Fields are parsed with caarlos0/env. A .env file in the working directory is
// read on first use; a missing file is not an error and variables already set
// in the process environment win over the file.
//
//	type Config struct {
//		AppName       string        `env:"APP_NAME" envDefault:"commandserver"`
//		DefaultStatus int           `env:"COMMAND_DEFAULT_STATUS" envDefault:"500"`
//		Server        server.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// MustLoad panics instead of returning the error and is meant for main.
//
// # Caching
//
// Each configuration type is parsed once per process. Later calls for the same
// type copy the cached value, so environment changes after the first call are
// not observed. Distinct types are cached independently.
package config
