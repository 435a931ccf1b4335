package main

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// Default config values.
const (
	FrontendAddress string        = "localhost:8081"
	APIURL          string        = "http://localhost:8080"
	LogLevel        string        = "INFO"
	RequestTimeout  time.Duration = 10 * time.Second
	ShutdownTimeout time.Duration = 10 * time.Second
)

// Config is front end configuration.
type Config struct {
	// Адрес запуска HTTP-сервера. Пример: localhost:8081
	FrontendAddress string `env:"FRONTEND_ADDRESS"`
	// Базовый адрес API. Пример: http://localhost:8080
	APIURL          string        `env:"API_URL"`
	LogLevel        string        `env:"LOG_LEVEL"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// NewConfig reads flags, then env. Env overrides flags.
func NewConfig(args []string) (*Config, error) {
	config := &Config{}

	fs := pflag.NewFlagSet("frontend", pflag.ContinueOnError)
	fs.StringVarP(&config.FrontendAddress, "address", "a", FrontendAddress, "Front end address")
	fs.StringVarP(&config.APIURL, "api-url", "u", APIURL, "API base URL")
	fs.StringVarP(&config.LogLevel, "log-level", "l", LogLevel, "Log level")
	fs.DurationVar(&config.RequestTimeout, "request-timeout", RequestTimeout, "API request timeout")
	fs.DurationVar(&config.ShutdownTimeout, "shutdown-timeout", ShutdownTimeout, "Graceful shutdown timeout")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
