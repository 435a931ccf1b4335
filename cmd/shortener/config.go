package main

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default config values.
const (
	ServerAddress      string        = "localhost:8080"
	DatabaseDriver     string        = "pgx"
	LogLevel           string        = "INFO"
	PathLength         uint          = 8
	MaxPathLength      uint          = 16
	CountRegenerations uint          = 5
	ResponseCacheTTL   time.Duration = 30 * time.Second
	ShutdownTimeout    time.Duration = 10 * time.Second
)

// Config keys. Env variable name is upper-cased key.
const (
	ServerAddressKey      string = "server_address"
	DatabaseDSNKey        string = "database_dsn"
	DatabaseDriverKey     string = "database_driver"
	RedisAddrKey          string = "redis_addr"
	LogLevelKey           string = "log_level"
	PathLengthKey         string = "path_length"
	MaxPathLengthKey      string = "max_path_length"
	CountRegenerationsKey string = "count_regenerations"
	ResponseCacheTTLKey   string = "response_cache_ttl"
	RateLimitKey          string = "rate_limit"
	ShutdownTimeoutKey    string = "shutdown_timeout"
	ConfigKey             string = "config"
)

// Config is API server configuration.
type Config struct {
	// Адрес запуска HTTP-сервера. Пример: localhost:8080
	ServerAddress string `mapstructure:"server_address"`
	// DSN базы данных. Если пустой, используется хранилище в памяти.
	DatabaseDSN string `mapstructure:"database_dsn"`
	// Драйвер database/sql: pgx или sqlite3.
	DatabaseDriver string `mapstructure:"database_driver"`
	// Адрес redis для кэша ответов. Если пустой, кэш в памяти.
	RedisAddr string `mapstructure:"redis_addr"`
	// Уровень логирования.
	LogLevel string `mapstructure:"log_level"`

	// Начальная и максимальная длина сгенерированного пути.
	PathLength    uint `mapstructure:"path_length"`
	MaxPathLength uint `mapstructure:"max_path_length"`
	// Количество попыток генерации пути для каждой длины.
	CountRegenerations uint `mapstructure:"count_regenerations"`
	// Время жизни записи в кэше ответов.
	ResponseCacheTTL time.Duration `mapstructure:"response_cache_ttl"`

	// Запросов в секунду с одного IP клиента, 0 отключает ограничение.
	RateLimit int `mapstructure:"rate_limit"`
	// Время ожидания корректного завершения сервера.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// Путь к файлу конфигурации (JSON или YAML).
	Config string `mapstructure:"config"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("shortener", pflag.ContinueOnError)
	fs.StringP("server-address", "a", ServerAddress, "Server address")
	fs.StringP("database-dsn", "d", "", "Database DSN")
	fs.String("database-driver", DatabaseDriver, "Database driver: pgx or sqlite3")
	fs.StringP("redis-addr", "r", "", "Redis address for response cache")
	fs.StringP("log-level", "l", LogLevel, "Log level")
	fs.Uint("path-length", PathLength, "Initial length of generated path")
	fs.Uint("max-path-length", MaxPathLength, "Max length of generated path")
	fs.Uint("count-regenerations", CountRegenerations, "Path generation attempts for every length")
	fs.Duration("response-cache-ttl", ResponseCacheTTL, "Resolved URL cache TTL")
	fs.Int("rate-limit", 0, "Requests per second per client IP, 0 disables limiting")
	fs.Duration("shutdown-timeout", ShutdownTimeout, "Graceful shutdown timeout")
	fs.StringP("config", "c", "", "Config file path")
	return fs
}

// NewConfig reads config. Precedence: flags, env, config file, defaults.
func NewConfig(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(ServerAddressKey, ServerAddress)
	v.SetDefault(DatabaseDSNKey, "")
	v.SetDefault(DatabaseDriverKey, DatabaseDriver)
	v.SetDefault(RedisAddrKey, "")
	v.SetDefault(LogLevelKey, LogLevel)
	v.SetDefault(PathLengthKey, PathLength)
	v.SetDefault(MaxPathLengthKey, MaxPathLength)
	v.SetDefault(CountRegenerationsKey, CountRegenerations)
	v.SetDefault(ResponseCacheTTLKey, ResponseCacheTTL)
	v.SetDefault(RateLimitKey, 0)
	v.SetDefault(ShutdownTimeoutKey, ShutdownTimeout)
	v.SetDefault(ConfigKey, "")

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	if err != nil {
		return nil, err
	}

	v.AutomaticEnv()

	if configPath := v.GetString(ConfigKey); configPath != "" {
		v.SetConfigFile(configPath)
		if err = v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	config := &Config{}
	if err = v.Unmarshal(config); err != nil {
		return nil, err
	}
	return config, nil
}
