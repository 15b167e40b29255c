package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	BookingAPI BookingAPIConfig `toml:"booking_api"`
	Auth       AuthConfig       `toml:"auth"`
	Redis      RedisConfig      `toml:"redis"`
	Holds      HoldsConfig      `toml:"holds"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingAPIConfig настройки клиента booking engine
type BookingAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// AuthConfig настройки аутентификации
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// RedisConfig настройки кэша справочников
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// HoldsConfig настройки блокировок расписания
type HoldsConfig struct {
	TTLSeconds  int `toml:"ttl_seconds"`
	TickSeconds int `toml:"tick_seconds"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{
		// Дефолтные значения - перекрываются файлом
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-customer-portal",
		},
		BookingAPI: BookingAPIConfig{
			Timeout: 10,
		},
		Redis: RedisConfig{
			TTLSeconds: 600,
		},
		Holds: HoldsConfig{
			TTLSeconds:  600,
			TickSeconds: 1,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %q: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.BookingAPI.URL == "" {
		return fmt.Errorf("booking_api.url is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Holds.TTLSeconds <= 0 {
		return fmt.Errorf("holds.ttl_seconds must be positive")
	}
	if c.Holds.TickSeconds <= 0 {
		return fmt.Errorf("holds.tick_seconds must be positive")
	}
	return nil
}
