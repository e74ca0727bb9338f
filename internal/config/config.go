package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures all runtime configuration for the processing service.
// Every value has a default suitable for local development, so the service
// starts with an empty environment.
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Downstream DownstreamConfig
	Telemetry  TelemetryConfig
}

// AppConfig contains generic application level settings.
type AppConfig struct {
	Env      string
	LogLevel string
}

// ServerConfig holds inbound gRPC listener settings.
type ServerConfig struct {
	Port int
}

// DownstreamConfig enumerates the addresses of the downstream services.
type DownstreamConfig struct {
	ComputerAddr  string
	ValidatorAddr string
}

// TelemetryConfig controls the OTLP export pipeline.
type TelemetryConfig struct {
	Endpoint    string
	ServiceName string
	Enabled     bool
}

// Load reads environment variables, applies defaults, validates the
// resulting values and returns a populated Config instance.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ldr := &envLoader{}

	cfg := &Config{}
	cfg.App.Env = ldr.getString("APP_ENV", "development", false)
	cfg.App.LogLevel = ldr.getString("LOG_LEVEL", "info", false)

	cfg.Server.Port = ldr.getInt("GRPC_PORT", 50052, false)

	cfg.Downstream.ComputerAddr = ldr.getString("COMPUTER_ADDR", "localhost:50055", false)
	cfg.Downstream.ValidatorAddr = ldr.getString("VALIDATOR_ADDR", "localhost:50054", false)

	cfg.Telemetry.Endpoint = ldr.getString("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4317", false)
	cfg.Telemetry.ServiceName = ldr.getString("OTEL_SERVICE_NAME", "service-b", false)
	cfg.Telemetry.Enabled = ldr.getBool("TELEMETRY_ENABLED", true, false)

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		ldr.addError("GRPC_PORT must be between 1 and 65535")
	}
	if !strings.Contains(cfg.Downstream.ComputerAddr, ":") {
		ldr.addError("COMPUTER_ADDR must be in host:port form")
	}
	if !strings.Contains(cfg.Downstream.ValidatorAddr, ":") {
		ldr.addError("VALIDATOR_ADDR must be in host:port form")
	}

	if err := ldr.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ListenAddr returns the address the gRPC server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Server.Port)
}

type envLoader struct {
	errs []string
}

func (l *envLoader) validate() error {
	if len(l.errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(l.errs, "; "))
}

func (l *envLoader) getString(key, def string, required bool) string {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.TrimSpace(val)
		if val == "" {
			if required {
				l.addError(fmt.Sprintf("%s is required", key))
			}
			return def
		}
		return val
	}
	if required {
		l.addError(fmt.Sprintf("%s is required", key))
	}
	return def
}

func (l *envLoader) getInt(key string, def int, required bool) int {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.TrimSpace(val)
		if val == "" {
			if required {
				l.addError(fmt.Sprintf("%s is required", key))
			}
			return def
		}
		i, err := strconv.Atoi(val)
		if err != nil {
			l.addError(fmt.Sprintf("%s must be a valid integer", key))
			return def
		}
		return i
	}
	if required {
		l.addError(fmt.Sprintf("%s is required", key))
	}
	return def
}

func (l *envLoader) getBool(key string, def bool, required bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.TrimSpace(val)
		if val == "" {
			if required {
				l.addError(fmt.Sprintf("%s is required", key))
			}
			return def
		}
		parsed, err := strconv.ParseBool(val)
		if err != nil {
			l.addError(fmt.Sprintf("%s must be a valid boolean", key))
			return def
		}
		return parsed
	}
	if required {
		l.addError(fmt.Sprintf("%s is required", key))
	}
	return def
}

func (l *envLoader) addError(err string) {
	l.errs = append(l.errs, err)
}
