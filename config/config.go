package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPConfig struct {
	Address           string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":5000"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type DBConfig struct {
	Address       string        `yaml:"address" env:"DATABASE_URL" env-required:"true"`
	MaxConns      int           `yaml:"max_conns" env:"DB_MAX_CONNS" env-default:"10"`
	ReadyAttempts uint64        `yaml:"ready_attempts" env:"DB_READY_ATTEMPTS" env-default:"10"`
	ReadyDelay    time.Duration `yaml:"ready_delay" env:"DB_READY_DELAY" env-default:"5s"`
}

type Config struct {
	LogLevel       string     `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	HTTP           HTTPConfig `yaml:"http_server"`
	DB             DBConfig   `yaml:"database"`
	AllowedOrigins []string   `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
}

func MustLoad(configPath string) Config {
	var cfg Config

	// empty path - env only
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

	// try the file, fall back to env when it is missing
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				log.Fatalf("cannot read env: %s", err)
			}
			return cfg
		}
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}
