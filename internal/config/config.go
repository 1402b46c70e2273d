// internal/config/config.go
//
// Server configuration.
// Loads an optional .env file, then parses the environment into a typed
// Config with defaults for every setting except the host password and
// board/word files.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the server configuration, read from the environment.
type Config struct {
	Port              string        `env:"PORT"               envDefault:"5175"`
	LogLevel          string        `env:"LOG_LEVEL"          envDefault:"info"`
	LogFormat         string        `env:"LOG_FORMAT"         envDefault:"json"`
	DBPath            string        `env:"DB_PATH"            envDefault:"./data/wordsearch.db"`
	JWTSecret         string        `env:"JWT_SECRET"         envDefault:"dev_secret_change_me"`
	JWTExpiresHours   int           `env:"JWT_EXPIRES_HOURS"  envDefault:"12"`
	HostPassword      string        `env:"HOST_PASSWORD"`
	CookieName        string        `env:"COOKIE_NAME"        envDefault:"wordsearch_host"`
	CookieSecure      bool          `env:"COOKIE_SECURE"`
	ClientOrigin      string        `env:"CLIENT_ORIGIN"      envDefault:"http://localhost:5173"`
	TurnTick          time.Duration `env:"TURN_TICK"          envDefault:"1s"`
	DefaultDifficulty string        `env:"DEFAULT_DIFFICULTY" envDefault:"medium"`
	BoardFile         string        `env:"BOARD_FILE"`
	WordsFile         string        `env:"WORDS_FILE"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TurnTick <= 0 {
		return Config{}, fmt.Errorf("parse env: TURN_TICK must be positive, got %s", cfg.TurnTick)
	}
	return cfg, nil
}
