package api

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseURL is the production backend.
const DefaultBaseURL = "https://api.fuji-kanji.app"

// Config holds backend client configuration.
type Config struct {
	// BaseURL is the backend root; endpoint paths are relative to it.
	BaseURL string

	// TokenPath is the file the bearer token is kept in between runs.
	TokenPath string

	// Timeout bounds a single request. The backend performs no streaming,
	// so one flat timeout covers every endpoint.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("FUJI_API_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if p := os.Getenv("FUJI_TOKEN_PATH"); p != "" {
		cfg.TokenPath = p
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = defaultTokenPath()
	}

	return cfg
}

// defaultTokenPath resolves the token file location:
// $XDG_STATE_HOME/fuji/token, falling back to ~/.local/state/fuji/token.
func defaultTokenPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "fuji-token"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "fuji", "token")
}
