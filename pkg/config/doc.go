// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/caarlos0/env/v11 for parsing and github.com/joho/godotenv
// for .env files:
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//		Env  string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Load caches one value per struct type for the lifetime of the process, so
// packages can ask for their configuration repeatedly without re-parsing.
// Parse skips the cache; Reset clears it between tests.
//
// # Error Handling
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// checked with errors.Is.
package config
