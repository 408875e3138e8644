// Package config provides configuration loading and validation for the
// cereal pipeline.
//
// It uses Viper to load configuration from files and environment variables,
// with .env support via godotenv. Files are optional: every field has a
// working default so the binary runs with zero configuration.
//
// # Usage
//
//	var cfg app.Config
//	err := config.LoadConfig("cerealpipe", &cfg)
//
// Environment variables override file values using underscore-separated
// paths (e.g., SOURCE_URL, LOGGING_LEVEL).
package config
