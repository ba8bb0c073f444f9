// Package config provides configuration loading and validation for seqkit
// commands.
//
// It uses Viper to read a YAML file, godotenv to load a .env file, and
// prefixed environment variables to override file values.
//
// # Usage
//
//	cfg, err := config.Load[DemoConfig]("seqdemo")
//
// Environment variables use the upper-cased service name as prefix with
// underscore-separated paths (e.g., SEQDEMO_LOGGING_LEVEL).
package config
