// Package config provides configuration loading and validation for voiceiq.
//
// It uses Viper to load configuration from a YAML file and environment
// variables, with a godotenv-loaded .env file for local development.
// Environment variables override file values using the VOICEIQ_ prefix with
// underscore-separated paths (e.g., VOICEIQ_SERVER_PORT).
package config
