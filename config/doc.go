// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A .env file and the BUSPI_API_KEY / BUSPI_STOP_ID environment variables
// override the user settings found in the file.
package config
