// Package config loads engine settings from YAML files and environment
// variables. Files are read through viper, .env files through godotenv,
// and the HAYSTACK_ prefix overrides any file value. Struct-tag
// validation runs after defaults are applied.
package config
