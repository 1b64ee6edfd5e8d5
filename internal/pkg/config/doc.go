// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file selected via CONFIG_PATH and can be
// overridden by the environment variables the hosting platform injects
// (PORT and WORKERS). All settings structs validate themselves before use.
package config
