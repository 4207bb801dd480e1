// Package config provides functionality for loading and managing application
// configuration.
//
// Settings structs are validated before use and populated from environment
// variables for the service entry points. Centralizing them here keeps the
// entry points free of parsing concerns.
package config
