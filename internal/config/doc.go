// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with first-non-zero-wins semantics (env > flags > JSON)
// and the result is validated and defaulted before use. The merged
// configuration is passed explicitly into each component's constructor;
// nothing reads ambient process state after startup.
package config
