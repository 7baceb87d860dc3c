// Package config resolves runtime settings from the environment, an
// optional .env file, and command line flags.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the tool.
const (
	EnvStore    = "FAMILYTREE_STORE"
	EnvGraphURL = "FAMILYTREE_GRAPH_URL"
	EnvDebug    = "FAMILYTREE_DEBUG"
)

// Defaults used when neither environment nor flags say otherwise.
const (
	DefaultStoreName = "familytree"
	DefaultGraphURL  = "http://localhost:7474/db/data"
)

// Settings are the resolved runtime coordinates.
type Settings struct {
	StoreName string
	GraphURL  string
	Debug     bool
}

// LoadEnv reads a .env file into the environment if one exists. Missing
// files are fine; the system environment wins for keys set in both.
func LoadEnv() {
	_ = godotenv.Load()
}

// Resolve applies the discovery priority environment > flag > default
// for each setting. Flag values are the parsed cobra flags; empty means
// the flag was not given.
func Resolve(storeFlag, graphFlag string, debugFlag bool) Settings {
	s := Settings{
		StoreName: DefaultStoreName,
		GraphURL:  DefaultGraphURL,
		Debug:     debugFlag || GetEnvBool(EnvDebug, false),
	}
	if storeFlag != "" {
		s.StoreName = storeFlag
	}
	if graphFlag != "" {
		s.GraphURL = graphFlag
	}
	if env := GetEnvString(EnvStore, ""); env != "" {
		s.StoreName = env
	}
	if env := GetEnvString(EnvGraphURL, ""); env != "" {
		s.GraphURL = env
	}
	return s
}

// GetEnvString returns the named variable or a default when unset.
func GetEnvString(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

// GetEnvBool returns the named variable as a bool; anything other than
// "true" or "false" falls back to the default.
func GetEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	if value == "true" || value == "false" {
		return value == "true"
	}
	return defaultValue
}
