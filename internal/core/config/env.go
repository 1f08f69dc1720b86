// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-18
// Last Modified: 2026-08-24

package config

import (
	"os"
	"strings"
)

// EnvPrefix is prepended to the uppercased field name to form the
// environment variable, e.g. github_token -> DECADOG_GITHUB_TOKEN.
const EnvPrefix = "DECADOG_"

// EnvLayer reads fields from process environment variables.
type EnvLayer struct{}

// NewEnvLayer creates the environment layer.
func NewEnvLayer() *EnvLayer {
	return &EnvLayer{}
}

// Name identifies this layer in resolution warnings.
func (l *EnvLayer) Name() string {
	return "environment"
}

// ReadField maps the field name to its environment variable and reads it.
func (l *EnvLayer) ReadField(name string) (string, bool, error) {
	value, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(name))
	return value, ok, nil
}
