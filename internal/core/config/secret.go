// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-18
// Last Modified: 2026-08-24

package config

import "gopkg.in/yaml.v3"

// Secret is a string value that must never be printed in full.
// Its Stringer renders a short hint followed by "***" so tokens can be
// mentioned in logs and error messages without leaking.
type Secret struct {
	value string
}

// NewSecret wraps a raw secret value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Value returns the raw secret for use in request headers.
func (s Secret) Value() string {
	return s.value
}

// IsZero reports whether no secret was set.
func (s Secret) IsZero() bool {
	return s.value == ""
}

// String renders a masked form, e.g. "ghp***".
func (s Secret) String() string {
	return s.hint() + "***"
}

// GoString masks the secret in %#v output as well.
func (s Secret) GoString() string {
	return "config.Secret{value: " + s.hint() + "***}"
}

func (s Secret) hint() string {
	if len(s.value) < 3 {
		return ""
	}
	return s.value[:3]
}

// UnmarshalYAML reads the raw value from a YAML scalar.
func (s *Secret) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	s.value = raw
	return nil
}

// MarshalYAML writes the raw value, so config files round-trip.
func (s Secret) MarshalYAML() (interface{}, error) {
	return s.value, nil
}
