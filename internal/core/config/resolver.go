// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-18
// Last Modified: 2026-08-29

package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Layer is a single named source of configuration values.
//
// ReadField returns the value for a field, or ok=false when the layer does
// not carry it. Absence is a normal result, not an error. A broken backing
// store (unparseable file, unreachable keyring daemon) is reported as a
// *SourceUnavailableError so the resolver can tell "this layer is broken"
// from "this layer doesn't have that field".
type Layer interface {
	Name() string
	ReadField(name string) (value string, ok bool, err error)
}

// SourceUnavailableError indicates a layer's backing store could not be
// read at all. The resolver treats such a layer as empty and reports it.
type SourceUnavailableError struct {
	Layer string
	Err   error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("config source %q unavailable: %v", e.Layer, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// MissingFieldError indicates a required field was not supplied by any layer.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required config field %q", e.Field)
}

// InvalidFieldError indicates a field was present but failed validation.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid config field %q: %s", e.Field, e.Reason)
}

// Resolver merges an ordered sequence of layers into a Config.
// Layers are consulted highest-priority first; for each field the first
// non-absent value wins.
type Resolver struct {
	layers []Layer

	// Warnf receives non-fatal resolution notices, such as an unavailable
	// layer being skipped. Defaults to discarding them.
	Warnf func(format string, args ...interface{})
}

// NewResolver creates a resolver over the given layers, highest priority
// first.
func NewResolver(layers ...Layer) *Resolver {
	return &Resolver{layers: layers}
}

// Resolve scans every schema field across the layers and validates the
// result. Aside from the layers' own reads it performs no I/O, so precedence
// is a pure function of the layer sequence.
func (r *Resolver) Resolve() (*Config, error) {
	values := make(map[string]string, len(schema))
	unavailable := make(map[string]bool)

	for _, field := range schema {
		for _, layer := range r.layers {
			if unavailable[layer.Name()] {
				continue
			}
			value, ok, err := layer.ReadField(field.name)
			if err != nil {
				var srcErr *SourceUnavailableError
				if errors.As(err, &srcErr) {
					unavailable[layer.Name()] = true
					r.warnf("skipping config source %q: %v", layer.Name(), srcErr.Err)
					continue
				}
				return nil, fmt.Errorf("failed to read field %q from %q: %w", field.name, layer.Name(), err)
			}
			if ok {
				values[field.name] = value
				break
			}
		}
	}

	for _, field := range schema {
		if field.required {
			if values[field.name] == "" {
				return nil, &MissingFieldError{Field: field.name}
			}
		}
	}

	return buildConfig(values)
}

func (r *Resolver) warnf(format string, args ...interface{}) {
	if r.Warnf != nil {
		r.Warnf(format, args...)
	}
}

// buildConfig validates typed fields and applies endpoint defaults.
func buildConfig(values map[string]string) (*Config, error) {
	version := SchemaVersion
	if raw, ok := values[FieldVersion]; ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &InvalidFieldError{
				Field:  FieldVersion,
				Reason: fmt.Sprintf("%q is not an integer", raw),
			}
		}
		if parsed != SchemaVersion {
			return nil, &InvalidFieldError{
				Field:  FieldVersion,
				Reason: fmt.Sprintf("unsupported schema version %d (want %d)", parsed, SchemaVersion),
			}
		}
		version = parsed
	}

	cfg := &Config{
		Version:     version,
		Owner:       values[FieldOwner],
		Repo:        values[FieldRepo],
		GithubURL:   values[FieldGithubURL],
		GithubToken: NewSecret(values[FieldGithubToken]),
		ZenhubURL:   values[FieldZenhubURL],
		ZenhubToken: NewSecret(values[FieldZenhubToken]),
	}
	if cfg.GithubURL == "" {
		cfg.GithubURL = DefaultGithubURL
	}
	if cfg.ZenhubURL == "" {
		cfg.ZenhubURL = DefaultZenhubURL
	}
	return cfg, nil
}
