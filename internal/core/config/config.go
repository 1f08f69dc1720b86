// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-18
// Last Modified: 2026-08-29

// Package config resolves Decadog settings from layered sources.
//
// Each source (config file, environment, OS keyring) is a Layer that can be
// asked for a single field. The Resolver merges an ordered sequence of layers
// into one validated, immutable Config, with earlier layers taking precedence.
package config

// SchemaVersion is the config schema version this build understands.
const SchemaVersion = 1

// Field names, shared by every layer. A layer maps these to its own
// addressing scheme (YAML key, environment variable, keyring service).
const (
	FieldVersion     = "version"
	FieldOwner       = "owner"
	FieldRepo        = "repo"
	FieldGithubURL   = "github_url"
	FieldGithubToken = "github_token"
	FieldZenhubURL   = "zenhub_url"
	FieldZenhubToken = "zenhub_token"
)

// Default API endpoints, overridable for GitHub Enterprise or testing.
const (
	DefaultGithubURL = "https://api.github.com/"
	DefaultZenhubURL = "https://api.zenhub.io/"
)

// schemaField describes one field in the config schema.
type schemaField struct {
	name     string
	required bool
	secret   bool
}

// schema lists all known fields in declaration order. Validation reports
// missing fields in this order, so failures are deterministic.
var schema = []schemaField{
	{name: FieldVersion},
	{name: FieldOwner, required: true},
	{name: FieldRepo, required: true},
	{name: FieldGithubURL},
	{name: FieldGithubToken, required: true, secret: true},
	{name: FieldZenhubURL},
	{name: FieldZenhubToken, secret: true},
}

// Config is the resolved settings record. It is constructed once per
// invocation by the Resolver and never mutated afterwards.
type Config struct {
	Version     int
	Owner       string
	Repo        string
	GithubURL   string
	GithubToken Secret
	ZenhubURL   string
	ZenhubToken Secret
}

// HasZenhub reports whether Zenhub features are enabled. A missing Zenhub
// token is not an error; board-related steps are simply skipped.
func (c *Config) HasZenhub() bool {
	return !c.ZenhubToken.IsZero()
}
