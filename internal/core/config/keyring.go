// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-19
// Last Modified: 2026-08-24

package config

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// Keyring addressing. The service names match the entries written by
// earlier versions of decadog, so stored credentials keep working.
const (
	keyringUser          = "decadog"
	keyringGithubService = "decadog_github_token"
	keyringZenhubService = "decadog_zenhub_token"
)

// KeyringLayer reads the two API tokens from the OS keyring. Every other
// field is unconditionally absent from this layer.
type KeyringLayer struct {
	// get is swapped out in tests; defaults to keyring.Get.
	get func(service, user string) (string, error)
}

// NewKeyringLayer creates the OS keyring layer.
func NewKeyringLayer() *KeyringLayer {
	return &KeyringLayer{get: keyring.Get}
}

// Name identifies this layer in resolution warnings.
func (l *KeyringLayer) Name() string {
	return "keyring"
}

// ReadField queries the keyring for the two known secrets.
// Secret-not-found is normal absence; a store that cannot be reached at
// all (e.g. no keyring daemon) makes the layer unavailable, which the
// resolver reports but survives.
func (l *KeyringLayer) ReadField(name string) (string, bool, error) {
	var service string
	switch name {
	case FieldGithubToken:
		service = keyringGithubService
	case FieldZenhubToken:
		service = keyringZenhubService
	default:
		return "", false, nil
	}

	value, err := l.get(service, keyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", false, nil
		}
		return "", false, &SourceUnavailableError{Layer: l.Name(), Err: err}
	}
	return value, true, nil
}
