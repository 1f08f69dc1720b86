// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-19
// Last Modified: 2026-08-24

package config

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestKeyringLayerOnlyServesTokens(t *testing.T) {
	layer := &KeyringLayer{get: func(service, user string) (string, error) {
		t.Fatalf("Keyring queried for unexpected service %q", service)
		return "", nil
	}}

	for _, field := range []string{FieldVersion, FieldOwner, FieldRepo, FieldGithubURL, FieldZenhubURL} {
		value, ok, err := layer.ReadField(field)
		if err != nil {
			t.Fatalf("Unexpected error for field %q: %v", field, err)
		}
		if ok || value != "" {
			t.Errorf("Expected field %q to be absent from keyring layer", field)
		}
	}
}

func TestKeyringLayerServiceNames(t *testing.T) {
	tests := []struct {
		field   string
		service string
	}{
		{field: FieldGithubToken, service: "decadog_github_token"},
		{field: FieldZenhubToken, service: "decadog_zenhub_token"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			layer := &KeyringLayer{get: func(service, user string) (string, error) {
				if service != tt.service {
					t.Errorf("Expected service %q, got %q", tt.service, service)
				}
				if user != "decadog" {
					t.Errorf("Expected user %q, got %q", "decadog", user)
				}
				return "stored_secret", nil
			}}

			value, ok, err := layer.ReadField(tt.field)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !ok || value != "stored_secret" {
				t.Errorf("Expected stored secret, got %q (ok=%v)", value, ok)
			}
		})
	}
}

func TestKeyringLayerNotFoundIsAbsence(t *testing.T) {
	layer := &KeyringLayer{get: func(service, user string) (string, error) {
		return "", keyring.ErrNotFound
	}}

	value, ok, err := layer.ReadField(FieldGithubToken)
	if err != nil {
		t.Fatalf("Expected not-found to be plain absence, got error %v", err)
	}
	if ok || value != "" {
		t.Errorf("Expected absence, got %q (ok=%v)", value, ok)
	}
}

func TestKeyringLayerStoreDownIsUnavailable(t *testing.T) {
	layer := &KeyringLayer{get: func(service, user string) (string, error) {
		return "", errors.New("org.freedesktop.secrets not provided")
	}}

	_, _, err := layer.ReadField(FieldGithubToken)
	var srcErr *SourceUnavailableError
	if !errors.As(err, &srcErr) {
		t.Fatalf("Expected SourceUnavailableError, got %v", err)
	}
	if srcErr.Layer != "keyring" {
		t.Errorf("Expected layer name %q, got %q", "keyring", srcErr.Layer)
	}
}
