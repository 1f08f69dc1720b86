// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-18
// Last Modified: 2026-08-24

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileCandidates are the config file names searched for, in order.
var fileCandidates = []string{
	"decadog.yaml",
	"decadog.yml",
}

// FileLayer reads fields from a decadog.yaml file in the given directory.
// The file is optional: a missing file makes this an empty layer. A file
// that exists but cannot be parsed makes the whole layer unavailable.
type FileLayer struct {
	path   string
	values map[string]string
	err    error
}

// NewFileLayer locates and parses the config file under dir.
// Parsing happens once; ReadField is a map lookup afterwards.
func NewFileLayer(dir string) *FileLayer {
	layer := &FileLayer{}
	layer.path, layer.values, layer.err = loadFile(dir)
	return layer
}

// NewFileLayerFromPath parses an explicitly given config file.
// Unlike the search in NewFileLayer, the file must exist.
func NewFileLayerFromPath(path string) *FileLayer {
	layer := &FileLayer{path: path}
	layer.values, layer.err = parseFile(path)
	return layer
}

// Name identifies this layer in resolution warnings.
func (l *FileLayer) Name() string {
	if l.path != "" {
		return "file:" + l.path
	}
	return "file"
}

// Path returns the config file path, or "" if none was found.
func (l *FileLayer) Path() string {
	return l.path
}

// ReadField looks the field up in the parsed file.
func (l *FileLayer) ReadField(name string) (string, bool, error) {
	if l.err != nil {
		return "", false, &SourceUnavailableError{Layer: l.Name(), Err: l.err}
	}
	value, ok := l.values[name]
	return value, ok, nil
}

// loadFile finds the first candidate file under dir and parses it.
// No file at all is not an error; the layer is simply empty.
func loadFile(dir string) (string, map[string]string, error) {
	for _, candidate := range fileCandidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return path, nil, err
		}
		values, err := parseFile(path)
		return path, values, err
	}
	return "", map[string]string{}, nil
}

// parseFile reads a YAML mapping of field name to scalar value.
func parseFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			values[key] = v
		case int, int64, uint64, float64, bool:
			values[key] = fmt.Sprint(v)
		case nil:
			// Treat an explicit null the same as an omitted key.
		default:
			return nil, fmt.Errorf("config key %q: expected a scalar value, got %T", key, value)
		}
	}
	return values, nil
}
