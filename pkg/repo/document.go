package repo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	ConfigFile  = "config.toml"
	ProfileFile = "profile.toml"
	SectionsDir = "sections"
	DocumentExt = ".toml"
)

// IsDocument does the path name a content document
func IsDocument(path string) bool {
	return strings.EqualFold(filepath.Ext(path), DocumentExt)
}

// readDocument reads and decodes a single toml document into v
func readDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newError(KindIO, path, err)
	}
	if err := toml.Unmarshal(data, v); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			err = errors.Wrapf(err, "line %d column %d", row, col)
		}
		return newError(KindFormat, path, err)
	}
	return nil
}

// listDocuments returns the documents directly inside dir in lexical order,
// sub directories are not descended into
func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError(KindIO, dir, err)
	}
	var paths []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !IsDocument(path) {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, newError(KindIO, path, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}
