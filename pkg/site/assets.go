package site

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/foomo/profilesite/content"
	"github.com/foomo/profilesite/pkg/storage"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// AssetsManifest key of the list of assets the last build published
const AssetsManifest = ".profilesite-assets.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	asset struct {
		key  string
		data []byte
	}
	manifest struct {
		Keys []string `json:"keys"`
	}
)

// readAssets loads the configured assets dir into memory, keyed below the mount path
func (b *Builder) readAssets(config *content.SiteConfig) ([]asset, error) {
	if config.Assets == nil || strings.TrimSpace(config.Assets.Dir) == "" {
		return nil, nil
	}
	dir := config.Assets.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(b.root, dir)
	}
	mountPath := config.AssetsMountPath()

	var assets []asset
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		assets = append(assets, asset{key: path.Join(mountPath, filepath.ToSlash(rel)), data: data})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read assets from %s", dir)
	}
	return assets, nil
}

// publish writes the page first and the assets after it. Assets listed in the
// manifest of an earlier build that are gone now are removed, anything else
// below the mount path is left alone.
func (b *Builder) publish(ctx context.Context, l *zap.Logger, s storage.Storage, outputFile string, page []byte, assets []asset) error {
	previous, err := readManifest(ctx, s)
	if err != nil {
		return err
	}

	if err := s.Write(ctx, outputFile, page); err != nil {
		return errors.Wrapf(err, "failed to write %s", outputFile)
	}

	current := make([]string, 0, len(assets))
	for _, a := range assets {
		if err := s.Write(ctx, a.key, a.data); err != nil {
			return errors.Wrapf(err, "failed to write asset %s", a.key)
		}
		current = append(current, a.key)
	}
	slices.Sort(current)

	if err := writeManifest(ctx, s, current); err != nil {
		return err
	}

	var pruneErr error
	for _, key := range previous {
		if _, ok := slices.BinarySearch(current, key); ok {
			continue
		}
		l.Debug("removing stale asset", zap.String("key", key))
		pruneErr = multierr.Append(pruneErr, s.Delete(ctx, key))
	}
	return pruneErr
}

func readManifest(ctx context.Context, s storage.Storage) ([]string, error) {
	data, err := s.Read(ctx, AssetsManifest)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to read assets manifest")
	}
	m := &manifest{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, errors.Wrap(err, "failed to decode assets manifest")
	}
	return m.Keys, nil
}

func writeManifest(ctx context.Context, s storage.Storage, keys []string) error {
	if len(keys) == 0 {
		return errors.Wrap(s.Delete(ctx, AssetsManifest), "failed to remove assets manifest")
	}
	data, err := json.Marshal(&manifest{Keys: keys})
	if err != nil {
		return errors.Wrap(err, "failed to encode assets manifest")
	}
	return errors.Wrap(s.Write(ctx, AssetsManifest, data), "failed to write assets manifest")
}
