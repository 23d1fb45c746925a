package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemStorage_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs", "public")

	s, err := NewFilesystemStorage(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFilesystemStorage_NestedKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFilesystemStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, "assets/css/style.css", []byte("body{}")))
	require.NoError(t, s.Write(ctx, "assets/logo.svg", []byte("<svg/>")))
	require.NoError(t, s.Write(ctx, "index.html", []byte("<html></html>")))
	require.NoError(t, s.Write(ctx, "assetsfile.txt", []byte("x")))

	data, err := os.ReadFile(filepath.Join(dir, "assets", "css", "style.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))

	keys, err := s.List(ctx, "assets/")
	require.NoError(t, err)
	assert.Equal(t, []string{"assets/css/style.css", "assets/logo.svg"}, keys)

	keys, err = s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"assets/css/style.css", "assets/logo.svg", "assetsfile.txt", "index.html"}, keys)
}

func TestFilesystemStorage_ReplacesPage(t *testing.T) {
	ctx := context.Background()
	s, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, "index.html", []byte("<html>old</html>")))
	require.NoError(t, s.Write(ctx, "/index.html", []byte("<html>new</html>")))

	data, err := s.Read(ctx, "index.html")
	require.NoError(t, err)
	assert.Equal(t, "<html>new</html>", string(data))
}

func TestFilesystemStorage_MissingKey(t *testing.T) {
	ctx := context.Background()
	s, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Read(ctx, "assets/missing.css")
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoError(t, s.Delete(ctx, "assets/missing.css"))
}

func TestFilesystemStorage_KeyCannotEscapeBaseDir(t *testing.T) {
	ctx := context.Background()
	parent := t.TempDir()
	dir := filepath.Join(parent, "out")
	s, err := NewFilesystemStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, "../escaped.html", []byte("x")))

	_, err = os.Stat(filepath.Join(parent, "escaped.html"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "escaped.html"))
	assert.NoError(t, err)
}
