package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "gocloud.dev/blob/memblob"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &FilesystemStorage{}, s)
	require.NoError(t, s.Close())

	s, err = Open(ctx, "mem://")
	require.NoError(t, err)
	assert.IsType(t, &BlobStorage{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, "ftp://example.com/out")
	require.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Contains(t, ContentType("index.html"), "text/html")
	assert.Contains(t, ContentType("assets/style.css"), "text/css")
	assert.Equal(t, "application/octet-stream", ContentType("LICENSE"))
}

func TestCleanKey(t *testing.T) {
	assert.Equal(t, "index.html", CleanKey("/index.html"))
	assert.Equal(t, "assets/a.css", CleanKey("assets//a.css"))
	assert.Equal(t, "x.html", CleanKey("../../x.html"))
	assert.Equal(t, "a/b", CleanKey(`a\b`))
}
