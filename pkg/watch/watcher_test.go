package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/foomo/profilesite/pkg/site"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeBuilder struct {
	root     string
	mu       sync.Mutex
	triggers []string
}

func (f *fakeBuilder) Root() string {
	return f.root
}

func (f *fakeBuilder) Build(_ context.Context, trigger string) *site.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggers = append(f.triggers, trigger)
	return &site.Result{Success: true}
}

func (f *fakeBuilder) Triggers() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.triggers...)
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write document", fsnotify.Event{Name: "sections/a.toml", Op: fsnotify.Write}, true},
		{"create document", fsnotify.Event{Name: "config.toml", Op: fsnotify.Create}, true},
		{"remove document", fsnotify.Event{Name: "sections/a.toml", Op: fsnotify.Remove}, true},
		{"rename document", fsnotify.Event{Name: "sections/a.TOML", Op: fsnotify.Rename}, true},
		{"chmod document", fsnotify.Event{Name: "sections/a.toml", Op: fsnotify.Chmod}, false},
		{"write stylesheet", fsnotify.Event{Name: "static/style.css", Op: fsnotify.Write}, false},
		{"editor swap file", fsnotify.Event{Name: "sections/.a.toml.swp", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Relevant(tt.event))
		})
	}
}

func TestRequestBuildCoalesces(t *testing.T) {
	w := New(zaptest.NewLogger(t), &fakeBuilder{root: t.TempDir()})

	assert.True(t, w.RequestBuild(site.TriggerWatch))
	assert.False(t, w.RequestBuild(site.TriggerWatch))
	assert.False(t, w.RequestBuild(site.TriggerWatch))
	assert.Len(t, w.buildRequests, 1)
}

func TestBuildRoutine(t *testing.T) {
	var (
		b     = &fakeBuilder{root: t.TempDir()}
		built atomic.Int32
		w     = New(zaptest.NewLogger(t), b, WithOnBuild(func(*site.Result) { built.Add(1) }))
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.BuildRoutine(ctx) }()

	w.RequestBuild(site.TriggerWatch)
	require.Eventually(t, func() bool { return built.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{site.TriggerWatch}, b.Triggers())

	cancel()
	require.NoError(t, <-done)
}

func TestStartRebuildsOnDocumentChange(t *testing.T) {
	var (
		root  = t.TempDir()
		b     = &fakeBuilder{root: root}
		built atomic.Int32
		w     = New(zaptest.NewLogger(t), b,
			WithDebounce(10*time.Millisecond),
			WithOnBuild(func(*site.Result) { built.Add(1) }),
		)
	)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sections"), 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	path := filepath.Join(root, "sections", "a.toml")
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte("name = \"A\"\n"), 0o600); err != nil {
			return false
		}
		return built.Load() > 0
	}, 5*time.Second, 100*time.Millisecond)

	for _, trigger := range b.Triggers() {
		assert.Equal(t, site.TriggerWatch, trigger)
	}

	cancel()
	require.NoError(t, <-done)
}

func TestStartMissingRoot(t *testing.T) {
	w := New(zaptest.NewLogger(t), &fakeBuilder{root: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, w.Start(context.Background()))
}
