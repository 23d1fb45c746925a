package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/foomo/profilesite/pkg/metrics"
	"github.com/foomo/profilesite/pkg/repo"
	"github.com/foomo/profilesite/pkg/site"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultDebounce = 200 * time.Millisecond

type (
	// Builder runs a single build of the watched content root
	Builder interface {
		Root() string
		Build(ctx context.Context, trigger string) *site.Result
	}
	// Watcher rebuilds the site whenever a content document changes
	Watcher struct {
		l             *zap.Logger
		builder       Builder
		debounce      time.Duration
		onBuild       func(*site.Result)
		buildRequests chan string
	}
	Option func(*Watcher)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func New(l *zap.Logger, builder Builder, opts ...Option) *Watcher {
	inst := &Watcher{
		l:             l.Named("watch"),
		builder:       builder,
		debounce:      DefaultDebounce,
		buildRequests: make(chan string, 1),
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func WithDebounce(v time.Duration) Option {
	return func(o *Watcher) {
		if v > 0 {
			o.debounce = v
		}
	}
}

// WithOnBuild is called after every build the watcher triggered
func WithOnBuild(v func(*site.Result)) Option {
	return func(o *Watcher) {
		o.onBuild = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Start watches the content root until ctx is canceled
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer func() {
		if err := fw.Close(); err != nil {
			w.l.Warn("failed to close file watcher", zap.Error(err))
		}
	}()

	if err := w.addRecursive(fw, w.builder.Root()); err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	l := w.l.Named("start")

	up := make(chan bool, 1)
	g.Go(func() error {
		l.Debug("starting build routine")
		up <- true
		return w.BuildRoutine(gCtx)
	})
	l.Debug("waiting for BuildRoutine")
	<-up

	g.Go(func() error {
		l.Debug("starting event routine")
		return w.EventRoutine(gCtx, fw)
	})

	l.Info("watching content", zap.String("root", w.builder.Root()), zap.Duration("debounce", w.debounce))
	return g.Wait()
}

// RequestBuild queues a build. While a queued build has not started yet,
// further requests are coalesced into it.
func (w *Watcher) RequestBuild(trigger string) bool {
	select {
	case w.buildRequests <- trigger:
		return true
	default:
		metrics.BuildsRejectedCounter.WithLabelValues().Inc()
		w.l.Debug("build already queued", zap.String("trigger", trigger))
		return false
	}
}

// BuildRoutine runs the queued builds one at a time
func (w *Watcher) BuildRoutine(ctx context.Context) error {
	l := w.l.Named("routine.build")
	for {
		select {
		case <-ctx.Done():
			l.Debug("routine canceled", zap.Error(ctx.Err()))
			return nil
		case trigger := <-w.buildRequests:
			result := w.builder.Build(context.WithoutCancel(ctx), trigger)
			if !result.Success {
				l.Warn("keeping previous page", zap.String("error", result.ErrorMessage))
			}
			if w.onBuild != nil {
				w.onBuild(result)
			}
		}
	}
}

// EventRoutine debounces file system events into build requests
func (w *Watcher) EventRoutine(ctx context.Context, fw *fsnotify.Watcher) error {
	l := w.l.Named("routine.event")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			l.Debug("routine canceled", zap.Error(ctx.Err()))
			return nil
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			l.Warn("watch error", zap.Error(err))
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(fw, event.Name); err != nil {
						l.Warn("failed to watch new directory", zap.String("path", event.Name), zap.Error(err))
					}
				}
			}
			if !Relevant(event) {
				continue
			}
			l.Debug("content changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			w.RequestBuild(site.TriggerWatch)
		}
	}
}

// Relevant reports whether the event touches a content document
func Relevant(event fsnotify.Event) bool {
	if !repo.IsDocument(event.Name) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (w *Watcher) addRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			return errors.Wrapf(err, "failed to watch %s", path)
		}
		w.l.Debug("watching directory", zap.String("path", path))
		return nil
	})
}
