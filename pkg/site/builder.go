package site

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/foomo/profilesite/content"
	"github.com/foomo/profilesite/pkg/metrics"
	"github.com/foomo/profilesite/pkg/render"
	"github.com/foomo/profilesite/pkg/repo"
	"github.com/foomo/profilesite/pkg/storage"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	TriggerCommand = "command"
	TriggerInitial = "initial"
	TriggerWatch   = "watch"
)

type (
	// Builder loads a content root, renders the page and publishes it
	Builder struct {
		l         *zap.Logger
		root      string
		sortItems bool
		output    string
		loaded    *atomic.Bool
		tree      atomic.Pointer[content.Tree]
		storage   storage.Storage
		location  string
		storageMu sync.Mutex
	}
	Option func(*Builder)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func New(l *zap.Logger, root string, opts ...Option) *Builder {
	inst := &Builder{
		l:         l.Named("site"),
		root:      root,
		sortItems: true,
		loaded:    &atomic.Bool{},
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func WithSortItems(v bool) Option {
	return func(o *Builder) {
		o.sortItems = v
	}
}

// WithOutput overrides the output location of the site config, a directory or bucket URL
func WithOutput(v string) Option {
	return func(o *Builder) {
		o.output = v
	}
}

// WithStorage publishes to the given storage regardless of any configured location
func WithStorage(v storage.Storage) Option {
	return func(o *Builder) {
		o.storage = v
		o.location = "storage"
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Getter
// ------------------------------------------------------------------------------------------------

// Loaded true once a build succeeded
func (b *Builder) Loaded() bool {
	return b.loaded.Load()
}

// Tree last successfully built tree
func (b *Builder) Tree() *content.Tree {
	return b.tree.Load()
}

// Root content root
func (b *Builder) Root() string {
	return b.root
}

// Storage the storage the site is published to, nil before the first build
func (b *Builder) Storage() storage.Storage {
	b.storageMu.Lock()
	defer b.storageMu.Unlock()
	return b.storage
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Build runs load, render and publish once. Failures are reported in the
// result and logged. Everything is read and rendered before the first write,
// so a failing load, render or asset read leaves the output untouched. The
// page is written before the assets, a failing page write changes nothing.
func (b *Builder) Build(ctx context.Context, trigger string) *Result {
	floatSeconds := func(d time.Duration) float64 {
		return d.Seconds()
	}

	start := time.Now()
	l := b.l.With(zap.String("run_id", uuid.New().String()), zap.String("trigger", trigger))
	l.Info("build started")

	result := &Result{}
	defer func() {
		metrics.BuildDuration.WithLabelValues(trigger).Observe(time.Since(start).Seconds())
	}()

	fail := func(kind string, err error) *Result {
		result.Success = false
		result.Err = err
		result.ErrorMessage = err.Error()
		result.Stats.OwnRuntime = floatSeconds(time.Since(start)) - result.Stats.LoadRuntime - result.Stats.RenderRuntime
		metrics.BuildsFailedCounter.WithLabelValues(trigger, kind).Inc()
		l.Error("build failed", zap.String("kind", kind), zap.Error(err))
		return result
	}

	loadStart := time.Now()
	tree, err := repo.NewLoader(l, repo.WithSortItems(b.sortItems)).Load(b.root)
	result.Stats.LoadRuntime = floatSeconds(time.Since(loadStart))
	if err != nil {
		return fail(ErrorKind(err), err)
	}
	result.Stats.NumberOfSections = len(tree.Sections)
	result.Stats.NumberOfItems = tree.CountItems()

	renderStart := time.Now()
	page, err := render.Page(tree)
	result.Stats.RenderRuntime = floatSeconds(time.Since(renderStart))
	if err != nil {
		return fail("render", err)
	}

	assets, err := b.readAssets(tree.Config)
	if err != nil {
		return fail("assets", err)
	}
	result.Stats.NumberOfAssets = len(assets)

	s, location, err := b.resolveStorage(ctx, l, tree.Config)
	if err != nil {
		return fail("output", err)
	}
	result.Output = location

	if err := b.publish(ctx, l, s, tree.Config.OutputFile(), page, assets); err != nil {
		return fail("output", err)
	}

	b.tree.Store(tree)
	if !b.loaded.Swap(true) {
		l.Info("initial build success")
	}

	result.Success = true
	result.Stats.OwnRuntime = floatSeconds(time.Since(start)) - result.Stats.LoadRuntime - result.Stats.RenderRuntime

	metrics.BuildsCompletedCounter.WithLabelValues(trigger).Inc()
	metrics.SectionsGauge.WithLabelValues().Set(float64(result.Stats.NumberOfSections))
	metrics.ItemsGauge.WithLabelValues().Set(float64(result.Stats.NumberOfItems))

	l.Info("build success",
		zap.String("output", location),
		zap.String("file", tree.Config.OutputFile()),
		zap.Int("num_sections", result.Stats.NumberOfSections),
		zap.Int("num_items", result.Stats.NumberOfItems),
		zap.Int("num_assets", result.Stats.NumberOfAssets),
		zap.Float64("load_runtime", result.Stats.LoadRuntime),
		zap.Float64("render_runtime", result.Stats.RenderRuntime),
		zap.Float64("own_runtime", result.Stats.OwnRuntime),
	)
	return result
}

// Close releases the output storage
func (b *Builder) Close() error {
	b.storageMu.Lock()
	defer b.storageMu.Unlock()
	if b.storage != nil {
		return b.storage.Close()
	}
	return nil
}

// ErrorKind short label of a build error for logs and metrics
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, repo.ErrIO):
		return "io"
	case errors.Is(err, repo.ErrFormat):
		return "format"
	case errors.Is(err, repo.ErrValidation):
		return "validation"
	default:
		return "unknown"
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

// resolveStorage opens the output storage on first use. The location is
// fixed from then on, a changed output_dir only produces a warning.
func (b *Builder) resolveStorage(ctx context.Context, l *zap.Logger, config *content.SiteConfig) (storage.Storage, string, error) {
	b.storageMu.Lock()
	defer b.storageMu.Unlock()

	location := b.output
	if location == "" {
		location = config.OutputDir()
	}

	if b.storage != nil {
		if b.output == "" && b.location != "storage" && location != b.location {
			l.Warn("output dir changed, still publishing to the previous location",
				zap.String("configured", location),
				zap.String("location", b.location),
			)
		}
		return b.storage, b.location, nil
	}

	s, err := storage.Open(ctx, location)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to open output %s", location)
	}
	l.Info("opened output", zap.String("location", location))
	b.storage = s
	b.location = location
	return s, location, nil
}
