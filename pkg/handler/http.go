package handler

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/foomo/profilesite/content"
	"github.com/foomo/profilesite/pkg/metrics"
	"github.com/foomo/profilesite/pkg/storage"
	httputils "github.com/foomo/keel/utils/net/http"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type (
	// Source provides the published site
	Source interface {
		Storage() storage.Storage
		Tree() *content.Tree
	}
	HTTP struct {
		l      *zap.Logger
		source Source
	}
	HTTPOption func(*HTTP)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// NewHTTP returns a handler previewing the published site
func NewHTTP(l *zap.Logger, source Source, opts ...HTTPOption) http.Handler {
	inst := &HTTP{
		l:      l.Named("http"),
		source: source,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := h.serve(w, r)
	metrics.PreviewRequestCounter.WithLabelValues(strconv.Itoa(status)).Inc()
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (h *HTTP) serve(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		httputils.ServerError(h.l, w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return http.StatusMethodNotAllowed
	}

	s, tree := h.source.Storage(), h.source.Tree()
	if s == nil || tree == nil {
		httputils.ServerError(h.l, w, r, http.StatusServiceUnavailable, errors.New("site not built yet"))
		return http.StatusServiceUnavailable
	}

	key := storage.CleanKey(strings.TrimPrefix(r.URL.Path, "/"))
	if key == "" || strings.HasSuffix(r.URL.Path, "/") {
		key = strings.TrimPrefix(strings.TrimSuffix(key, "/")+"/"+tree.Config.OutputFile(), "/")
	}

	data, err := s.Read(r.Context(), key)
	if errors.Is(err, os.ErrNotExist) {
		http.NotFound(w, r)
		return http.StatusNotFound
	} else if err != nil {
		httputils.ServerError(h.l, w, r, http.StatusInternalServerError, errors.Wrapf(err, "failed to read %s", key))
		return http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", storage.ContentType(key))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return http.StatusOK
	}
	if _, err := w.Write(data); err != nil {
		h.l.Debug("failed to write response", zap.String("key", key), zap.Error(err))
	}
	return http.StatusOK
}
