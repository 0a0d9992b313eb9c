package frontio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"github.com/mihai-snyk/moo-quality/pkg/multiobjective/framework"
	"github.com/patrickmn/go-cache"
)

// DefaultCacheTTL is how long a parsed front stays cached by a Loader.
const DefaultCacheTTL = 10 * time.Minute

// Loader loads front files and keeps the parsed fronts cached. Entries are
// keyed by absolute path, size and modification time, so a rewritten file is
// parsed again. Cached fronts are immutable and safe to share.
type Loader struct {
	cache  *cache.Cache
	logger logr.Logger
}

// NewLoader returns a Loader whose entries expire after ttl.
func NewLoader(logger logr.Logger, ttl time.Duration) *Loader {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Loader{
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// Load returns the front stored at path.
func (l *Loader) Load(path string) (*framework.Front, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano())

	if v, ok := l.cache.Get(key); ok {
		l.logger.V(4).Info("Front cache hit", "path", path)
		return v.(*framework.Front), nil
	}

	start := time.Now()
	front, err := LoadFront(abs)
	if err != nil {
		return nil, err
	}
	l.cache.SetDefault(key, front)

	l.logger.V(2).Info("Loaded front",
		"path", path,
		"points", humanize.Comma(int64(front.Size())),
		"objectives", front.Dimension(),
		"size", humanize.Bytes(uint64(info.Size())),
		"duration", time.Since(start))
	return front, nil
}

// Len returns the number of cached fronts.
func (l *Loader) Len() int {
	return l.cache.ItemCount()
}
