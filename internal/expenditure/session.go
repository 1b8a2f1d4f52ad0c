package expenditure

import (
	"context"
	"io"
	"sync"

	"github.com/rotisserie/eris"

	"github.com/bulgogipedas/isUMREnough/internal/model"
)

// SourceFunc opens the raw expenditure table for reading. Implemented
// by the fetcher for URLs and by os.Open for local files.
type SourceFunc func(ctx context.Context) (io.ReadCloser, error)

// Loader caches the ingested province mapping for the lifetime of a
// session. There is only ever one session-wide dataset, so a single
// loaded flag is enough; a failed load installs nothing and leaves any
// previously cached mapping intact.
type Loader struct {
	open SourceFunc

	mu     sync.Mutex
	loaded bool
	data   map[string]model.ProvinceData
}

// NewLoader creates a Loader around the given source.
func NewLoader(open SourceFunc) *Loader {
	return &Loader{open: open}
}

// Load returns the cached mapping, ingesting the source on first use.
func (l *Loader) Load(ctx context.Context) (map[string]model.ProvinceData, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return l.data, nil
	}

	r, err := l.open(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "expenditure: open source")
	}
	defer r.Close() //nolint:errcheck

	data, err := Ingest(r)
	if err != nil {
		return nil, err
	}

	l.data = data
	l.loaded = true
	return data, nil
}

// Loaded reports whether a mapping is cached.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Invalidate drops the cached mapping so the next Load re-ingests.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loaded = false
	l.data = nil
}
