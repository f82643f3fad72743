package reader

import (
	"context"

	"github.com/rs/zerolog"

	"tlr/internal/discovery"
	"tlr/internal/domain"
)

// Reader finds log files under a root directory and parses them
type Reader struct {
	scanner *discovery.Scanner
	filter  *discovery.Filter
	pool    *WorkerPool
	logger  zerolog.Logger
}

// NewReader creates a new Reader
func NewReader(scanner *discovery.Scanner, filter *discovery.Filter, pool *WorkerPool, logger zerolog.Logger) *Reader {
	return &Reader{
		scanner: scanner,
		filter:  filter,
		pool:    pool,
		logger:  logger,
	}
}

// Pool returns the worker pool used for parsing
func (r *Reader) Pool() *WorkerPool {
	return r.pool
}

// Discover returns the log files under root whose names contain marker,
// narrowed by the optional name filter
func (r *Reader) Discover(root, marker, nameFilter string) ([]string, error) {
	files, err := r.scanner.Scan(root, marker)
	if err != nil {
		return nil, err
	}
	files = r.filter.FilterByName(files, nameFilter)
	r.logger.Debug().Str("root", root).Str("marker", marker).Int("files", len(files)).Msg("discovered log files")
	return files, nil
}

// ReadLogs discovers and parses every log file, in traversal order.
// Any failure aborts the whole read.
func (r *Reader) ReadLogs(ctx context.Context, root, marker, nameFilter string) ([]domain.LogRecord, error) {
	files, err := r.Discover(root, marker, nameFilter)
	if err != nil {
		return nil, err
	}
	return r.ParseFiles(ctx, files)
}

// ParseFiles parses an already discovered list of files
func (r *Reader) ParseFiles(ctx context.Context, files []string) ([]domain.LogRecord, error) {
	records, err := r.pool.Parse(ctx, files)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.LogRecord{}
	}
	return records, nil
}
