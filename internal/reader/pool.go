package reader

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"tlr/internal/domain"
	tlrerrors "tlr/internal/errors"
	"tlr/internal/parser"
)

// Progress receives parse progress from the worker pool
type Progress interface {
	Update(done, failed int)
	Finish()
}

// WorkerPool parses log files with a fixed number of workers.
// Records come back in the order of the input paths.
type WorkerPool struct {
	workers  int
	parser   parser.Parser
	progress Progress
	logger   zerolog.Logger
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(workers int, p parser.Parser, logger zerolog.Logger) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	return &WorkerPool{
		workers: workers,
		parser:  p,
		logger:  logger,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Parse parses every path. The first failure stops the remaining work and is
// returned; when several workers fail, the error for the earliest path wins.
func (wp *WorkerPool) Parse(ctx context.Context, paths []string) ([]domain.LogRecord, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan int)
	go func() {
		defer close(queue)
		for i := range paths {
			select {
			case <-ctx.Done():
				return
			case queue <- i:
			}
		}
	}()

	records := make([]domain.LogRecord, len(paths))

	var mu sync.Mutex
	var done, failed int
	firstErrIdx := -1
	var firstErr error

	var wg sync.WaitGroup
	for w := 0; w < wp.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				if ctx.Err() != nil {
					return
				}
				record, err := wp.parser.ParseFile(paths[i])

				mu.Lock()
				if err != nil {
					failed++
					if firstErrIdx < 0 || i < firstErrIdx {
						firstErrIdx, firstErr = i, err
					}
					cancel()
				} else {
					done++
					records[i] = record
					wp.logger.Debug().Str("file", paths[i]).Str("suite", record.Suite).Int("cases", len(record.Cases)).Msg("parsed log")
				}
				if wp.progress != nil {
					wp.progress.Update(done, failed)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if done < len(paths) {
		return nil, tlrerrors.Read("", "read interrupted", ctx.Err())
	}
	return records, nil
}
