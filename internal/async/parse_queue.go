package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ecotally/ecotally/internal/parser"
	"github.com/ecotally/ecotally/internal/repository"
)

// ParseQueue runs parse-and-persist jobs on a fixed worker pool.
type ParseQueue struct {
	parser  *parser.Parser
	repo    repository.ReceiptRepository
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ParseQueue)

func WithWorkers(n int) Option {
	return func(q *ParseQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ParseQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithPersistTimeout(d time.Duration) Option {
	return func(q *ParseQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewParseQueue(p *parser.Parser, repo repository.ReceiptRepository, logger *slog.Logger, opts ...Option) *ParseQueue {
	q := &ParseQueue{
		parser:  p,
		repo:    repo,
		logger:  logger,
		workers: 4,
		timeout: 30 * time.Second,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ParseQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					parsed := q.parser.Parse(job.Doc.RawText, job.Doc.Words)

					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					rec, err := q.repo.SaveParsed(ctx, parsed)
					cancel()

					if err != nil {
						q.logger.Error("persist failed", "worker_id", workerID, "path", job.Doc.SourcePath, "error", err)
					} else {
						q.logger.Info("document processed",
							"worker_id", workerID,
							"path", job.Doc.SourcePath,
							"receipt_id", rec.ID,
							"eco_score", rec.EcoScore)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ParseQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "path", job.Doc.SourcePath)
		return nil
	}
	select {
	case q.ch <- job:
	default:
		q.logger.Warn("queue full, applying backpressure", "path", job.Doc.SourcePath)
		q.ch <- job
	}
	return nil
}

func (q *ParseQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
