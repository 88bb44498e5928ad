package async

import (
	"context"
	"time"

	"github.com/ecotally/ecotally/internal/ingest"
)

// Job is one document waiting to be parsed and persisted.
type Job struct {
	Doc         ingest.Document
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
