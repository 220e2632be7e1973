package driving

import (
	"context"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
)

// RunOptions controls a batch run.
type RunOptions struct {
	// DryRun computes changes without writing them.
	DryRun bool

	// FailFast aborts the batch on the first unreadable or unwritable document.
	// Otherwise failures are recorded and the batch continues.
	FailFast bool
}

// BatchNormaliser applies a rule set to a directory of documents.
type BatchNormaliser interface {
	// Run normalises every document in the directory, one at a time.
	Run(ctx context.Context, opts RunOptions) (*domain.BatchResult, error)

	// NormaliseFile normalises a single document.
	NormaliseFile(ctx context.Context, path string, opts RunOptions) (*domain.FileResult, error)

	// Distribution returns the frequency of the trimmed values of field across
	// all documents, sorted by count descending.
	Distribution(ctx context.Context, field string) ([]domain.Count, error)

	// Watch normalises documents as they change until ctx is cancelled,
	// calling report for each processed document.
	Watch(ctx context.Context, opts RunOptions, report func(*domain.FileResult)) error

	// Variant returns the name of the rule set in use.
	Variant() string

	// Dir returns the directory being processed.
	Dir() string
}
