package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/custodia-labs/exhibitfix/internal/core/domain"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driven"
	"github.com/custodia-labs/exhibitfix/internal/core/ports/driving"
	"github.com/custodia-labs/exhibitfix/internal/logger"
)

// Ensure BatchNormaliser implements the interface.
var _ driving.BatchNormaliser = (*BatchNormaliser)(nil)

// Option configures a BatchNormaliser.
type Option func(*BatchNormaliser)

// WithWatcher enables watch mode.
func WithWatcher(w driven.DocumentWatcher) Option {
	return func(n *BatchNormaliser) {
		n.watcher = w
	}
}

// WithRunIDs replaces the run ID generator.
func WithRunIDs(next func() string) Option {
	return func(n *BatchNormaliser) {
		if next != nil {
			n.newRunID = next
		}
	}
}

// BatchNormaliser applies a rule set to every document of a store.
// Documents are processed one at a time, in listing order.
type BatchNormaliser struct {
	store    driven.DocumentStore
	rules    driven.RuleSet
	variant  string
	watcher  driven.DocumentWatcher
	newRunID func() string
}

// NewBatchNormaliser creates a batch normaliser.
// The watcher is optional; without one Watch returns an error.
func NewBatchNormaliser(
	store driven.DocumentStore,
	rules driven.RuleSet,
	variant string,
	opts ...Option,
) *BatchNormaliser {
	n := &BatchNormaliser{
		store:    store,
		rules:    rules,
		variant:  variant,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Variant returns the name of the rule set in use.
func (n *BatchNormaliser) Variant() string {
	return n.variant
}

// Dir returns the directory being processed.
func (n *BatchNormaliser) Dir() string {
	return n.store.Dir()
}

// Run normalises every document under the batch lock.
// Unreadable or unwritable documents are recorded and skipped unless
// opts.FailFast is set, in which case the partial result is returned with
// the error. Counts on the result are final once Run returns.
func (n *BatchNormaliser) Run(ctx context.Context, opts driving.RunOptions) (*domain.BatchResult, error) {
	unlock, err := n.store.Lock(ctx)
	if err != nil {
		return nil, err
	}
	defer release(unlock)

	paths, err := n.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	logger.Section("Normalise")
	logger.Info("Directory: %s", n.store.Dir())
	logger.Info("Variant: %s (%v)", n.variant, n.rules.Names())
	logger.Debug("Documents: %d, dry run: %t", len(paths), opts.DryRun)

	result := &domain.BatchResult{
		RunID:   n.newRunID(),
		Dir:     n.store.Dir(),
		Variant: n.variant,
		DryRun:  opts.DryRun,
		Files:   make([]domain.FileResult, 0, len(paths)),
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fr := n.normalise(ctx, path, opts)
		result.Files = append(result.Files, fr)

		if fr.Failed() {
			logger.Error("%v", fr.Err)
			if opts.FailFast {
				return result, fmt.Errorf("normalise %s: %w", path, fr.Err)
			}
		}
	}

	logger.Info("Changed %d of %d documents (%d failed)",
		result.ChangedCount(), result.Total(), result.FailedCount())
	return result, nil
}

// NormaliseFile normalises a single document. The returned error mirrors
// FileResult.Err.
func (n *BatchNormaliser) NormaliseFile(
	ctx context.Context,
	path string,
	opts driving.RunOptions,
) (*domain.FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fr := n.normalise(ctx, path, opts)
	return &fr, fr.Err
}

// normalise runs the read-modify-write cycle for one document.
func (n *BatchNormaliser) normalise(ctx context.Context, path string, opts driving.RunOptions) domain.FileResult {
	fr := domain.FileResult{Path: path}

	text, err := n.store.Read(ctx, path)
	if err != nil {
		fr.Err = err
		return fr
	}

	res := n.rules.Normalise(text)
	fr.Changed = res.Changed
	fr.Changes = res.Changes
	if !res.Changed {
		logger.Debug("%s: no changes", path)
		return fr
	}
	if opts.DryRun {
		logger.Debug("%s: %d changes (dry run)", path, len(res.Changes))
		return fr
	}

	if err := n.store.Write(ctx, path, res.Text); err != nil {
		fr.Err = err
		return fr
	}
	fr.Written = true
	logger.Debug("%s: %d changes written", path, len(res.Changes))
	return fr
}

// Watch normalises documents as they change until ctx is cancelled.
// The batch lock is held for the whole session. report is called for every
// document that was processed, changed or not.
func (n *BatchNormaliser) Watch(
	ctx context.Context,
	opts driving.RunOptions,
	report func(*domain.FileResult),
) error {
	if n.watcher == nil {
		return errors.New("watcher not configured")
	}

	unlock, err := n.store.Lock(ctx)
	if err != nil {
		return err
	}
	defer release(unlock)

	events, err := n.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	logger.Section("Watch")
	logger.Info("Watching %s with variant %s", n.store.Dir(), n.variant)

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-events:
			if !ok {
				return nil
			}
			fr := n.normalise(ctx, path, opts)
			if fr.Failed() {
				logger.Error("%v", fr.Err)
			}
			if report != nil {
				report(&fr)
			}
		}
	}
}

// Distribution counts the trimmed values of field across all documents.
// For category only the first occurrence per document counts; other fields
// count every occurrence. Rows are sorted by count descending, then value.
func (n *BatchNormaliser) Distribution(ctx context.Context, field string) ([]domain.Count, error) {
	if field == "" {
		return nil, fmt.Errorf("field is empty: %w", domain.ErrInvalidInput)
	}

	paths, err := n.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	counts := make(map[string]int)
	for _, path := range paths {
		text, err := n.store.Read(ctx, path)
		if err != nil {
			return nil, err
		}
		fields := domain.FieldsNamed(domain.ParseFields(text), field)
		if field == domain.FieldCategory && len(fields) > 1 {
			fields = fields[:1]
		}
		for _, f := range fields {
			if v := f.Trimmed(); v != "" {
				counts[v]++
			}
		}
	}

	return sortCounts(counts), nil
}

func sortCounts(counts map[string]int) []domain.Count {
	rows := make([]domain.Count, 0, len(counts))
	for value, count := range counts {
		rows = append(rows, domain.Count{Value: value, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Value < rows[j].Value
	})
	return rows
}

func release(unlock func() error) {
	if err := unlock(); err != nil {
		logger.Warn("release batch lock: %v", err)
	}
}
