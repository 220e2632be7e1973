package domain

// FileResult is the outcome of normalising one document.
type FileResult struct {
	// Path is the document location.
	Path string

	// Changed is true when at least one rule matched.
	Changed bool

	// Written is true when the new text was persisted.
	// Dry runs report Changed without Written.
	Written bool

	// Changes lists every correction in the order applied.
	Changes []Change

	// Err is set when the document could not be read or written.
	Err error
}

// Failed reports whether the document hit a filesystem error.
func (r FileResult) Failed() bool {
	return r.Err != nil
}

// BatchResult is the outcome of a directory run.
type BatchResult struct {
	// RunID uniquely identifies the run.
	RunID string

	// Dir is the directory that was processed.
	Dir string

	// Variant is the rule set that ran.
	Variant string

	// DryRun is true when nothing was written.
	DryRun bool

	// Files holds one result per document, in processing order.
	Files []FileResult
}

// Total returns the number of documents processed.
func (r *BatchResult) Total() int {
	return len(r.Files)
}

// ChangedCount returns the number of documents with at least one change.
func (r *BatchResult) ChangedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}

// FailedCount returns the number of documents that hit an error.
func (r *BatchResult) FailedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Failed() {
			n++
		}
	}
	return n
}

// Count is one row of a value frequency table.
type Count struct {
	Value string
	Count int
}
