package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownVariant indicates no rule set is registered under the requested name.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrUnknownRule indicates no rule builder is registered under the requested name.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrConflictingRules indicates a rule set combines mutually exclusive rules,
	// such as splitting languages and reducing them to their first token.
	ErrConflictingRules = errors.New("conflicting rules")

	// ErrBatchInProgress indicates another run holds the directory lock.
	ErrBatchInProgress = errors.New("batch in progress")

	// Document Errors.

	// ErrUnreadable indicates a document could not be read.
	ErrUnreadable = errors.New("document unreadable")

	// ErrUnwritable indicates a document could not be written back.
	ErrUnwritable = errors.New("document unwritable")

	// ErrChangesPending indicates a check run found documents that would change.
	ErrChangesPending = errors.New("changes pending")
)
