// Package domain defines the core types of exhibitfix.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Field: A named value section introduced by a "# <name>" marker line
//   - Edit: A span replacement applied to document text
//   - Change: One correction applied by a rule
//   - CategoryTable: The versioned category remapping
//   - BatchResult: The outcome of a directory run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
