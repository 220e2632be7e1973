// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: Lists, reads and writes the documents of one directory
//   - Rule: A single field correction applied to document text
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - DocumentWatcher: Change notifications for watch mode
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or rule package
package driven
