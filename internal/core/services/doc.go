// Package services implements the driving port interfaces.
// Services hold the extraction, search and settings business logic
// and orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no external dependencies.
package services
