// Package pkgroutine runs batches of tasks on a bounded worker pool.
//
// Manager is a thin layer over github.com/sourcegraph/conc/pool that adds
// context checks and turns panics into errors, so one bad task fails alone
// instead of taking the batch down.
package pkgroutine
