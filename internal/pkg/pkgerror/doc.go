// Package pkgerror defines the structured error type used across the application.
//
// An Error carries a user-facing message, a high-level type, and a stable code,
// and can wrap an underlying cause. Handlers map it to an HTTP status code at
// the edge; callers match causes with errors.Is.
package pkgerror
