// Package commands contains business operations that modify session state.
// Implements the Command pattern for write operations in the CQRS
// architecture. Every mutation runs inside a single repository Update
// closure, so validate-then-apply is atomic per session and a declined
// operation leaves the session unchanged.
package commands
