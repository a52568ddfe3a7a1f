// Package session contains the Session aggregate: the orders of one upload,
// their delivery groups, and the operator's selection, kept consistent under
// every mutation. Sessions are in-memory only and idle ones are evicted.
package session
