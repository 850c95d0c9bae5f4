// Package session holds the client-side view of the backend: the lifecycle of the
// current record fetch and the last known health of the backend.
package session
