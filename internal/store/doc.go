// Package store provides file-based persistence for the client session.
//
// It contains the concrete implementation of the domain session storage
// interface, serialising the two session strings (tenant domain and login
// token) as JSON on disk. All methods are concurrency-safe via internal
// locking. The stored file lives under the user's configured home directory.
package store
