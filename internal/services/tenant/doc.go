// Package tenant resolves and registers a tenant domain.
//
// Resolution validates the free-text input against a domain-name shape
// before any network call, checks the allow-list service, and persists the
// domain exactly as submitted when the service answers with its success
// sentinel. Nothing is persisted on rejection or transport failure.
package tenant
