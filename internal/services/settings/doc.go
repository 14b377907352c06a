// Package settings serves the tenant branding object through a
// process-wide cache. Concurrent consumers share one in-flight fetch and
// one cached value for the process lifetime; Invalidate forces the next
// caller to refetch.
package settings
