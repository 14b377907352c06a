// Package update implements the client's self-update channel.
//
// A small JSON manifest published at a fixed URL describes the latest
// build. Check compares it with the running version, Fetch downloads the
// binary and verifies its SHA-256 digest, and Apply atomically replaces the
// running executable. Each step is independently failable; a failed check
// never blocks the rest of the client.
package update
