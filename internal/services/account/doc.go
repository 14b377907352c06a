// Package account implements the customer account action flows: listing
// accounts, initiating and confirming mobile-money payments, changing the
// billing package, changing WiFi credentials, and toggling suspension.
//
// Each flow is a single request/response cycle. Local validation runs
// before any network call; nothing auto-retries. Server-side validation
// failures and rejections pass through as portal errors for display.
package account
