// Package commands defines the selfcare CLI and wires dependencies for
// subcommands.
//
// # Commands
//
//   - domain     Register your provider's portal domain
//   - login      Sign in and store the session token
//   - logout     Discard the session token
//   - accounts   List your internet accounts
//   - pay        Start an Mpesa payment for an account
//   - confirm    Confirm a payment by transaction code
//   - packages   List or change an account's package
//   - wifi       Change an account's WiFi name and password
//   - suspend    Suspend an active account
//   - unsuspend  Restore a suspended account
//   - settings   Show the provider's branding settings
//   - update     Check for and install client updates
//   - portal     Open the interactive portal UI
//
// # Implementation
//
// The root command loads configuration and builds a dependency graph
// (session store, portal client, services) before any subcommand runs, so
// handlers share one HTTP client with timeouts and one session file.
package commands
