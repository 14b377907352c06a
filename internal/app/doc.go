// Package app wires application dependencies for the CLI.
//
// It builds the concrete session store, portal client and high-level
// services from Config, exposing them via the Wire struct for commands and
// the interactive UI to use.
package app
