// Package bootstrap decides the initial screen at launch.
//
// The sequencer is an explicit finite-state machine: it checks the update
// channel, then the stored session, and lands on one of the route states.
// Update-check failure is non-fatal and logged. Any session storage read
// failure routes to domain resolution so the user is never stranded.
package bootstrap
