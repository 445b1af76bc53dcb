// Package cli provides the interactive driverdesk terminal client.
//
// It wires configuration, the login gate, the inactivity monitor and the
// driver registry behind a small REPL. Typical flow: prompt for credentials
// until the gate accepts them, then execute user commands until the user
// exits or the session times out.
//
// Key features:
//   - Login with attempt counting and timed lockout
//   - New driver entry with photo checks and full validation feedback
//   - Licence registration for an existing driver
//   - Show / List drivers
//
// The session is started via App.Run(ctx), which blocks until the user exits
// or the inactivity monitor fires. See App, Input and runREPL for details.
package cli
