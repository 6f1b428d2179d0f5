// Package cli provides the interactive onboarding client.
//
// It wires configuration, the persisted key-value store, the session store
// and the stack navigator, then drives a small set of terminal screens from
// a REPL. Typical flow: splash, onboarding slides, login or registration,
// home.
//
// Key features:
//   - Session restored on start and written through on every change
//   - Login / Register with per-field validation and simulated latency
//   - Logout (clears the persisted session)
//   - Reset (forgets the session and the onboarding progress)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Screen rendering in screens.go, and runREPL for details.
package cli
