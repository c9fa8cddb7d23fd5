// Package cli provides the interactive GateKeeper command-line client.
//
// It wires configuration, local session storage, the API client, and an
// interactive REPL. Typical flow: restore a cached session if one exists,
// start a background connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Whoami (token-gated account lookup)
//   - Ping (server liveness probe)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
