// Package cli provides the interactive TaskKeeper command-line client.
//
// It wires configuration and the gRPC client into a small REPL: register or
// log in, then list, show, add, re-status and delete your tasks. Passwords
// are read without echo and the access token lives only in memory.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
