// Package cli provides the interactive taskkeeper command-line client.
//
// It wires configuration, the file-backed store, and the domain services
// into an interactive REPL. Typical flow: load collections from the data
// directory, then execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout (session lives only for the process lifetime)
//   - Add / list / complete tasks
//   - Delete tasks behind an explicit y/n confirmation
//   - Add / list comments on tasks
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
