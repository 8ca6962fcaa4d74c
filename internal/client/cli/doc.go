// Package cli provides the interactive cardkeeper command-line client.
//
// It wires configuration, the local session database, the REST API client
// and the services into a read-eval-print loop. The loop shows one of two
// views: the entry view (login, signup) while nobody is logged in, and the
// dashboard (list, add, edit, delete cards) once a session exists.
//
// Key features:
//   - Login / Signup / Logout, with the session kept across runs
//   - List, add, edit and delete business cards
//   - Show a single (public) card and search cards
//   - Automatic logout when the backend rejects the token
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Dialogs and runREPL for details.
package cli
