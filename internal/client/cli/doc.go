// Package cli provides the interactive GeneralStore command-line client.
//
// It wires configuration, the local credential store, the HTTP gateway and
// the per-view stores into a REPL. Typical flow: resume any persisted
// session, load the catalog, then execute user commands until exit.
//
// Key features:
//   - Browse and filter listings, rotate image galleries, switch the
//     display currency
//   - Cart: add, remove, checkout
//   - Sell-to-us offers with image upload and admin review decisions
//   - Admin listing management
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
