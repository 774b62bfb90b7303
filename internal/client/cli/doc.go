// Package cli provides the interactive lost-and-found command-line client.
//
// It wires configuration, the persisted session, the API services and an
// interactive REPL. Typical flow: restore the previous session if one is on
// disk, then execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout with the session persisted across runs
//   - Browse items (all, lost or found) and show one in full
//   - Report a lost or found item with an optional photo
//   - Claim a found item with proof, and track your claims
//   - Forward a claim on your own item to the admins
//   - Admin review: approve or reject forwarded claims
//   - Ownership verification with a one-time code
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Command reachability follows the navigation policy in the nav package.
package cli
