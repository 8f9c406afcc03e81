// Package cli provides the interactive BlogTalks command-line client.
//
// It wires configuration, local session storage, the HTTP API client, and an
// interactive REPL over the view synchronizers. Typical flow: restore any
// persisted session, then execute user commands against the remote API.
//
// Key features:
//   - Register / Login / Logout with a locally persisted session
//   - Browse posts page by page, open a post with its comments
//   - Search posts by text or tag
//   - Write, edit and delete your own posts, comment on any post
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
