// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// Commands run with stderr captured; on failure the trimmed stderr text
// becomes the error message, which is what users want to see when git or
// npm rejects an operation.
//
// # Design Notes
//
// nex shells out to the git and npm CLIs rather than using Go libraries.
// This keeps the tool compatible with user configuration (SSH keys,
// credential helpers, npm lifecycle scripts) and means version-control
// semantics stay where they belong: in git itself.
package cmd
