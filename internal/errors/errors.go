// Package errors defines the sentinel error conditions shared across
// the sync run. Per-target transfer errors are plain wrapped errors;
// only conditions callers branch on live here.
package errors

import "errors"

// Fatal preconditions. Any of these aborts the run before a network
// connection is opened.
var (
	// ErrMissingCredential is returned when the MCP2 FTP credentials are
	// not present in the environment.
	ErrMissingCredential = errors.New("MCP2 credentials missing: MCP2_USER and MCP2_PWD must be provided as environment variables")

	// ErrInvalidTargetFormat is returned when a target name does not
	// match the <CardName>-<Channel>.<ext> grammar for any known card
	// family. The target list is assumed pre-validated, so one bad entry
	// fails the whole run rather than being silently skipped.
	ErrInvalidTargetFormat = errors.New("invalid target format")
)
