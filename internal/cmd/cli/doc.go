// Package cli implements the ksuid command-line tool: Cobra commands for
// generating identifiers and inspecting identifiers given in either string
// encoding. It is thin I/O glue over pkg/ksuid; all parsing, rendering, and
// validation semantics live in the library.
package cli
