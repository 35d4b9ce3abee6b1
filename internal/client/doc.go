// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the server adapter, and the local session cache
// into a single process lifecycle: resume or establish a session, run the
// note workspace, and start over after logout.
package client
