// Package app wires application dependencies for the CLI.
package app
