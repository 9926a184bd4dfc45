// Package commands defines the playfair CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encrypt      Encrypt a message with the keyword-derived grid
//   - grid         Print the 5x5 key grid row by row
//   - digraphs     Print the normalized digraph sequence for a message
//   - fingerprint  Print a short digest of the key grid
//
// # Implementation
//
// The root command builds the cipher service and shared app context before
// any subcommand runs. The keyword is a persistent flag; an empty or
// non-alphabetic keyword surfaces as a command error, never a panic.
package commands
