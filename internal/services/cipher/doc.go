// Package cipher exposes the Playfair pipeline as the domain.Cipher service
// the CLI consumes. It builds the grid once per call and reuses it for every
// digraph.
package cipher
