// Package domain defines core data models and interfaces shared across the app.
// It contains plain value types (Grid, Position, Digraph) and contracts
// (interfaces) only.
package domain
