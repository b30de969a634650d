// Package service orchestrates competitions: it builds entrants from a
// roster, runs the named event, and keeps finished runs in an
// in-memory store keyed by short random IDs.
package service
