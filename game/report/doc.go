// Package report renders finished competition runs: CSV for analysis
// and plain text for the terminal.
package report
