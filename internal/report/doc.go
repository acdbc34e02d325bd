// Package report renders a computed roadmap plan to an io.Writer, either as
// a human-readable text summary or as indented JSON.
package report
