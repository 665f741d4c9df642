// Package logtail reads the tail of booklist's log file and formats it for
// display.
//
// # Reading
//
// Read extracts the last maxLines lines with a ring buffer: one sequential
// pass, O(maxLines) memory, lines returned oldest first.
//
//	lines, err := logtail.Read(cfg.LogPath(), 400)
//
// # Formatting
//
// The log file holds zerolog JSON, one object per line. Decode walks a line
// with gjson and splits it into time, level, message and the remaining
// fields; Format renders the compact console form:
//
//	{"level":"info","component":"books","results":2,"time":"...","message":"search finished"}
//	14:05:09 INF search finished component=books results=2
//
// Lines that are not JSON objects are shown as-is.
package logtail
