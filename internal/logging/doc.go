// Package logging builds booklist's zerolog logger.
//
// The TUI owns the terminal, so log output goes to a JSON file rotated by
// lumberjack (<log_dir>/booklist.log by default). The search command can add
// a zerolog.ConsoleWriter on stderr with --verbose. The log view in the TUI
// reads the same file back through the logtail package.
package logging
