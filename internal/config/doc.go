// Package config loads booklist's TOML configuration.
//
// # Resolution
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/booklist/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Keys that are missing or blank keep their defaults
//
// # Keys
//
//	api_url = "https://www.googleapis.com/books/v1/volumes"
//	connect_timeout = "15s"
//	read_timeout = "10s"
//	log_dir = "~/.local/share/booklist/logs"
//	log_level = "info"
//	initial_query = ""
//
// Timeouts use time.ParseDuration syntax and must be positive. The application
// log is written to <log_dir>/booklist.log (see Config.LogPath).
//
// # Error Handling
//
// Load returns errors for an unreadable file, invalid TOML, and invalid
// timeouts. A missing file is not an error. The api_url value is validated
// later, when the books client is built.
package config
