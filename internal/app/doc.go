// Package app is the composition root of booklist.
//
// # Wiring
//
//	Run() / Search()
//	  │
//	  ├─> config.Load()        ~/.config/booklist/config.toml
//	  ├─> logging.New()        rotated file at Config.LogPath()
//	  ├─> books.NewClient()    endpoint and timeouts from config
//	  ├─> state.Store{}        shared snapshot
//	  ├─> loader.New()         Begin/Finish hooks publish into the store
//	  │
//	  ├─> Run:    loader.Start(initial_query), then ui.Run() (blocks)
//	  └─> Search: loader.Run(term), results returned to the CLI
//
// The TUI owns stdout, so Run never mirrors logs to a console writer. Search
// does when Options.Console is set (the CLI's --verbose flag).
//
// # Errors
//
// Only startup failures are returned from Run: an unreadable or invalid config
// file, an unusable endpoint, or a log directory that cannot be created.
// Search failures are logged and surface in the UI as the empty state with
// the error in the header. Search returns them to its caller.
package app
