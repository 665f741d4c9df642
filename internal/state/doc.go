// Package state provides thread-safe state sharing between searches and the UI.
//
// # Overview
//
// A Store holds the latest Snapshot: the query, the book list, whether a search
// is loading, and the last error. Searches run on background goroutines and
// publish into the Store; the UI reads Snapshot on its own schedule.
//
// # Generations
//
// Every search carries the generation handed out by the loader package.
//
//	store.Begin(query, gen)       // gen >= current: query set, Loading=true
//	store.Finish(gen, books, err) // gen == current: list replaced, Loading=false
//
// Begin with an older generation and Finish with any generation other than the
// current one are ignored, so an earlier search finishing late can never
// replace the results of a later one.
//
// # Update Semantics
//
// Finish replaces the book list wholesale. On error the list is cleared and
// LastError is set; the UI renders "No books found." for both cases and shows
// the error text in the header.
//
// # Copying
//
// Snapshot returns a copy: the Books slice is cloned and LastError is wrapped
// in a fresh error value, so callers may mutate what they receive.
//
// The zero Store is ready to use.
package state
