// Package ui implements the booklist terminal interface with Bubble Tea.
//
// # Layout
//
//	booklist  Query: "harry potter"  Results: 40  14:02:11 (now)
//	/:Search  j/k:Navigate  enter:Open  y:Copy link  l:Logs  ?:More  T:Nightfox
//	┌──── Books (40) ────┐┌──────────── Details ────────────┐
//	│ Title · Author     ││ Title                            │
//	│ ...                ││ by Author                        │
//	└────────────────────┘└──────────────────────────────────┘
//
// The first line is the header, the second the command bar (replaced by the
// search input while typing). With no results the content area shows
// "No books found.", which is also what a failed search looks like; the
// header then carries the error.
//
// # Searching
//
// Submitting the input calls loader.Next, whose Begin hook marks the store as
// loading, and returns a tea.Cmd that runs the task. A newer search cancels
// the older one. Results that come back stale, or whose generation is no
// longer current, are dropped; otherwise the model re-reads the store. A
// one-second tick also re-reads the store, which is how a search started
// outside the UI (the initial load) reaches the screen.
//
// # Actions
//
// enter/o hands the selected book's purchase URL to the Opener (xdg-open,
// open or rundll32 depending on the platform); y copies it with the Copier
// (atotto/clipboard). Both are injectable for tests.
//
// # Logs
//
// l toggles a viewport over the tail of the application log, decoded by
// logtail and re-read on every tick while visible.
//
// # Themes
//
// T cycles Nightfox, Kanagawa and Slate and persists the choice with prefs.
package ui
