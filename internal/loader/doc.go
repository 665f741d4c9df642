// Package loader runs book searches off the UI goroutine.
//
// A Loader hands out monotonically increasing generations. Reserving a new
// generation cancels the context of the previous run, so at most one search is
// in flight and a slow early search can never overwrite a later one: its
// Result comes back with Stale set, the Finish hook is skipped and Start drops
// it.
//
// The hooks connect a Loader to a state.Store:
//
//	l := loader.New(client.Search, loader.Hooks{
//		Begin:  func(term string, gen uint64) { store.Begin(term, gen) },
//		Finish: func(r loader.Result) { store.Finish(r.Generation, r.Books, r.Err) },
//	})
//	l.Start(ctx, "harry potter", nil)
package loader
