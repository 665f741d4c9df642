package loader

import (
	"context"
	"sync"

	"github.com/five82/booklist/internal/books"
)

// SearchFunc performs one blocking search. books.Client.Search satisfies it.
type SearchFunc func(ctx context.Context, term string) ([]books.Book, error)

// Result is the outcome of one search run.
type Result struct {
	Generation uint64
	Term       string
	Books      []books.Book
	Err        error
	Stale      bool // superseded by a later run before it finished
}

// Hooks observe the lifecycle of each run. Either may be nil.
type Hooks struct {
	// Begin is called when a generation is reserved, before the search starts.
	Begin func(term string, gen uint64)
	// Finish is called with every result that was not superseded.
	Finish func(Result)
}

// Loader runs searches so that starting a new one cancels the previous one.
// Each run is tagged with a generation; only the latest generation is current.
type Loader struct {
	search SearchFunc
	hooks  Hooks

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// New returns a Loader backed by search.
func New(search SearchFunc, hooks Hooks) *Loader {
	return &Loader{search: search, hooks: hooks}
}

// Task is a reserved search run. Obtain one with Next, then call Run once.
type Task struct {
	l    *Loader
	ctx  context.Context
	end  context.CancelFunc
	gen  uint64
	term string
}

// Generation identifies the task.
func (t *Task) Generation() uint64 {
	return t.gen
}

// Next cancels any in-flight run, reserves the next generation and reports it
// to the Begin hook. The search itself does not start until Task.Run.
func (l *Loader) Next(parent context.Context, term string) *Task {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.mu.Unlock()

	if l.hooks.Begin != nil {
		l.hooks.Begin(term, gen)
	}
	return &Task{l: l, ctx: ctx, end: cancel, gen: gen, term: term}
}

// Run performs the reserved search and reports whether it was superseded.
func (t *Task) Run() Result {
	defer t.end()

	found, err := t.l.search(t.ctx, t.term)
	res := Result{Generation: t.gen, Term: t.term, Books: found, Err: err}
	res.Stale = !t.l.finish(t.gen)
	if !res.Stale && t.l.hooks.Finish != nil {
		t.l.hooks.Finish(res)
	}
	return res
}

// Run cancels any in-flight run and performs a new search synchronously.
func (l *Loader) Run(ctx context.Context, term string) Result {
	return l.Next(ctx, term).Run()
}

// Start runs the search on a new goroutine and returns its generation. done is
// called with the result unless a later run superseded it.
func (l *Loader) Start(ctx context.Context, term string, done func(Result)) uint64 {
	task := l.Next(ctx, term)
	go func() {
		res := task.Run()
		if res.Stale || done == nil {
			return
		}
		done(res)
	}()
	return task.gen
}

// Current reports whether gen is the most recently reserved generation.
func (l *Loader) Current(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return gen == l.gen
}

// Cancel aborts the in-flight run, if any. Its result will be marked stale.
func (l *Loader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}

func (l *Loader) finish(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return false
	}
	l.cancel = nil
	return true
}
