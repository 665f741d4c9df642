package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/booklist/internal/books"
)

// Snapshot represents the latest search results available to the UI.
type Snapshot struct {
	Query       string
	Books       []books.Book
	Loading     bool
	Generation  uint64 // loader generation the snapshot belongs to
	LastUpdated time.Time
	LastError   error
}

// Empty reports whether there is nothing to list. The UI shows the empty state
// for failures as well as for searches with no matches.
func (s Snapshot) Empty() bool {
	return len(s.Books) == 0
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin records that the search for query with generation gen has started.
// Generations older than the current one are ignored and Begin returns false.
func (s *Store) Begin(query string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen < s.snapshot.Generation {
		return false
	}
	s.snapshot.Query = query
	s.snapshot.Generation = gen
	s.snapshot.Loading = true
	return true
}

// Finish replaces the book list with the result of generation gen. A result
// for any other generation is stale and is dropped. On error the list is
// cleared and the error is recorded.
func (s *Store) Finish(gen uint64, found []books.Book, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}
	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.Books = nil
		s.snapshot.LastError = err
		return true
	}
	s.snapshot.Books = cloneBooks(found)
	s.snapshot.LastError = nil
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Books = cloneBooks(s.snapshot.Books)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneBooks(items []books.Book) []books.Book {
	if len(items) == 0 {
		return nil
	}
	dup := make([]books.Book, len(items))
	copy(dup, items)
	return dup
}
