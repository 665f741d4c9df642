package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/booklist/internal/books"
)

func TestStore_FinishAndSnapshotClone(t *testing.T) {
	var s Store

	if !s.Begin("harry potter", 1) {
		t.Fatal("Begin(gen 1) = false, want true")
	}
	snap := s.Snapshot()
	if !snap.Loading || snap.Query != "harry potter" || snap.Generation != 1 {
		t.Fatalf("after Begin snapshot = %#v", snap)
	}

	before := time.Now()
	if !s.Finish(1, []books.Book{{Title: "A"}, {Title: "B"}}, nil) {
		t.Fatal("Finish(gen 1) = false, want true")
	}

	snap = s.Snapshot()
	if snap.Loading {
		t.Fatal("Loading = true after Finish")
	}
	if len(snap.Books) != 2 || snap.Books[0].Title != "A" {
		t.Fatalf("snapshot books = %#v, want 2 items", snap.Books)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Books[0].Title = "mutated"
	snap2 := s.Snapshot()
	if snap2.Books[0].Title != "A" {
		t.Fatalf("Snapshot should clone books; got %q want A", snap2.Books[0].Title)
	}
}

func TestStore_FinishReplacesWholesale(t *testing.T) {
	var s Store

	s.Begin("first", 1)
	s.Finish(1, []books.Book{{Title: "A"}, {Title: "B"}, {Title: "C"}}, nil)
	s.Begin("second", 2)
	s.Finish(2, []books.Book{{Title: "Z"}}, nil)

	snap := s.Snapshot()
	if len(snap.Books) != 1 || snap.Books[0].Title != "Z" {
		t.Fatalf("books = %#v, want only Z", snap.Books)
	}
}

func TestStore_FinishErrorClearsBooks(t *testing.T) {
	var s Store

	s.Begin("ok", 1)
	s.Finish(1, []books.Book{{Title: "A"}}, nil)

	origErr := errors.New("boom")
	s.Begin("bad", 2)
	s.Finish(2, nil, origErr)

	snap := s.Snapshot()
	if !snap.Empty() {
		t.Fatalf("books = %#v, want empty after failure", snap.Books)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}

	s.Begin("ok again", 3)
	s.Finish(3, []books.Book{{Title: "B"}}, nil)
	if err := s.Snapshot().LastError; err != nil {
		t.Fatalf("LastError = %v, want nil after success", err)
	}
}

func TestStore_IgnoresStaleGenerations(t *testing.T) {
	var s Store

	s.Begin("old", 1)
	s.Begin("new", 2)

	if s.Finish(1, []books.Book{{Title: "old"}}, nil) {
		t.Fatal("Finish(gen 1) = true after gen 2 began, want false")
	}
	snap := s.Snapshot()
	if !snap.Loading || len(snap.Books) != 0 {
		t.Fatalf("stale Finish changed snapshot: %#v", snap)
	}

	if s.Begin("older", 1) {
		t.Fatal("Begin(gen 1) = true after gen 2, want false")
	}
	if got := s.Snapshot().Query; got != "new" {
		t.Fatalf("Query = %q, want new", got)
	}

	s.Finish(2, []books.Book{{Title: "new"}}, nil)
	snap = s.Snapshot()
	if snap.Loading || len(snap.Books) != 1 || snap.Books[0].Title != "new" {
		t.Fatalf("snapshot = %#v, want the gen 2 result", snap)
	}
}

func TestStore_ZeroValue(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if !snap.Empty() || snap.Loading || snap.LastError != nil {
		t.Fatalf("zero snapshot = %#v", snap)
	}
}
