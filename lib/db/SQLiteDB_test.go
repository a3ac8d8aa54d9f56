package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pagecraft/pages-go/lib/exception"
	db2 "github.com/pagecraft/pages-go/lib/models/db"
)

func newTestSQLiteDB(t *testing.T) DataStore {
	t.Helper()

	store, err := NewSQLiteDB(filepath.Join(t.TempDir(), "pages.db"))
	if err != nil {
		t.Fatalf("opening sqlite store: %v", err)
	}
	return store
}

func TestSQLiteDBRoundTrip(t *testing.T) {
	store := newTestSQLiteDB(t)

	if store.DoesPageExist("p1") {
		t.Error("unexpected page in fresh store")
	}

	if err := store.SavePage(db2.PageDB{Id: "p1", Title: "first"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.DoesPageExist("p1") {
		t.Error("saved page not found")
	}

	loaded, err := store.GetPage("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Title != "first" {
		t.Errorf("got title %q; want \"first\"", loaded.Title)
	}

	// saving again updates in place
	if err := store.SavePage(db2.PageDB{Id: "p1", Title: "second"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, _ = store.GetPage("p1")
	if loaded.Title != "second" {
		t.Errorf("got title %q; want \"second\"", loaded.Title)
	}

	ids := store.GetPageIds()
	if len(ids) != 1 || ids[0] != "p1" {
		t.Errorf("got ids %v; want [p1]", ids)
	}
}

func TestSQLiteDBMissingPage(t *testing.T) {
	store := newTestSQLiteDB(t)

	_, err := store.GetPage("nope")
	var notFound *exception.PageNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("got %T; want *exception.PageNotFoundError", err)
	}
}

func TestSQLiteDBRemove(t *testing.T) {
	store := newTestSQLiteDB(t)
	store.SavePage(db2.PageDB{Id: "p1"})

	if err := store.RemovePage("p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.DoesPageExist("p1") {
		t.Error("page still exists after removal")
	}

	var notFound *exception.PageNotFoundError
	if err := store.RemovePage("p1"); !errors.As(err, &notFound) {
		t.Errorf("got %T; want *exception.PageNotFoundError", err)
	}
}
