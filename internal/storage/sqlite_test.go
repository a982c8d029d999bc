package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStorePutGet(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; expected absent", ok, err)
	}

	if err := store.Put("numberGameSettings", []byte(`{"difficulty":"hard"}`)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	got, ok, err := store.Get("numberGameSettings")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if string(got) != `{"difficulty":"hard"}` {
		t.Errorf("Get() = %q", got)
	}
}

func TestStorePutOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("k", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put("k", []byte("two")); err != nil {
		t.Fatal(err)
	}

	got, _, _ := store.Get("k")
	if string(got) != "two" {
		t.Errorf("expected overwritten value, got %q", got)
	}

	entries, err := store.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry after upsert, got %d", len(entries))
	}
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key should be gone after Delete")
	}

	// Deleting an absent key is fine
	if err := store.Delete("k"); err != nil {
		t.Errorf("Delete(absent) failed: %v", err)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Write in first session
	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store1.Put("k", []byte("kept")); err != nil {
		t.Fatal(err)
	}
	store1.Close()

	// Read in second session
	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	got, ok, err := store2.Get("k")
	if err != nil || !ok || string(got) != "kept" {
		t.Errorf("value not persisted: %q ok=%v err=%v", got, ok, err)
	}
}

func TestStoreEntriesOrdered(t *testing.T) {
	store := openTestStore(t)
	for _, k := range []string{"b", "a", "c"} {
		if err := store.Put(k, []byte(k)); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.Entries()
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 3 || entries[0].Key != "a" || entries[2].Key != "c" {
		t.Errorf("entries not ordered by key: %+v", entries)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	if _, ok, _ := m.Get("k"); ok {
		t.Fatal("new memory store should be empty")
	}

	value := []byte("abc")
	if err := m.Put("k", value); err != nil {
		t.Fatal(err)
	}
	value[0] = 'X'

	got, ok, _ := m.Get("k")
	if !ok || string(got) != "abc" {
		t.Errorf("Put should copy the value, got %q", got)
	}

	if err := m.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := m.Get("k"); ok {
		t.Error("key should be gone after Delete")
	}
}
