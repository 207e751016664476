package storage

import (
	"os"
	"path/filepath"
	"testing"
)

type slotValue struct {
	Name  string `msgpack:"name"`
	Count int    `msgpack:"count"`
}

func TestBboltKV(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage_test")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	dbPath := filepath.Join(tmpDir, "test.db")
	kv, err := NewBboltKV(dbPath)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer func() { _ = kv.Close() }()

	t.Run("AbsentKey", func(t *testing.T) {
		var out []slotValue
		found, err := kv.Get(KeyUsers, &out)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if found {
			t.Error("expected absent key")
		}
		if out != nil {
			t.Errorf("expected untouched default, got %v", out)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		in := []slotValue{{Name: "alice", Count: 1}, {Name: "bob", Count: 2}}
		if err := kv.Set(KeyUsers, in); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		var out []slotValue
		found, err := kv.Get(KeyUsers, &out)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !found {
			t.Fatal("expected key to be present")
		}
		if len(out) != 2 || out[0].Name != "alice" || out[1].Count != 2 {
			t.Errorf("round trip mismatch: %v", out)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		if err := kv.Set(KeyUsers, []slotValue{{Name: "carol"}}); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		var out []slotValue
		if _, err := kv.Get(KeyUsers, &out); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(out) != 1 || out[0].Name != "carol" {
			t.Errorf("expected overwritten value, got %v", out)
		}
	})

	t.Run("Reopen", func(t *testing.T) {
		if err := kv.Set(KeyServers, slotValue{Name: "persisted", Count: 9}); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := kv.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		kv, err = NewBboltKV(dbPath)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		var out slotValue
		found, err := kv.Get(KeyServers, &out)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !found || out.Name != "persisted" || out.Count != 9 {
			t.Errorf("expected persisted value after reopen, got found=%v %v", found, out)
		}
	})
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	var out slotValue
	found, err := kv.Get(KeyMessages, &out)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("expected absent key")
	}

	if err := kv.Set(KeyMessages, slotValue{Name: "hello", Count: 3}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	found, err = kv.Get(KeyMessages, &out)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || out.Name != "hello" || out.Count != 3 {
		t.Errorf("round trip mismatch: found=%v %v", found, out)
	}
}
