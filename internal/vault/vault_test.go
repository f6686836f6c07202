package vault

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestVault(t *testing.T, keep int) *Vault {
	t.Helper()
	v, err := Open(filepath.Join(t.TempDir(), "test.vault.db"), keep)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { v.Close() })
	return v
}

func TestStoreAndLatest(t *testing.T) {
	v := openTestVault(t, 5)

	if _, ok, err := v.Latest(); err != nil || ok {
		t.Fatalf("empty vault: ok=%v err=%v", ok, err)
	}

	first := []byte("factions: []\n")
	second := []byte("factions:\n  - id: f1\n")
	if err := v.Store(first); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := v.Store(second); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, ok, err := v.Latest()
	if err != nil || !ok {
		t.Fatalf("latest: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, second) {
		t.Errorf("latest = %q, want the most recent snapshot", got)
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	v := openTestVault(t, 2)
	for _, doc := range []string{"one", "two", "three"} {
		if err := v.Store([]byte(doc)); err != nil {
			t.Fatalf("store %s: %v", doc, err)
		}
	}

	n, err := v.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want retention limit 2", n)
	}
	got, ok, err := v.Latest()
	if err != nil || !ok || string(got) != "three" {
		t.Errorf("latest = %q ok=%v err=%v, want newest survivor", got, ok, err)
	}
}

func TestMeta(t *testing.T) {
	v := openTestVault(t, 1)
	if err := v.SetMeta("last_save", "2026-08-30"); err != nil {
		t.Fatalf("set meta: %v", err)
	}
	got, err := v.GetMeta("last_save")
	if err != nil || got != "2026-08-30" {
		t.Errorf("meta = %q err=%v", got, err)
	}
	if _, err := v.GetMeta("absent"); err == nil {
		t.Error("missing key should error")
	}
}

func TestCloseDrainsAsyncWrites(t *testing.T) {
	v, err := Open(filepath.Join(t.TempDir(), "drain.vault.db"), 5)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	v.StoreAsync([]byte("queued"))
	if err := v.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Closed vault drops further async stores without panicking.
	v.StoreAsync([]byte("late"))
}
