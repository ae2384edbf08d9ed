package fetcher

import (
	"context"
	"testing"
)

func TestHashBytes(t *testing.T) {
	a := HashBytes([]byte("hello"))
	b := HashBytes([]byte("hello"))
	c := HashBytes([]byte("world"))

	if a != b {
		t.Errorf("same content hashed differently: %q vs %q", a, b)
	}
	if a == c {
		t.Error("different content produced the same hash")
	}
	if len(a) != 32 {
		t.Errorf("expected 32 hex characters, got %d (%q)", len(a), a)
	}
}

func TestKnownHashesLookupAdd(t *testing.T) {
	k := NewKnownHashes()

	hash := HashBytes([]byte("image-data"))
	if _, ok := k.Lookup(hash); ok {
		t.Error("empty set should not contain hash")
	}

	k.Add(hash, "photo.jpg")
	name, ok := k.Lookup(hash)
	if !ok {
		t.Fatal("expected hash after Add")
	}
	if name != "photo.jpg" {
		t.Errorf("Lookup = %q, want photo.jpg", name)
	}
	if k.Len() != 1 {
		t.Errorf("Len = %d, want 1", k.Len())
	}
}

func TestSeedFromStore(t *testing.T) {
	ctx := context.Background()
	st := memStore(t)

	files := map[string][]byte{
		"a.jpg": []byte("content-a"),
		"b.png": []byte("content-b"),
	}
	for name, data := range files {
		if _, err := st.Save(ctx, name, data); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
	}

	k := NewKnownHashes()
	n, err := k.Seed(ctx, st)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 2 {
		t.Errorf("Seed = %d files, want 2", n)
	}

	for name, data := range files {
		got, ok := k.Lookup(HashBytes(data))
		if !ok {
			t.Errorf("expected hash of %s to be seeded", name)
			continue
		}
		if got != name {
			t.Errorf("hash of %s maps to %q", name, got)
		}
	}
}

func TestSeedEmptyStore(t *testing.T) {
	k := NewKnownHashes()
	n, err := k.Seed(context.Background(), memStore(t))
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 0 || k.Len() != 0 {
		t.Errorf("expected empty seed, got n=%d len=%d", n, k.Len())
	}
}
