package fetcher

import (
	"context"
	"crypto/md5"
	"encoding/hex"

	"github.com/Ngong2/ubuntu-image-fetcher/internal/store"
)

// HashBytes returns the hex digest used as the duplicate-detection key for
// a downloaded byte sequence.
func HashBytes(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}

// HashString returns the digest of a string, used for generated filenames.
func HashString(s string) string {
	return HashBytes([]byte(s))
}

// KnownHashes maps content digests to the filename each digest was saved
// under. It lives for one program run: seeded from the files already in
// the target directory at startup, extended after each save.
type KnownHashes struct {
	byHash map[string]string
}

// NewKnownHashes returns an empty hash set.
func NewKnownHashes() *KnownHashes {
	return &KnownHashes{byHash: make(map[string]string)}
}

// Seed hashes every file currently in the store and records it. Files that
// cannot be read are skipped. Returns the number of files seeded.
func (k *KnownHashes) Seed(ctx context.Context, st *store.Store) (int, error) {
	names, err := st.List(ctx)
	if err != nil {
		return 0, err
	}

	seeded := 0
	for _, name := range names {
		data, err := st.Read(ctx, name)
		if err != nil {
			continue
		}
		k.byHash[HashBytes(data)] = name
		seeded++
	}
	return seeded, nil
}

// Lookup returns the filename previously saved for hash, if any.
func (k *KnownHashes) Lookup(hash string) (string, bool) {
	name, ok := k.byHash[hash]
	return name, ok
}

// Add records a newly saved file's hash.
func (k *KnownHashes) Add(hash, name string) {
	k.byHash[hash] = name
}

// Len returns the number of known hashes.
func (k *KnownHashes) Len() int {
	return len(k.byHash)
}
