// Package memory is an in-process metadata.Store for tests and local
// development without an IPFS node.
package memory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"credchain/internal/metadata"
	dErrors "credchain/pkg/domain-errors"
)

// Store keeps metadata blobs in memory, keyed by a sha256 content id so the
// "same object, same id" property of a real content-addressed store holds.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ metadata.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

// Put stores the metadata object and returns its content id.
func (s *Store) Put(ctx context.Context, m metadata.Metadata) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeStorageUnavailable, "metadata store call canceled")
	}

	body, err := json.Marshal(m)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "encode metadata")
	}

	sum := sha256.Sum256(body)
	cid := hex.EncodeToString(sum[:])

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[cid] = body
	return cid, nil
}

// Get returns a stored blob by content id.
func (s *Store) Get(cid string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[cid]
	return blob, ok
}
