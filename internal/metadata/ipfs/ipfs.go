// Package ipfs stores credential metadata on an IPFS node via its HTTP API.
package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	shell "github.com/ipfs/go-ipfs-api"

	"credchain/internal/metadata"
	dErrors "credchain/pkg/domain-errors"
)

// Store implements metadata.Store backed by an IPFS node.
type Store struct {
	sh *shell.Shell
}

var _ metadata.Store = (*Store)(nil)

// New connects to the IPFS HTTP API at apiURL (host:port or multiaddr).
func New(apiURL string, timeout time.Duration) *Store {
	sh := shell.NewShell(apiURL)
	sh.SetTimeout(timeout)
	return &Store{sh: sh}
}

// Put uploads the metadata object as canonical JSON and returns its CID.
// Pinning is implicit in add, so the blob survives node garbage collection.
func (s *Store) Put(ctx context.Context, m metadata.Metadata) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeStorageUnavailable, "metadata store call canceled")
	}

	body, err := json.Marshal(m)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "encode metadata")
	}

	cid, err := s.sh.Add(bytes.NewReader(body))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeStorageUnavailable, "ipfs add failed")
	}
	return cid, nil
}

// Health verifies the IPFS node is reachable, for readiness probes.
func (s *Store) Health(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, _, err := s.sh.Version(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorageUnavailable, "ipfs node unreachable")
	}
	return nil
}
