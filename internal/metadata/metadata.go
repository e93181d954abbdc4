// Package metadata defines the content-addressed storage port for credential
// metadata. The issuance path only needs "store this object, give me back a
// stable content id"; how the store works is the adapter's business.
package metadata

//go:generate mockgen -source=metadata.go -destination=mocks/metadata_mock.go -package=mocks

import "context"

// Metadata is the off-chain credential record linked from the issuing
// transaction's memo. Field names match the stored JSON object.
type Metadata struct {
	Recipient   string `json:"recipient"`
	Credential  string `json:"credential"`
	Description string `json:"description"`
	Proof       string `json:"proof"`
}

// Store persists metadata objects and returns their content identifiers.
//
// The content id is treated as opaque. Verification relies on the first 28
// bytes of the id being unique, which holds for content hashes.
type Store interface {
	Put(ctx context.Context, m Metadata) (contentID string, err error)
}
