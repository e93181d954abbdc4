// Package ledger defines the domain-level port for the distributed ledger.
//
// The credential service depends on this interface only; the stellar
// subpackage provides the Horizon-backed implementation and tests use
// generated mocks. Error contracts matter more than the happy path here:
// a read failure is retryable, an explicit rejection is final, and a
// submission with unknown outcome must surface as ambiguous because the
// transaction may already be committed on-chain.
package ledger

//go:generate mockgen -source=ledger.go -destination=mocks/ledger_mock.go -package=mocks

import "context"

// Account is the ledger-side state the issuer needs: identity plus the
// per-account sequence number that orders its transactions.
type Account struct {
	ID       string
	Sequence int64
}

// Balance is one asset position held by an account.
// Native balances carry no code or issuer.
type Balance struct {
	Type   string
	Code   string
	Issuer string
	Amount string
}

// Native reports whether the balance is the ledger's native currency.
func (b Balance) Native() bool {
	return b.Type == "native"
}

// Payment describes a single-operation payment transaction: one unit
// transfer of an issuer-scoped asset with a text memo attached.
type Payment struct {
	// Sequence is the issuer account sequence the transaction builds on.
	// The caller owns serialization; two payments built from the same
	// sequence cannot both succeed.
	Sequence    int64
	Destination string
	AssetCode   string
	Amount      string
	MemoText    string
}

// SubmitResult carries the ledger-assigned identity of an accepted transaction.
type SubmitResult struct {
	Hash   string
	Ledger int32
}

// Client abstracts ledger reads and writes.
//
// Implementations map transport failures to domain error codes:
// ledger_unavailable for transient read failures, not_found for missing
// accounts, ledger_rejected for explicit refusals, ambiguous_outcome for
// submissions whose fate is unknown, timeout for deadline expiry.
type Client interface {
	// LoadAccount fetches the account's current state, including its sequence number.
	LoadAccount(ctx context.Context, accountID string) (*Account, error)

	// SubmitPayment builds, signs, and submits a payment from the issuer
	// account. It mutates global ledger state exactly once if accepted and
	// must never retry internally.
	SubmitPayment(ctx context.Context, payment Payment) (*SubmitResult, error)

	// ListBalances returns every asset balance held by the account.
	ListBalances(ctx context.Context, accountID string) ([]Balance, error)
}

// IssuerAddressProvider exposes the issuer's public account id.
// The signing key itself never leaves the ledger client.
type IssuerAddressProvider interface {
	IssuerAddress() string
}
