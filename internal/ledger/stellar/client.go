// Package stellar implements the ledger port against a Horizon server.
package stellar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"

	"credchain/internal/ledger"
	dErrors "credchain/pkg/domain-errors"
)

// Transactions time out on-chain after this many seconds, so an ambiguous
// submission resolves to a definite outcome once the window passes.
const txTimeoutSeconds = 300

// Client talks to Horizon and holds the issuer signing key.
// The key is parsed once at construction and never exposed; every issuance
// transaction is signed here and nowhere else.
type Client struct {
	horizon           horizonclient.ClientInterface
	issuerKey         *keypair.Full
	networkPassphrase string
	baseFee           int64
}

var _ ledger.Client = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithHorizon sets a custom Horizon client (for testing).
func WithHorizon(h horizonclient.ClientInterface) Option {
	return func(c *Client) {
		c.horizon = h
	}
}

// WithBaseFee overrides the per-operation base fee in stroops. Default is 100.
func WithBaseFee(fee int64) Option {
	return func(c *Client) {
		if fee > 0 {
			c.baseFee = fee
		}
	}
}

// New creates a Horizon-backed ledger client for the given network.
// The issuer secret is parsed here; an invalid secret fails construction
// rather than the first issuance.
func New(horizonURL, networkPassphrase, issuerSecret string, timeout time.Duration, opts ...Option) (*Client, error) {
	issuerKey, err := keypair.ParseFull(issuerSecret)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "invalid issuer secret key")
	}

	horizon := &horizonclient.Client{
		HorizonURL: horizonURL,
		HTTP:       &http.Client{Timeout: timeout},
	}
	horizon.SetHorizonTimeout(timeout)
	c := &Client{
		horizon: horizon,
		issuerKey:         issuerKey,
		networkPassphrase: networkPassphrase,
		baseFee:           100,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// IssuerAddress returns the issuer's public account id.
func (c *Client) IssuerAddress() string {
	return c.issuerKey.Address()
}

// LoadAccount fetches current account state, including the sequence number.
func (c *Client) LoadAccount(ctx context.Context, accountID string) (*ledger.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, mapContextError(err)
	}

	account, err := c.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: accountID})
	if err != nil {
		return nil, mapReadError(err, "load account")
	}

	seq, err := account.GetSequenceNumber()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "parse account sequence")
	}

	return &ledger.Account{ID: account.AccountID, Sequence: seq}, nil
}

// ListBalances returns every asset balance held by the account.
func (c *Client) ListBalances(ctx context.Context, accountID string) ([]ledger.Balance, error) {
	if err := ctx.Err(); err != nil {
		return nil, mapContextError(err)
	}

	account, err := c.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: accountID})
	if err != nil {
		return nil, mapReadError(err, "list balances")
	}

	balances := make([]ledger.Balance, 0, len(account.Balances))
	for _, b := range account.Balances {
		balances = append(balances, ledger.Balance{
			Type:   b.Type,
			Code:   b.Code,
			Issuer: b.Issuer,
			Amount: b.Balance,
		})
	}
	return balances, nil
}

// SubmitPayment builds, signs, and submits a single-payment transaction from
// the issuer account. It never retries: once the signed envelope leaves this
// method the outcome belongs to the ledger, and an unknown outcome is
// reported as ambiguous so the caller can reconcile before re-issuing.
func (c *Client) SubmitPayment(ctx context.Context, payment ledger.Payment) (*ledger.SubmitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, mapContextError(err)
	}

	sourceAccount := txnbuild.SimpleAccount{
		AccountID: c.issuerKey.Address(),
		Sequence:  payment.Sequence,
	}

	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &sourceAccount,
		IncrementSequenceNum: true,
		BaseFee:              c.baseFee,
		Memo:                 txnbuild.MemoText(payment.MemoText),
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(txTimeoutSeconds),
		},
		Operations: []txnbuild.Operation{
			&txnbuild.Payment{
				Destination: payment.Destination,
				Amount:      payment.Amount,
				Asset: txnbuild.CreditAsset{
					Code:   payment.AssetCode,
					Issuer: c.issuerKey.Address(),
				},
			},
		},
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "build transaction")
	}

	tx, err = tx.Sign(c.networkPassphrase, c.issuerKey)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "sign transaction")
	}

	// The issuance memo is always present, so the destination's
	// memo-required flag never applies; skip the extra account fetch.
	resp, err := c.horizon.SubmitTransactionWithOptions(tx, horizonclient.SubmitTxOpts{
		SkipMemoRequiredCheck: true,
	})
	if err != nil {
		return nil, mapSubmitError(err)
	}

	return &ledger.SubmitResult{Hash: resp.Hash, Ledger: resp.Ledger}, nil
}

// Health verifies Horizon is reachable, for readiness probes.
func (c *Client) Health(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return mapContextError(err)
	}
	if _, err := c.horizon.Root(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeLedgerUnavailable, "horizon unreachable")
	}
	return nil
}

func mapContextError(err error) error {
	if err == context.DeadlineExceeded {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "ledger call deadline exceeded")
	}
	return dErrors.Wrap(err, dErrors.CodeLedgerUnavailable, "ledger call canceled")
}

// mapReadError classifies account read failures: missing accounts are final,
// everything else is transient and safe to retry.
func mapReadError(err error, op string) error {
	if herr := horizonclient.GetError(err); herr != nil {
		switch herr.Problem.Status {
		case http.StatusNotFound:
			return dErrors.Wrap(err, dErrors.CodeNotFound, op+": account not found on ledger")
		case http.StatusGatewayTimeout:
			return dErrors.Wrap(err, dErrors.CodeTimeout, op+": horizon timed out")
		default:
			return dErrors.Wrap(err, dErrors.CodeLedgerUnavailable, fmt.Sprintf("%s: horizon error (%d)", op, herr.Problem.Status))
		}
	}
	return dErrors.Wrap(err, dErrors.CodeLedgerUnavailable, op+": horizon unreachable")
}

// mapSubmitError splits submission failures into explicit rejections, which
// must not be retried, and ambiguous outcomes, where the transaction may
// already be committed.
func mapSubmitError(err error) error {
	if herr := horizonclient.GetError(err); herr != nil {
		switch {
		case herr.Problem.Status == http.StatusGatewayTimeout:
			// Horizon stopped waiting for inclusion; the transaction can
			// still make it into a ledger within its timebounds.
			return dErrors.Wrap(err, dErrors.CodeAmbiguousOutcome, "submission timed out; outcome unknown")
		case herr.Problem.Status >= http.StatusInternalServerError:
			return dErrors.Wrap(err, dErrors.CodeAmbiguousOutcome, "horizon failed during submission; outcome unknown")
		default:
			detail := "transaction rejected by ledger"
			if codes, codesErr := herr.ResultCodes(); codesErr == nil && codes != nil && codes.TransactionCode != "" {
				detail = "transaction rejected by ledger: " + codes.TransactionCode
			}
			return dErrors.Wrap(err, dErrors.CodeLedgerRejected, detail)
		}
	}
	// Transport failure after the envelope may have left: outcome unknown.
	return dErrors.Wrap(err, dErrors.CodeAmbiguousOutcome, "network failure during submission; outcome unknown")
}
