// Package service orchestrates credential issuance and verification.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"credchain/internal/credential/encoding"
	"credchain/internal/credential/metrics"
	"credchain/internal/credential/models"
	"credchain/internal/ledger"
	"credchain/internal/metadata"
	"credchain/internal/platform/tracing"
	dErrors "credchain/pkg/domain-errors"
	"credchain/pkg/platform/circuit"
	"credchain/pkg/platform/retry"
	syncutil "credchain/pkg/platform/sync"
)

// Service issues credentials as ledger assets and verifies wallet holdings.
//
// Issuance holds a per-issuer-account lock across load-sequence and submit so
// concurrent requests consume distinct sequence numbers instead of racing to
// a ledger-side sequence conflict.
type Service struct {
	ledger        ledger.Client
	issuerAddress string
	store         metadata.Store

	locks      *syncutil.KeyedMutex
	breaker    *circuit.Breaker
	readPolicy retry.Policy

	metrics *metrics.Metrics
	tracer  tracing.Tracer
	logger  *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger configures a logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics configures Prometheus metrics for the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer configures a tracer for the service.
func WithTracer(t tracing.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithReadRetryPolicy overrides the retry policy for transient ledger reads.
func WithReadRetryPolicy(p retry.Policy) Option {
	return func(s *Service) {
		s.readPolicy = p
	}
}

// WithBreaker overrides the circuit breaker guarding the verification path.
func WithBreaker(b *circuit.Breaker) Option {
	return func(s *Service) {
		s.breaker = b
	}
}

// New creates a credential service. The issuer address scopes asset identity:
// every credential asset this service issues is (assetCode, issuerAddress).
func New(ledgerClient ledger.Client, issuerAddress string, store metadata.Store, opts ...Option) *Service {
	s := &Service{
		ledger:        ledgerClient,
		issuerAddress: issuerAddress,
		store:         store,
		locks:         syncutil.NewKeyedMutex(),
		breaker:       circuit.New("ledger-reads"),
		readPolicy:    retry.DefaultPolicy,
		tracer:        tracing.Noop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// transientRead reports whether a ledger read failure is worth retrying.
// Rejections, missing accounts, and validation failures are final.
func transientRead(err error) bool {
	return dErrors.HasCode(err, dErrors.CodeLedgerUnavailable)
}

// Issue turns one credential request into a signed single-payment transaction
// transferring 1 unit of the title-derived asset to the recipient wallet,
// with the metadata content id carried in the transaction memo.
//
// Fail-fast order matters: validation, then metadata storage, then the ledger
// mutation. A storage failure therefore never leaves partial on-chain state.
// An ambiguous submission is returned as-is and never retried here — the
// transaction may already be committed, and only the caller can decide
// whether to reconcile or re-issue.
func (s *Service) Issue(ctx context.Context, cmd models.IssueCommand) (*models.IssueResult, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "credential.issue",
		attribute.String("recipient_wallet", cmd.RecipientWallet))

	result, err := s.issue(ctx, cmd)
	span.End(err)

	if s.metrics != nil {
		if err != nil {
			s.metrics.IncrementIssueFailure(string(dErrors.CodeOf(err)))
		} else {
			s.metrics.IncrementIssued()
			s.metrics.ObserveIssue(start)
		}
	}
	return result, err
}

func (s *Service) issue(ctx context.Context, cmd models.IssueCommand) (*models.IssueResult, error) {
	if !ledger.IsValidAccountID(cmd.RecipientWallet) {
		return nil, dErrors.New(dErrors.CodeValidation, "recipient_wallet is not a valid ledger account id")
	}

	assetCode := encoding.AssetCode(cmd.Title)
	if assetCode == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "credential_title contains no characters usable in an asset code")
	}

	contentID, err := s.store.Put(ctx, metadata.Metadata{
		Recipient:   cmd.RecipientName,
		Credential:  cmd.Title,
		Description: cmd.Description,
		Proof:       cmd.ProofURL,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorageUnavailable, "store credential metadata")
	}

	memo := encoding.Memo(contentID)

	// Critical section: the sequence number read here must be the one the
	// submitted transaction builds on.
	s.locks.Lock(s.issuerAddress)
	defer s.locks.Unlock(s.issuerAddress)

	var account *ledger.Account
	err = retry.Do(ctx, s.readPolicy, transientRead, func(ctx context.Context) error {
		var loadErr error
		account, loadErr = s.ledger.LoadAccount(ctx, s.issuerAddress)
		return loadErr
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeLedgerUnavailable, "load issuer account")
	}

	submitStart := time.Now()
	result, err := s.ledger.SubmitPayment(ctx, ledger.Payment{
		Sequence:    account.Sequence,
		Destination: cmd.RecipientWallet,
		AssetCode:   assetCode,
		Amount:      "1",
		MemoText:    memo,
	})
	if s.metrics != nil {
		s.metrics.ObserveSubmit(submitStart)
	}
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "issuance submission failed",
				"error", err,
				"asset_code", assetCode,
				"error_code", string(dErrors.CodeOf(err)),
			)
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "credential issued",
			"asset_code", assetCode,
			"transaction_hash", result.Hash,
			"recipient_wallet", cmd.RecipientWallet,
		)
	}

	return &models.IssueResult{
		TransactionHash: result.Hash,
		AssetCode:       assetCode,
		ContentID:       contentID,
	}, nil
}

// Verify lists the wallet's ledger balances and maps every non-native asset
// to a credential view. The credential title is the asset code itself; see
// models.CredentialView for what Verified does and does not claim.
func (s *Service) Verify(ctx context.Context, walletAddress string) ([]models.CredentialView, error) {
	ctx, span := s.tracer.Start(ctx, "credential.verify",
		attribute.String("wallet", walletAddress))
	views, err := s.verify(ctx, walletAddress)
	span.End(err)

	if err == nil && s.metrics != nil {
		s.metrics.IncrementVerified()
	}
	return views, err
}

func (s *Service) verify(ctx context.Context, walletAddress string) ([]models.CredentialView, error) {
	if !ledger.IsValidAccountID(walletAddress) {
		return nil, dErrors.New(dErrors.CodeValidation, "wallet address is not a valid ledger account id")
	}

	if !s.breaker.Allow() {
		return nil, dErrors.New(dErrors.CodeLedgerUnavailable, "ledger reads suspended; try again shortly")
	}

	var balances []ledger.Balance
	err := retry.Do(ctx, s.readPolicy, transientRead, func(ctx context.Context) error {
		var listErr error
		balances, listErr = s.ledger.ListBalances(ctx, walletAddress)
		return listErr
	})
	if err != nil {
		if transientRead(err) {
			if opened := s.breaker.RecordFailure(); opened && s.logger != nil {
				s.logger.WarnContext(ctx, "ledger read circuit opened", "breaker", s.breaker.Name())
			}
		}
		return nil, err
	}
	s.breaker.RecordSuccess()

	views := make([]models.CredentialView, 0, len(balances))
	for _, b := range balances {
		if b.Native() {
			continue
		}
		views = append(views, models.CredentialView{
			Title:     b.Code,
			Issuer:    b.Issuer,
			IssueDate: "On-chain",
			ProofURL:  "Stored in memo / IPFS",
			Verified:  true,
		})
	}
	return views, nil
}
