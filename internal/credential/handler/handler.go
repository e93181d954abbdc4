package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"credchain/internal/credential/models"
	"credchain/internal/platform/middleware"
	"credchain/pkg/platform/httputil"
)

// Service defines the credential operations the HTTP layer delegates to.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Issue(ctx context.Context, cmd models.IssueCommand) (*models.IssueResult, error)
	Verify(ctx context.Context, walletAddress string) ([]models.CredentialView, error)
}

// Handler is the thin HTTP layer over the credential service. Transport
// concerns stay here; issuance and verification semantics live in the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/issue-credential", h.HandleIssueCredential)
	r.Get("/verify/{walletAddress}", h.HandleVerifyWallet)
}

// HandleIssueCredential issues one credential as a ledger asset transfer.
func (h *Handler) HandleIssueCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[IssueCredentialRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Issue(ctx, req.ToCommand())
	if err != nil {
		h.logger.ErrorContext(ctx, "issue credential failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &IssueCredentialResponse{
		Status:          "issued",
		TransactionHash: result.TransactionHash,
		AssetCode:       result.AssetCode,
		ContentID:       result.ContentID,
	})
}

// HandleVerifyWallet lists the credential assets held by a wallet.
func (h *Handler) HandleVerifyWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	wallet := chi.URLParam(r, "walletAddress")

	credentials, err := h.service.Verify(ctx, wallet)
	if err != nil {
		h.logger.ErrorContext(ctx, "verify wallet failed", "error", err, "request_id", requestID, "wallet", wallet)
		httputil.WriteError(w, err)
		return
	}
	if credentials == nil {
		credentials = []models.CredentialView{}
	}

	httputil.WriteJSON(w, http.StatusOK, &VerifyResponse{
		Wallet:      wallet,
		Credentials: credentials,
	})
}
