package handler

import (
	"strings"

	"credchain/internal/credential/models"
	"credchain/pkg/platform/validation"
)

// HTTP request DTOs - contain JSON tags for API serialization.
// These are converted to service commands before processing.

type IssueCredentialRequest struct {
	RecipientName   string `json:"recipientName" validate:"required,notblank"`
	RecipientWallet string `json:"recipientWallet" validate:"required,notblank"`
	CredentialTitle string `json:"credentialTitle" validate:"required,notblank"`
	Description     string `json:"description" validate:"required,notblank"`
	ProofURL        string `json:"proofUrl" validate:"required,url"`
}

// Normalize trims surrounding whitespace for stable validation and encoding.
func (r *IssueCredentialRequest) Normalize() {
	if r == nil {
		return
	}
	r.RecipientName = strings.TrimSpace(r.RecipientName)
	r.RecipientWallet = strings.TrimSpace(r.RecipientWallet)
	r.CredentialTitle = strings.TrimSpace(r.CredentialTitle)
	r.Description = strings.TrimSpace(r.Description)
	r.ProofURL = strings.TrimSpace(r.ProofURL)
}

// Validate checks request shape only; ledger-level validation (wallet strkey,
// derivable asset code) belongs to the service.
func (r *IssueCredentialRequest) Validate() error {
	return validation.Validate(r)
}

// ToCommand converts the DTO to a service command.
func (r *IssueCredentialRequest) ToCommand() models.IssueCommand {
	return models.IssueCommand{
		RecipientName:   r.RecipientName,
		RecipientWallet: r.RecipientWallet,
		Title:           r.CredentialTitle,
		Description:     r.Description,
		ProofURL:        r.ProofURL,
	}
}
