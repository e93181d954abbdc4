package models

// IssueCommand carries one issuance request into the service layer.
// It is transient: nothing about it is persisted by this system.
type IssueCommand struct {
	RecipientName   string
	RecipientWallet string
	Title           string
	Description     string
	ProofURL        string
}

// IssueResult is the outcome of a successful issuance.
type IssueResult struct {
	TransactionHash string
	AssetCode       string
	ContentID       string
}

// CredentialView is one credential reconstructed from a wallet's ledger state.
//
// Verified means "this asset appears in the wallet's balance list as reported
// by the ledger" — not that the memo-linked metadata was independently
// validated. Callers needing strict verification must fetch the issuing
// transaction's memo and resolve it against the metadata store themselves.
type CredentialView struct {
	Title     string `json:"title"`
	Issuer    string `json:"issuer"`
	IssueDate string `json:"issueDate"`
	ProofURL  string `json:"proofUrl"`
	Verified  bool   `json:"verified"`
}
