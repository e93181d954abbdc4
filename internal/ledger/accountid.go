package ledger

import "github.com/stellar/go/strkey"

// IsValidAccountID reports whether s is a well-formed ledger account id
// (an ed25519 public key in strkey form). Format check only; the account
// may still not exist on the ledger.
func IsValidAccountID(s string) bool {
	return strkey.IsValidEd25519PublicKey(s)
}
