// Package encoding derives ledger-legal identifiers from free-form input.
// Both functions are pure and deterministic: the same title always yields the
// same asset code, which is what lets verification recover a credential title
// from on-chain state alone.
package encoding

import "strings"

// MaxAssetCodeLength is the ledger's limit for alphanumeric-12 asset codes.
const MaxAssetCodeLength = 12

// MaxMemoBytes is the ledger's limit for text memos, in bytes.
const MaxMemoBytes = 28

// AssetCode derives a ledger asset code from a credential title: uppercase,
// every character outside [A-Z0-9] removed, truncated to 12.
//
// The result can be empty when the title contains no alphanumeric characters;
// callers must reject that before submission because an empty code is not a
// valid ledger asset. Distinct titles can normalize to the same code; asset
// identity on the ledger is (issuer, code), so such collisions re-issue more
// units of the same asset rather than failing.
func AssetCode(title string) string {
	var b strings.Builder
	b.Grow(MaxAssetCodeLength)
	for _, r := range strings.ToUpper(title) {
		inRange := (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !inRange {
			continue
		}
		b.WriteRune(r)
		if b.Len() == MaxAssetCodeLength {
			break
		}
	}
	return b.String()
}

// Memo derives a transaction memo from a content id: the first 28 bytes,
// truncated on a complete-rune boundary so a multi-byte character is never
// split into an invalid encoding.
//
// The truncation is lossy; verification cannot reconstruct an arbitrary
// content id from the memo. Content-hash ids are unique within 28 bytes,
// which is the scheme the issuer controls.
func Memo(contentID string) string {
	if len(contentID) <= MaxMemoBytes {
		return contentID
	}
	cut := MaxMemoBytes
	for cut > 0 && !isRuneStart(contentID[cut]) {
		cut--
	}
	return contentID[:cut]
}

// isRuneStart reports whether b is the first byte of a UTF-8 sequence.
func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
