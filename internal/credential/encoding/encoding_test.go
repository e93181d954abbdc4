package encoding

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestAssetCode(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"strips punctuation and truncates", "Bachelor of Science!!", "BACHELOROFSC"},
		{"uppercases and joins words", "Go Level 1", "GOLEVEL1"},
		{"already clean", "RUST2024", "RUST2024"},
		{"keeps digits", "CS-101 (Honors)", "CS101HONORS"},
		{"no alphanumerics yields empty", "!!!", ""},
		{"empty input yields empty", "", ""},
		{"whitespace only yields empty", "   \t  ", ""},
		{"non-ascii letters removed", "Café Señor", "CAFSEOR"},
		{"truncates exactly at twelve", "ABCDEFGHIJKLMNOP", "ABCDEFGHIJKL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssetCode(tt.title))
		})
	}
}

func TestAssetCodeProperties(t *testing.T) {
	titles := []string{
		"Bachelor of Science!!", "go level 1", "ÀÉÎÕÜ", "12345678901234567890",
		"  spaced   out  ", "mIxEd CaSe TiTlE", "§±!@#$%^&*()",
	}

	for _, title := range titles {
		code := AssetCode(title)

		assert.LessOrEqual(t, len(code), MaxAssetCodeLength, "title %q", title)
		for _, r := range code {
			inRange := (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			assert.True(t, inRange, "title %q produced illegal rune %q", title, r)
		}

		assert.Equal(t, code, AssetCode(title), "encoding must be deterministic for %q", title)
	}
}

func TestMemo(t *testing.T) {
	t.Run("short ids pass through", func(t *testing.T) {
		assert.Equal(t, "Qm123", Memo("Qm123"))
	})

	t.Run("exactly 28 bytes passes through", func(t *testing.T) {
		id := strings.Repeat("a", 28)
		assert.Equal(t, id, Memo(id))
	})

	t.Run("long ids truncate to a byte-exact prefix", func(t *testing.T) {
		id := "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
		memo := Memo(id)
		assert.Equal(t, id[:28], memo)
		assert.LessOrEqual(t, len(memo), MaxMemoBytes)
	})

	t.Run("never splits a multi-byte rune", func(t *testing.T) {
		// 13 two-byte runes = 26 bytes; one more lands across the boundary.
		id := strings.Repeat("é", 20)
		memo := Memo(id)
		assert.LessOrEqual(t, len(memo), MaxMemoBytes)
		assert.True(t, utf8.ValidString(memo), "truncation produced an invalid encoding")
		assert.True(t, strings.HasPrefix(id, memo))
	})
}
