package mint_test

import (
	"strings"
	"testing"

	"github.com/fareedkhan-27/password-mint/mint"
)

// ──────────────────────────────────────────────────────────────────────────────
// NormalizePhrase
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizePhrase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already normal", "my iphone purchase", "my iphone purchase"},
		{"mixed case and runs", "  My   IPHONE  purchase ", "my iphone purchase"},
		{"tabs and newlines collapse", "a\t b\n\nc", "a b c"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mint.NormalizePhrase(tt.in); got != tt.want {
				t.Errorf("NormalizePhrase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePhrase_Idempotent(t *testing.T) {
	for _, in := range []string{"  My   IPHONE  purchase ", "a\t b", "single", ""} {
		once := mint.NormalizePhrase(in)
		if twice := mint.NormalizePhrase(once); twice != once {
			t.Errorf("NormalizePhrase not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Seed
// ──────────────────────────────────────────────────────────────────────────────

func TestSeed_KnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"my iphone purchase", 4218556431},
		{"hello", 178056679},
		{"alpha beta", 2233045123},
		{"correct horse battery staple", 170239594},
		{"", 5381}, // initial value, nothing folded in
	}
	for _, tt := range tests {
		if got := mint.Seed(tt.in); got != tt.want {
			t.Errorf("Seed(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// HardenPhrase
// ──────────────────────────────────────────────────────────────────────────────

func TestHardenPhrase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		// seed 4218556431 selects words 0 and 1 and suffix "*2!".
		{"three words", "my iphone purchase", "MY IPHONE purchase*2!"},
		{"single word capitalizes first char only", "hello", "Hello*8^"},
		// seed 2233045123: both index formulas land on word 1, so only one
		// word is uppercased even though the phrase has two words.
		{"two words with coinciding indexes", "alpha beta", "alpha BETA$2!"},
		{"four words", "one two three four", "one TWO three FOUR^8#"},
		{"four words with coinciding indexes", "correct horse battery staple", "correct horse BATTERY staple#8&"},
		{"empty hardens to empty", "", ""},
		{"whitespace hardens to empty", "   \t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mint.HardenPhrase(tt.in); got != tt.want {
				t.Errorf("HardenPhrase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHardenPhrase_NormalizationInvariance(t *testing.T) {
	// Any two raw phrases that normalize identically must harden identically.
	variants := []string{
		"my iphone purchase",
		"  My   IPHONE  purchase ",
		"MY\tIPHONE\nPURCHASE",
	}
	want := mint.HardenPhrase(variants[0])
	for _, v := range variants[1:] {
		if got := mint.HardenPhrase(v); got != want {
			t.Errorf("HardenPhrase(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestHardenPhrase_SuffixShape(t *testing.T) {
	// The last three characters are always symbol, digit, symbol, with the
	// digit drawn from 2-9.
	for _, phrase := range []string{"a", "alpha beta", "x y z", "many words in this phrase"} {
		h := mint.HardenPhrase(phrase)
		if len(h) < 3 {
			t.Fatalf("HardenPhrase(%q) = %q, too short", phrase, h)
		}
		suffix := h[len(h)-3:]
		if !strings.ContainsRune(mint.SymbolAlphabet[:8], rune(suffix[0])) {
			t.Errorf("suffix symbol 1 of %q = %q, not in first 8 symbols", phrase, suffix[0])
		}
		if suffix[1] < '2' || suffix[1] > '9' {
			t.Errorf("suffix digit of %q = %q, want 2-9", phrase, suffix[1])
		}
		if !strings.ContainsRune(mint.SymbolAlphabet[:8], rune(suffix[2])) {
			t.Errorf("suffix symbol 2 of %q = %q, not in first 8 symbols", phrase, suffix[2])
		}
	}
}
