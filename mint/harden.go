package mint

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// seedInit is the djb2 initial value.
const seedInit = 5381

// suffixDigitAlphabet is the digit alphabet used for the hardening suffix.
// It deliberately excludes "0" and "1" (ambiguous with "O" and "l"/"I").
const suffixDigitAlphabet = "23456789"

// NormalizePhrase canonicalizes a secret phrase: surrounding whitespace is
// removed, the text is folded to lowercase, and internal whitespace runs are
// collapsed to a single space. Normalizing twice is idempotent.
func NormalizePhrase(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// Seed computes the 32-bit hardening seed of a normalized phrase using a
// djb2-style rolling hash: starting from 5381, each code point folds in as
//
//	seed = (seed × 33) XOR code
//
// with uint32 wraparound at every step. Seed is a pure function of the
// normalized phrase; two raw phrases that normalize identically always share
// a seed.
func Seed(normalized string) uint32 {
	seed := uint32(seedInit)
	for _, r := range normalized {
		seed = seed*33 ^ uint32(r)
	}
	return seed
}

// HardenPhrase normalizes raw and deterministically transforms it so the
// value entering key derivation carries mixed case, a digit, and symbols:
//
//   - With two or more words, the word at index seed mod wordCount is
//     uppercased, and the word at index ⌊seed/wordCount⌋ mod wordCount is
//     also uppercased when that index differs from the first. The two
//     indexes can coincide (including for two-word phrases), in which case
//     only one word changes — observable, deterministic behavior that is
//     kept as-is for compatibility.
//   - A single-word phrase gets only its first character uppercased.
//   - A 3-character suffix is appended with no separator: symbol, digit,
//     symbol, selected from disjoint bit windows of the seed
//     (symbolAlphabet[seed mod 8], suffixDigitAlphabet[(seed>>4) mod 8],
//     symbolAlphabet[(seed>>8) mod 8]).
//
// A phrase that is empty after normalization hardens to the empty string;
// callers must reject it before key derivation.
//
// HardenPhrase adds fixed, guessable structure — it is not a strength
// amplifier.
func HardenPhrase(raw string) string {
	normalized := NormalizePhrase(raw)
	if normalized == "" {
		return ""
	}
	seed := Seed(normalized)

	words := strings.Split(normalized, " ")
	n := uint32(len(words))
	if n >= 2 {
		first := seed % n
		words[first] = strings.ToUpper(words[first])
		second := (seed / n) % n
		if second != first {
			words[second] = strings.ToUpper(words[second])
		}
	} else {
		words[0] = upperFirst(words[0])
	}

	suffix := []byte{
		SymbolAlphabet[seed%8],
		suffixDigitAlphabet[(seed>>4)%8],
		SymbolAlphabet[(seed>>8)%8],
	}
	return strings.Join(words, " ") + string(suffix)
}

// upperFirst uppercases the first rune of w.
func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
