package mint

import "strings"

// Character pool alphabets. Ordering within each alphabet is fixed and
// significant: the assembler addresses pools by index, so reordering any of
// these changes every derived password.
const (
	// UpperAlphabet is the uppercase character pool.
	UpperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// LowerAlphabet is the lowercase character pool.
	LowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	// DigitAlphabet is the digit character pool.
	DigitAlphabet = "0123456789"
	// SymbolAlphabet is the symbol character pool. It is also the alphabet
	// the phrase-hardening suffix indexes into.
	SymbolAlphabet = "!@#$%^&*()-_=+[]{}|;:,.<>?/"

	// ambiguousChars are visually confusable characters removed from every
	// pool when [Options].ExcludeAmbiguous is set.
	ambiguousChars = "O0Il1"
	// problematicChars are characters that commonly break password fields or
	// shell quoting, removed when [Options].ExcludeProblematic is set.
	problematicChars = "\"' \\`"
)

// Classes selects which character pools participate in a derivation.
// The zero value disables everything; use [AllClasses] for the common case.
type Classes struct {
	Upper  bool
	Lower  bool
	Digit  bool
	Symbol bool
}

// AllClasses returns a Classes value with every pool enabled.
func AllClasses() Classes {
	return Classes{Upper: true, Lower: true, Digit: true, Symbol: true}
}

// None reports whether every class is disabled.
func (c Classes) None() bool {
	return !c.Upper && !c.Lower && !c.Digit && !c.Symbol
}

// PoolFilter holds the optional exclusion switches applied to every pool
// before derivation.
type PoolFilter struct {
	// ExcludeAmbiguous removes O, 0, I, l, and 1.
	ExcludeAmbiguous bool
	// ExcludeProblematic removes double quote, single quote, space,
	// backslash, and backtick.
	ExcludeProblematic bool
}

// filterPool returns pool with the filtered characters removed, preserving
// the original ordering of the survivors.
func filterPool(pool string, f PoolFilter) string {
	if !f.ExcludeAmbiguous && !f.ExcludeProblematic {
		return pool
	}
	var b strings.Builder
	b.Grow(len(pool))
	for i := 0; i < len(pool); i++ {
		ch := pool[i]
		if f.ExcludeAmbiguous && strings.IndexByte(ambiguousChars, ch) >= 0 {
			continue
		}
		if f.ExcludeProblematic && strings.IndexByte(problematicChars, ch) >= 0 {
			continue
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// poolsFor returns the enabled, filtered, non-empty pools in the fixed
// iteration order upper, lower, digits, symbols. That order drives both the
// mandatory-character phase and the concatenation that forms the combined
// pool, so it must never change.
func poolsFor(c Classes, f PoolFilter) []string {
	pools := make([]string, 0, 4)
	add := func(enabled bool, alphabet string) {
		if !enabled {
			return
		}
		if p := filterPool(alphabet, f); p != "" {
			pools = append(pools, p)
		}
	}
	add(c.Upper, UpperAlphabet)
	add(c.Lower, LowerAlphabet)
	add(c.Digit, DigitAlphabet)
	add(c.Symbol, SymbolAlphabet)
	return pools
}
