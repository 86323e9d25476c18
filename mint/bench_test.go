package mint_test

import (
	"testing"

	"github.com/fareedkhan-27/password-mint/mint"
)

// ──────────────────────────────────────────────────────────────────────────────
// Derivation benchmarks
// ──────────────────────────────────────────────────────────────────────────────
//
// Note: PBKDF2 dominates and is intentionally slow. BenchmarkAssemble and
// BenchmarkHardenPhrase measure the (cheap) surrounding pipeline on its own.

func BenchmarkDerive_Standard(b *testing.B) {
	opts := mint.DefaultOptions("my iphone purchase", "github.com", "1")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mint.Derive(opts)
	}
}

func BenchmarkDerive_High(b *testing.B) {
	opts := mint.DefaultOptions("my iphone purchase", "github.com", "1")
	opts.Level = mint.LevelHigh
	opts.Length = 12
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mint.Derive(opts)
	}
}

func BenchmarkAssemble(b *testing.B) {
	derived := countingBytes()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mint.Assemble(derived, 32, mint.AllClasses(), mint.PoolFilter{})
	}
}

func BenchmarkHardenPhrase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = mint.HardenPhrase("correct horse battery staple")
	}
}
