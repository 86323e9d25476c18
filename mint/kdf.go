package mint

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// SecurityLevel selects the PBKDF2 iteration count.
// Using a named string type prevents accidental confusion with plain strings.
type SecurityLevel string

const (
	// LevelStandard selects 210,000 iterations (OWASP baseline for
	// PBKDF2-HMAC-SHA256).
	LevelStandard SecurityLevel = "standard"
	// LevelHigh selects 400,000 iterations for slower, stronger derivation.
	LevelHigh SecurityLevel = "high"
)

const (
	// IterationsStandard is the iteration count bound to [LevelStandard].
	IterationsStandard = 210_000
	// IterationsHigh is the iteration count bound to [LevelHigh].
	IterationsHigh = 400_000

	// DerivedLen is the fixed derived-byte length consumed by [Assemble].
	// The entropy budget of a derivation is always 64 bytes, regardless of
	// the requested password length.
	DerivedLen = 64
)

// Iterations returns the PBKDF2 iteration count bound to the level, or
// [ErrUnknownSecurityLevel] for anything other than the two published
// levels. The bindings are part of the compatibility surface: every
// implementation must honor exactly these counts.
func (l SecurityLevel) Iterations() (int, error) {
	switch l {
	case LevelStandard:
		return IterationsStandard, nil
	case LevelHigh:
		return IterationsHigh, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSecurityLevel, string(l))
	}
}

// Deriver is the key-derivation contract: stretch secret and salt into
// exactly keyLen bytes, deterministically for fixed inputs.
//
// All implementations must be safe for concurrent use by multiple
// goroutines. An implementation whose underlying primitive is missing or
// unsupported must return an error wrapping [ErrPrimitiveUnavailable] —
// never silently substitute a weaker or different algorithm.
type Deriver interface {
	// Derive returns keyLen bytes derived from secret and salt with the
	// given iteration count.
	Derive(secret, salt []byte, iterations, keyLen int) ([]byte, error)
}

// PBKDF2Deriver derives bytes with PBKDF2-HMAC-SHA256, the one fixed
// algorithm of the derivation scheme. It is stateless and safe for
// concurrent use.
//
// The hash function is always SHA-256; there is deliberately no way to
// configure it. Reproducibility of one fixed scheme, not algorithmic
// agility, is the design goal.
type PBKDF2Deriver struct{}

// Ensure the production deriver satisfies the contract.
var _ Deriver = PBKDF2Deriver{}

// Derive runs PBKDF2-HMAC-SHA256 over secret and salt. It never fails:
// the primitive ships with the binary via golang.org/x/crypto.
func (PBKDF2Deriver) Derive(secret, salt []byte, iterations, keyLen int) ([]byte, error) {
	return pbkdf2.Key(secret, salt, iterations, keyLen, sha256.New), nil
}
