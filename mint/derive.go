package mint

import "fmt"

// Password length bounds accepted by [Derive].
const (
	// MinLength is the shortest derivable password.
	MinLength = 12
	// MaxLength is the longest derivable password.
	MaxLength = 64
)

// Options is the complete, explicit configuration of one derivation
// request. There is no hidden state: two Options values that compare equal
// always derive the same password.
type Options struct {
	// Phrase is the user's secret text. It is normalized and hardened before
	// entering key derivation and is never logged or retained.
	Phrase string

	// Site is a free-form site identifier or URL; it is canonicalized with
	// [NormalizeSite].
	Site string

	// Version is the rotation version. It is taken verbatim into the salt;
	// bumping it rotates the derived password without changing the phrase.
	Version string

	// Length is the requested password length, in [MinLength, MaxLength].
	Length int

	// Level selects the PBKDF2 iteration count.
	Level SecurityLevel

	// Classes selects the character pools. Every enabled, non-empty pool
	// contributes at least one character to the output.
	Classes Classes

	// ExcludeAmbiguous removes O, 0, I, l, 1 from every pool.
	ExcludeAmbiguous bool

	// ExcludeProblematic removes quotes, space, backslash, and backtick
	// from every pool.
	ExcludeProblematic bool

	// Deriver overrides the key-derivation implementation. Leave nil for
	// [PBKDF2Deriver], the production primitive. Overriding exists for
	// testing and for callers embedding an audited external primitive.
	Deriver Deriver
}

// DefaultOptions returns Options for the common case: 16 characters, all
// character classes, no exclusions, standard security level.
func DefaultOptions(phrase, site, version string) Options {
	return Options{
		Phrase:  phrase,
		Site:    site,
		Version: version,
		Length:  16,
		Level:   LevelStandard,
		Classes: AllClasses(),
	}
}

// Derive runs the full derivation pipeline and returns the password.
//
// Either a complete, length-correct password is returned or an error is —
// there is no partial or degraded success. All validation happens before
// the (expensive) key-derivation call, and all errors are terminal for the
// request: retrying without changing the inputs cannot succeed.
//
// Derive is a pure function of opts. It holds no state, takes no locks, and
// is safe to call from any number of goroutines.
func Derive(opts Options) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", fmt.Errorf("%w: %d is outside [%d, %d]",
			ErrInvalidLength, opts.Length, MinLength, MaxLength)
	}
	iterations, err := opts.Level.Iterations()
	if err != nil {
		return "", err
	}

	hardened := HardenPhrase(opts.Phrase)
	site := NormalizeSite(opts.Site)
	if hardened == "" || site == "" {
		return "", ErrEmptyInput
	}

	filter := PoolFilter{
		ExcludeAmbiguous:   opts.ExcludeAmbiguous,
		ExcludeProblematic: opts.ExcludeProblematic,
	}
	pools := poolsFor(opts.Classes, filter)
	if err := checkPools(pools, opts.Length); err != nil {
		return "", err
	}

	deriver := opts.Deriver
	if deriver == nil {
		deriver = PBKDF2Deriver{}
	}
	salt := BuildSalt(site, opts.Version)
	derived, err := deriver.Derive([]byte(hardened), []byte(salt), iterations, DerivedLen)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPrimitiveUnavailable, err)
	}
	if len(derived) != DerivedLen {
		return "", fmt.Errorf("%w: deriver returned %d bytes, want %d",
			ErrPrimitiveUnavailable, len(derived), DerivedLen)
	}

	return assembleFrom(derived, opts.Length, pools), nil
}
