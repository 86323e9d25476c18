package mint

import "errors"

// Sentinel errors returned by derivation operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := mint.Derive(opts)
//	if errors.Is(err, mint.ErrLengthTooShortForSelectedTypes) {
//	    // ask the user for a longer password or fewer classes
//	}
//
// All errors are terminal for the request: nothing is retried and no partial
// password is ever returned.
var (
	// ErrEmptyInput is returned when the phrase or the site is blank after
	// normalization. Derivation never reaches the KDF in this case.
	ErrEmptyInput = errors.New("mint: phrase or site is empty after normalization")

	// ErrNoCharacterTypesSelected is returned when every character class is
	// disabled, leaving an empty combined pool.
	ErrNoCharacterTypesSelected = errors.New("mint: no character types selected")

	// ErrLengthTooShortForSelectedTypes is returned when the requested length
	// cannot fit one mandatory character per enabled class.
	ErrLengthTooShortForSelectedTypes = errors.New("mint: length too short for selected character types")

	// ErrInvalidLength is returned when the requested length falls outside
	// [MinLength, MaxLength].
	ErrInvalidLength = errors.New("mint: invalid password length")

	// ErrUnknownSecurityLevel is returned when a [SecurityLevel] has no
	// registered iteration count.
	ErrUnknownSecurityLevel = errors.New("mint: unknown security level")

	// ErrPrimitiveUnavailable is returned when the key-derivation primitive is
	// missing or misbehaves. Implementations must surface this error rather
	// than silently falling back to a weaker or different algorithm.
	ErrPrimitiveUnavailable = errors.New("mint: key-derivation primitive unavailable")
)
