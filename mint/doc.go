// Package mint derives reproducible, high-entropy site passwords from three
// low-entropy, human-supplied inputs: a secret phrase, a site identifier, and
// a rotation version. Nothing is persisted and no state is retained between
// calls — the same inputs always produce the same password, on any machine.
//
// # Pipeline
//
// A derivation runs five pure stages, strictly left to right:
//
//  1. [NormalizeSite] canonicalizes a free-form site/URL string to a stable
//     identifier ("https://www.GitHub.com/settings" → "github.com").
//  2. [HardenPhrase] normalizes the secret phrase and deterministically adds
//     superficial complexity (seeded word capitalization plus a 3-character
//     suffix) before it enters key derivation.
//  3. [BuildSalt] assembles the domain-separated salt
//     "password-mint::v1::<site>::<version>".
//  4. A [Deriver] stretches the hardened phrase with PBKDF2-HMAC-SHA256 into
//     64 derived bytes ([PBKDF2Deriver] is the production implementation).
//  5. [Assemble] spends those bytes to build a password of the requested
//     length that contains at least one character from every enabled class.
//
// [Derive] wires the stages together behind a single [Options] value.
//
// # Compatibility surface
//
// Every constant and tie-break rule in this package is part of a fixed
// cross-implementation contract: the djb2-style seed, the suffix bit
// windows, the salt prefix, the pool orderings, the big-endian two-byte
// word construction, the modulo-biased index mapping, and the
// mandatory-fill-shuffle phase order. Changing any of them changes every
// derived password. The modulo bias is documented and accepted; it is
// negligible for pool sizes under ~100 against a 512-bit derived sequence.
//
// # What hardening is not
//
// The phrase-hardening transform adds fixed, guessable structure so that the
// value entering the KDF satisfies superficial complexity rules. It is not a
// strength amplifier and must never be presented as compensating for a
// low-entropy phrase.
package mint
