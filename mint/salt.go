package mint

// SaltPrefix is the fixed domain-separation prefix of every salt. It is part
// of the cross-implementation compatibility surface and must never change.
const SaltPrefix = "password-mint::v1::"

// BuildSalt assembles the context-bound salt for a normalized site and a
// rotation version:
//
//	"password-mint::v1::" + site + "::" + version
//
// The salt is not secret; its job is domain separation, so that passwords
// derived for different sites or versions are unrelated even under an
// identical phrase. The version is taken verbatim — a non-numeric or empty
// version still produces a syntactically valid, distinct salt. Salt
// uniqueness, not semantic correctness, is the contract.
func BuildSalt(site, version string) string {
	return SaltPrefix + site + "::" + version
}
