package mint

import "strings"

// siteDelimiters are applied in this exact order when reducing a site string
// to a bare hostname. The order is part of the compatibility surface.
var siteDelimiters = []string{"/", "?", "#", ":"}

// NormalizeSite canonicalizes a free-form site or URL string to a stable
// identifier.
//
// The transform is purely lexical — no network resolution and no
// IDNA/punycode handling:
//
//  1. Trim surrounding whitespace and lowercase.
//  2. Strip one leading "http://" or "https://" scheme.
//  3. Strip a leading "www." prefix.
//  4. If the remainder contains "." or "/", cut at the first "/", then "?",
//     then "#", then ":" — yielding a bare hostname with any path, query,
//     fragment, and port removed.
//
// A string containing neither "." nor "/" is treated as an already-canonical
// bare app name and returned as-is (so "MyBank" → "mybank", and
// "localhost:8080" keeps its port). Any input is accepted; degenerate input
// such as "https://" produces an empty result, which the caller must treat
// as a validation failure before derivation.
func NormalizeSite(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	if strings.HasPrefix(s, "https://") {
		s = s[len("https://"):]
	} else if strings.HasPrefix(s, "http://") {
		s = s[len("http://"):]
	}
	s = strings.TrimPrefix(s, "www.")

	if !strings.ContainsAny(s, "./") {
		return s
	}
	for _, d := range siteDelimiters {
		if i := strings.Index(s, d); i >= 0 {
			s = s[:i]
		}
	}
	return s
}
