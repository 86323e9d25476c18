package mint_test

import (
	"testing"

	"github.com/fareedkhan-27/password-mint/mint"
)

func TestNormalizeSite(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full url with path", "https://www.GitHub.com/settings", "github.com"},
		{"uppercase host", "GITHUB.COM", "github.com"},
		{"bare host", "github.com", "github.com"},
		{"http scheme", "http://example.com", "example.com"},
		{"www only", "www.example.com/", "example.com"},
		{"port stripped", "example.com:8443", "example.com"},
		{"query and fragment", "  Sub.Domain.Example.com:8443/path?q=1#frag ", "sub.domain.example.com"},
		{"bare app name kept verbatim", "MyBank", "mybank"},
		{"no dot or slash keeps port", "localhost:8080", "localhost:8080"},
		{"scheme only degenerates to empty", "https://", ""},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
		{"scheme stripped once", "https://http.example.com", "http.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mint.NormalizeSite(tt.in); got != tt.want {
				t.Errorf("NormalizeSite(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSite_Idempotent(t *testing.T) {
	for _, in := range []string{
		"https://www.GitHub.com/settings",
		"localhost:8080",
		"myapp",
		"example.com",
	} {
		once := mint.NormalizeSite(in)
		if twice := mint.NormalizeSite(once); twice != once {
			t.Errorf("NormalizeSite not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}
