package mint_test

import (
	"testing"

	"github.com/fareedkhan-27/password-mint/mint"
)

func TestBuildSalt(t *testing.T) {
	tests := []struct {
		name    string
		site    string
		version string
		want    string
	}{
		{"typical", "github.com", "1", "password-mint::v1::github.com::1"},
		{"version bump", "github.com", "2", "password-mint::v1::github.com::2"},
		// Version is taken verbatim: uniqueness, not semantics, is the contract.
		{"non-numeric version", "example.com", "spring", "password-mint::v1::example.com::spring"},
		{"empty version", "example.com", "", "password-mint::v1::example.com::"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mint.BuildSalt(tt.site, tt.version); got != tt.want {
				t.Errorf("BuildSalt(%q, %q) = %q, want %q", tt.site, tt.version, got, tt.want)
			}
		})
	}
}

func TestBuildSalt_DistinctContexts(t *testing.T) {
	// Domain separation: different site or version must never collide.
	salts := map[string]string{
		"a/1": mint.BuildSalt("a.com", "1"),
		"a/2": mint.BuildSalt("a.com", "2"),
		"b/1": mint.BuildSalt("b.com", "1"),
	}
	seen := make(map[string]string)
	for ctx, salt := range salts {
		if prev, dup := seen[salt]; dup {
			t.Errorf("salt collision between %s and %s: %q", ctx, prev, salt)
		}
		seen[salt] = ctx
	}
}
