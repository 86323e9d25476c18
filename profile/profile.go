// Package profile stores optional per-site generation profiles in a TOML
// file under the user's home directory.
//
// A profile holds only non-secret generation options — length, enabled
// character classes, exclusion switches, security level, and the current
// rotation version. Phrases, passwords, and derived bytes are never written
// here or anywhere else; this file exists so "bump the version for
// github.com" survives between invocations without the tool becoming a
// credential store.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/fareedkhan-27/password-mint/mint"
)

// ErrProfileNotFound is returned by [Store.Delete] when no profile exists
// for the site.
var ErrProfileNotFound = errors.New("profile: no profile for site")

// Profile is the stored generation configuration for one site.
type Profile struct {
	Length             int    `toml:"length"`
	Upper              bool   `toml:"upper"`
	Lower              bool   `toml:"lower"`
	Digits             bool   `toml:"digits"`
	Symbols            bool   `toml:"symbols"`
	ExcludeAmbiguous   bool   `toml:"exclude_ambiguous"`
	ExcludeProblematic bool   `toml:"exclude_problematic"`
	Level              string `toml:"level"`
	Version            string `toml:"version"`
}

// Default returns the profile used when a site has none stored: 16
// characters, every class, no exclusions, standard level, version "1".
func Default() Profile {
	return Profile{
		Length:  16,
		Upper:   true,
		Lower:   true,
		Digits:  true,
		Symbols: true,
		Level:   string(mint.LevelStandard),
		Version: "1",
	}
}

// Options converts the profile into derivation options for the given phrase
// and site.
func (p Profile) Options(phrase, site string) mint.Options {
	return mint.Options{
		Phrase:  phrase,
		Site:    site,
		Version: p.Version,
		Length:  p.Length,
		Level:   mint.SecurityLevel(p.Level),
		Classes: mint.Classes{
			Upper:  p.Upper,
			Lower:  p.Lower,
			Digit:  p.Digits,
			Symbol: p.Symbols,
		},
		ExcludeAmbiguous:   p.ExcludeAmbiguous,
		ExcludeProblematic: p.ExcludeProblematic,
	}
}

// Store is a thread-safe, file-backed profile collection. Profiles are keyed
// by normalized site, so "https://www.GitHub.com/settings" and "github.com"
// share one entry.
type Store struct {
	mu       sync.RWMutex
	filePath string
	profiles map[string]Profile
}

// NewStore creates a profile store rooted at configDir.
// If configDir is empty, it defaults to ~/.password-mint/profiles.toml.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("profile: resolving home directory: %w", err)
		}
		configDir = filepath.Join(home, ".password-mint")
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("profile: creating config directory: %w", err)
	}

	s := &Store{
		filePath: filepath.Join(configDir, "profiles.toml"),
		profiles: make(map[string]Profile),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the profile file. A missing file is not an error; the store
// simply starts empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.profiles = make(map[string]Profile)
			return nil
		}
		return fmt.Errorf("profile: reading %s: %w", s.filePath, err)
	}

	loaded := make(map[string]Profile)
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("profile: parsing %s: %w", s.filePath, err)
	}
	s.profiles = loaded
	return nil
}

// Get returns the stored profile for site (normalized first), or false when
// none exists.
func (s *Store) Get(site string) (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[mint.NormalizeSite(site)]
	return p, ok
}

// Set stores the profile for site (normalized first) and persists
// immediately.
func (s *Store) Set(site string, p Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[mint.NormalizeSite(site)] = p
	return s.save()
}

// Delete removes the profile for site and persists immediately.
// Returns [ErrProfileNotFound] when the site has no stored profile.
func (s *Store) Delete(site string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := mint.NormalizeSite(site)
	if _, ok := s.profiles[key]; !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, key)
	}
	delete(s.profiles, key)
	return s.save()
}

// List returns the stored site keys in sorted order.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sites := make([]string, 0, len(s.profiles))
	for site := range s.profiles {
		sites = append(sites, site)
	}
	sort.Strings(sites)
	return sites
}

// save writes the profiles to the TOML file with restricted permissions.
// Callers must hold the write lock.
func (s *Store) save() error {
	data, err := toml.Marshal(s.profiles)
	if err != nil {
		return fmt.Errorf("profile: encoding: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("profile: writing %s: %w", s.filePath, err)
	}
	return nil
}
