package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fareedkhan-27/password-mint/logger"
	"github.com/fareedkhan-27/password-mint/mint"
	"github.com/fareedkhan-27/password-mint/profile"
	"github.com/fareedkhan-27/password-mint/session"
)

var mintFlags struct {
	version            string
	length             int
	level              string
	noUpper            bool
	noLower            bool
	noDigits           bool
	noSymbols          bool
	excludeAmbiguous   bool
	excludeProblematic bool
	copyToClipboard    bool
	jsonOutput         bool
	stay               bool
	remember           time.Duration
}

var mintCmd = &cobra.Command{
	Use:   "mint [site]",
	Short: "Derive the password for a site",
	Long: `Derives the password for a site from your secret phrase.

The phrase is read from a hidden terminal prompt (or from stdin when the
input is piped) and is never echoed, stored, or logged. A stored profile
for the site supplies defaults; explicit flags win over the profile.

With --stay, the phrase is held in memory for --remember and further sites
can be entered interactively, one per line.`,
	Args: cobra.ExactArgs(1),
	RunE: runMint,
}

func init() {
	f := mintCmd.Flags()
	f.StringVar(&mintFlags.version, "version", "1", "rotation version mixed into the salt")
	f.IntVarP(&mintFlags.length, "length", "n", 16, "password length (12-64)")
	f.StringVar(&mintFlags.level, "level", "standard", "security level: standard or high")
	f.BoolVar(&mintFlags.noUpper, "no-upper", false, "disable uppercase characters")
	f.BoolVar(&mintFlags.noLower, "no-lower", false, "disable lowercase characters")
	f.BoolVar(&mintFlags.noDigits, "no-digits", false, "disable digits")
	f.BoolVar(&mintFlags.noSymbols, "no-symbols", false, "disable symbols")
	f.BoolVar(&mintFlags.excludeAmbiguous, "exclude-ambiguous", false, "exclude O, 0, I, l, 1")
	f.BoolVar(&mintFlags.excludeProblematic, "exclude-problematic", false, "exclude quotes, space, backslash, backtick")
	f.BoolVarP(&mintFlags.copyToClipboard, "copy", "c", false, "copy to clipboard instead of printing")
	f.BoolVar(&mintFlags.jsonOutput, "json", false, "output as JSON")
	f.BoolVar(&mintFlags.stay, "stay", false, "keep the phrase in memory and derive for more sites interactively")
	f.DurationVar(&mintFlags.remember, "remember", 5*time.Minute, "how long --stay holds the phrase before it must be re-entered")
	rootCmd.AddCommand(mintCmd)
}

func runMint(cmd *cobra.Command, args []string) error {
	site := args[0]

	store, err := profile.NewStore(flagConfigDir)
	if err != nil {
		// Derivation does not depend on profiles; continue with defaults.
		logger.Warn("profile store unavailable: %v", err)
		store = nil
	}

	phrase, err := promptPhrase(cmd)
	if err != nil {
		return err
	}

	if !mintFlags.stay {
		return mintOnce(cmd, store, site, phrase)
	}

	holder := session.NewHolder(mintFlags.remember)
	defer holder.Forget()
	if err := holder.Remember(phrase); err != nil {
		return err
	}
	if err := mintOnce(cmd, store, site, phrase); err != nil {
		return err
	}
	return stayLoop(cmd, store, holder)
}

// mintOnce derives and outputs the password for one site.
func mintOnce(cmd *cobra.Command, store *profile.Store, site, phrase string) error {
	prof := profile.Default()
	if store != nil {
		if stored, ok := store.Get(site); ok {
			logger.Debug("using stored profile for %s", mint.NormalizeSite(site))
			prof = stored
		}
	}
	opts := resolveOptions(prof, phrase, site, cmd.Flags().Changed)

	logger.Debug("site normalized to %s", mint.NormalizeSite(site))
	logger.Debug("salt %s", mint.BuildSalt(mint.NormalizeSite(site), opts.Version))
	logger.Debug("level %s, length %d", opts.Level, opts.Length)

	password, err := mint.Derive(opts)
	if err != nil {
		return err
	}
	return output(cmd, opts, password)
}

// resolveOptions merges the stored profile with explicitly set flags; a flag
// the user typed always wins over the profile.
func resolveOptions(prof profile.Profile, phrase, site string, changed func(string) bool) mint.Options {
	if changed("version") {
		prof.Version = mintFlags.version
	}
	if changed("length") {
		prof.Length = mintFlags.length
	}
	if changed("level") {
		prof.Level = mintFlags.level
	}
	if changed("no-upper") {
		prof.Upper = !mintFlags.noUpper
	}
	if changed("no-lower") {
		prof.Lower = !mintFlags.noLower
	}
	if changed("no-digits") {
		prof.Digits = !mintFlags.noDigits
	}
	if changed("no-symbols") {
		prof.Symbols = !mintFlags.noSymbols
	}
	if changed("exclude-ambiguous") {
		prof.ExcludeAmbiguous = mintFlags.excludeAmbiguous
	}
	if changed("exclude-problematic") {
		prof.ExcludeProblematic = mintFlags.excludeProblematic
	}
	return prof.Options(phrase, site)
}

// mintResult is the --json output shape. The phrase never appears here.
type mintResult struct {
	Site     string `json:"site"`
	Version  string `json:"version"`
	Length   int    `json:"length"`
	Level    string `json:"level"`
	Password string `json:"password"`
}

func output(cmd *cobra.Command, opts mint.Options, password string) error {
	if mintFlags.copyToClipboard {
		if err := clipboard.WriteAll(password); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Password for %s copied to clipboard.\n",
			mint.NormalizeSite(opts.Site))
		return nil
	}
	if mintFlags.jsonOutput {
		data, err := json.MarshalIndent(mintResult{
			Site:     mint.NormalizeSite(opts.Site),
			Version:  opts.Version,
			Length:   opts.Length,
			Level:    string(opts.Level),
			Password: password,
		}, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}
	cmd.Println(password)
	return nil
}

// stayLoop reads further sites line by line, re-prompting for the phrase
// whenever the session holder has expired it.
func stayLoop(cmd *cobra.Command, store *profile.Store, holder *session.Holder) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(cmd.ErrOrStderr(), "site> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		site := strings.TrimSpace(scanner.Text())
		if site == "" {
			continue
		}
		if site == "quit" || site == "exit" {
			return nil
		}

		phrase, err := holder.Phrase()
		if errors.Is(err, session.ErrNotRemembered) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Phrase expired; enter it again.")
			phrase, err = promptPhrase(cmd)
			if err != nil {
				return err
			}
			if err := holder.Remember(phrase); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := mintOnce(cmd, store, site, phrase); err != nil {
			// Keep the session going on per-site errors.
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}
}

// promptPhrase reads the secret phrase without echo when stdin is a
// terminal, falling back to a plain line read for piped input.
func promptPhrase(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.ErrOrStderr(), "Secret phrase: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading phrase: %w", err)
		}
		return string(raw), nil
	}
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading phrase: %w", err)
	}
	return strings.TrimSpace(line), nil
}
