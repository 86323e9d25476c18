package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/fareedkhan-27/password-mint/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage per-site generation profiles",
	Long: `Profiles store non-secret generation options per site: length, character
classes, exclusions, security level, and the current rotation version.
No phrases or passwords are ever stored.`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show [site]",
	Short: "Show the stored profile for a site",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set [site]",
	Short: "Store a generation profile for a site",
	Long: `Stores the generation options given by flags as the profile for a site.
Starts from the existing profile (or the defaults), so flags you omit keep
their previous value.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileSet,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sites with stored profiles",
	RunE:  runProfileList,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete [site]",
	Short: "Delete the stored profile for a site",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

var profileSetFlags struct {
	version            string
	length             int
	level              string
	noUpper            bool
	noLower            bool
	noDigits           bool
	noSymbols          bool
	excludeAmbiguous   bool
	excludeProblematic bool
}

func init() {
	f := profileSetCmd.Flags()
	f.StringVar(&profileSetFlags.version, "version", "1", "rotation version")
	f.IntVarP(&profileSetFlags.length, "length", "n", 16, "password length (12-64)")
	f.StringVar(&profileSetFlags.level, "level", "standard", "security level: standard or high")
	f.BoolVar(&profileSetFlags.noUpper, "no-upper", false, "disable uppercase characters")
	f.BoolVar(&profileSetFlags.noLower, "no-lower", false, "disable lowercase characters")
	f.BoolVar(&profileSetFlags.noDigits, "no-digits", false, "disable digits")
	f.BoolVar(&profileSetFlags.noSymbols, "no-symbols", false, "disable symbols")
	f.BoolVar(&profileSetFlags.excludeAmbiguous, "exclude-ambiguous", false, "exclude O, 0, I, l, 1")
	f.BoolVar(&profileSetFlags.excludeProblematic, "exclude-problematic", false, "exclude quotes, space, backslash, backtick")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	store, err := profile.NewStore(flagConfigDir)
	if err != nil {
		return err
	}
	p, ok := store.Get(args[0])
	if !ok {
		cmd.Printf("No profile stored for %s; defaults apply:\n\n", args[0])
		p = profile.Default()
	}
	printProfile(cmd, p)
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	store, err := profile.NewStore(flagConfigDir)
	if err != nil {
		return err
	}

	p, ok := store.Get(args[0])
	if !ok {
		p = profile.Default()
	}
	changed := cmd.Flags().Changed
	if changed("version") {
		p.Version = profileSetFlags.version
	}
	if changed("length") {
		p.Length = profileSetFlags.length
	}
	if changed("level") {
		p.Level = profileSetFlags.level
	}
	if changed("no-upper") {
		p.Upper = !profileSetFlags.noUpper
	}
	if changed("no-lower") {
		p.Lower = !profileSetFlags.noLower
	}
	if changed("no-digits") {
		p.Digits = !profileSetFlags.noDigits
	}
	if changed("no-symbols") {
		p.Symbols = !profileSetFlags.noSymbols
	}
	if changed("exclude-ambiguous") {
		p.ExcludeAmbiguous = profileSetFlags.excludeAmbiguous
	}
	if changed("exclude-problematic") {
		p.ExcludeProblematic = profileSetFlags.excludeProblematic
	}

	if err := store.Set(args[0], p); err != nil {
		return err
	}
	cmd.Printf("Profile saved for %s.\n", args[0])
	return nil
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	store, err := profile.NewStore(flagConfigDir)
	if err != nil {
		return err
	}
	sites := store.List()
	if len(sites) == 0 {
		cmd.Println("No profiles stored.")
		return nil
	}
	for _, site := range sites {
		cmd.Println(site)
	}
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	store, err := profile.NewStore(flagConfigDir)
	if err != nil {
		return err
	}
	if err := store.Delete(args[0]); err != nil {
		return err
	}
	cmd.Printf("Profile deleted for %s.\n", args[0])
	return nil
}

func printProfile(cmd *cobra.Command, p profile.Profile) {
	classes := make([]string, 0, 4)
	if p.Upper {
		classes = append(classes, "upper")
	}
	if p.Lower {
		classes = append(classes, "lower")
	}
	if p.Digits {
		classes = append(classes, "digits")
	}
	if p.Symbols {
		classes = append(classes, "symbols")
	}
	cmd.Printf("  length:  %d\n", p.Length)
	cmd.Printf("  classes: %s\n", strings.Join(classes, ", "))
	cmd.Printf("  level:   %s\n", p.Level)
	cmd.Printf("  version: %s\n", p.Version)
	if p.ExcludeAmbiguous {
		cmd.Println("  excluding ambiguous characters (O, 0, I, l, 1)")
	}
	if p.ExcludeProblematic {
		cmd.Println("  excluding problematic characters (quotes, space, backslash, backtick)")
	}
}
