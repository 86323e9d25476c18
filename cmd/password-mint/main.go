// Command password-mint derives reproducible site passwords from a secret
// phrase, a site identifier, and a rotation version.
package main

import (
	"os"

	"github.com/fareedkhan-27/password-mint/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
