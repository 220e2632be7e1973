// Command exhibitfix normalises the metadata fields of exhibit documents.
package main

import (
	"os"

	"github.com/custodia-labs/exhibitfix/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetDependencies(openConfig, newNormaliser)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
