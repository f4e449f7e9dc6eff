// iso3166 is a CLI tool that resolves ISO 3166-1 country names and codes.
package main

import (
	"github.com/hightemp/iso3166/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
