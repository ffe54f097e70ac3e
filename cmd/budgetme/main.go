package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/budgetme/budgetme/cli"
)

var (
	// Version contains the application version number. It's set via
	// ldflags when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application
	// was built against. It's set via ldflags when building.
	CommitSHA = ""

	root struct {
		Version kong.VersionFlag `help:"Show version information"`
		cli.Commands
	}
)

func main() {
	ctx := kong.Parse(&root,
		kong.Vars{
			"version": buildVersion(),
			"cfgKeys": cli.ConfigKeys,
		},
		kong.Name("budgetme"),
		kong.Description("A self-imposed spending allowance with history, categories and debt."),
		kong.UsageOnError(),
		kong.Bind(&root.Globals),
	)

	err := ctx.Run()

	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		os.Exit(cmdErr.ExitCode())
	}
	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	cli.Version = Version
	cli.CommitSHA = CommitSHA
	if Version == "" {
		Version = "dev"
	}
	if CommitSHA == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, CommitSHA)
}
