package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
)

// DoctorCmd provides doctor utilities for debugging the ledger.
type DoctorCmd struct {
	Dump DumpCmd `cmd:"" help:"Dump the raw ledger and configuration."`
}

// DumpCmd prints the decoded ledger document and the active
// configuration. Read-only: nothing is persisted, so it is safe to
// run against a ledger another machine is using.
type DumpCmd struct{}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(globals, "doctor dump")
	if err != nil {
		return err
	}
	defer s.report()

	fmt.Fprintf(os.Stdout, "config: %s\n", s.cfgPath)
	fmt.Fprintf(os.Stdout, "provider: %s\n", s.cfg.Provider)
	repr.Println(s.ledger)

	return nil
}
