package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	ConfigFile string `help:"Path to the configuration file." type:"path" env:"BUDGETME_CONFIG"`
	Telemetry  bool   `help:"Show timing telemetry for operations."`
	Debug      bool   `help:"Show debug diagnostics on stderr."`
}

type Commands struct {
	Globals

	Balance BalanceCmd `cmd:"" default:"1" help:"Show the current balance."`
	List    ListCmd    `cmd:"" help:"Print the spending history, most recent last."`
	Spend   SpendCmd   `cmd:"" help:"Spend some money from the account balance."`
	Undo    UndoCmd    `cmd:"" help:"Undo the most recent spend."`
	Redo    RedoCmd    `cmd:"" help:"Redo the most recent undo."`
	Garnish GarnishCmd `cmd:"" help:"Reset a negative balance and repay it out of future accrual."`
	Config  ConfigCmd  `cmd:"" help:"Get or set configuration values."`
	Watch   WatchCmd   `cmd:"" help:"Watch the local ledger file and reprint the balance on changes."`
	Doctor  DoctorCmd  `cmd:"" help:"Doctor utilities for debugging the ledger."`
}
