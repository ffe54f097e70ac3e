package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/budgetme/budgetme/budget"
	"github.com/budgetme/budgetme/config"
)

// ConfigKeys are the accepted configuration keys, interpolated into
// the command help as ${cfgKeys}. rate, cringe and synonym live in
// the ledger document itself; the rest select and configure the
// storage provider.
const ConfigKeys = "rate,path,access-key,secret-key,bucket-name,region,provider,cringe,synonym"

// ConfigCmd gets or sets configuration values.
type ConfigCmd struct {
	Set ConfigSetCmd `cmd:"" help:"Set a configuration value."`
	Get ConfigGetCmd `cmd:"" help:"Get a current configuration value."`
}

// ConfigSetCmd sets a configuration value.
type ConfigSetCmd struct {
	Key    string   `arg:"" enum:"${cfgKeys}" help:"Configuration key (${cfgKeys})."`
	Values []string `arg:"" help:"Value(s) for the key."`
}

func (cmd *ConfigSetCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(globals, "config set")
	if err != nil {
		return err
	}
	defer s.report()

	if err := cmd.apply(s); err != nil {
		return err
	}
	return s.commit()
}

func (cmd *ConfigSetCmd) apply(s *session) error {
	value := strings.Join(cmd.Values, " ")
	switch cmd.Key {
	case "rate":
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid rate %q: %w", value, err)
		}
		s.ledger.SetRate(rate)
		printRate(s, s.ledger)

	case "cringe":
		if len(cmd.Values) != 2 {
			return fmt.Errorf("cringe takes a keyword and a factor")
		}
		factor, err := decimal.NewFromString(cmd.Values[1])
		if err != nil {
			return fmt.Errorf("invalid cringe factor %q: %w", cmd.Values[1], err)
		}
		stored := s.ledger.SetCringe(cmd.Values[0], factor)
		fmt.Fprintf(os.Stdout, "Cringe factor for %s: %s\n", s.styles.Reason(stored), s.styles.Keyword(factor.String()))

	case "synonym":
		if len(cmd.Values) != 2 {
			return fmt.Errorf("synonym takes two keywords")
		}
		s.ledger.SetSynonym(cmd.Values[0], cmd.Values[1])
		fmt.Fprintf(os.Stdout, "%s and %s now share a cringe factor\n",
			s.styles.Reason(strings.ToLower(cmd.Values[0])),
			s.styles.Reason(strings.ToLower(cmd.Values[1])))

	case "provider":
		if err := s.cfg.SetProvider(strings.ToLower(strings.TrimSpace(value))); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Provider: %s\n", s.cfg.Provider)

	case "path":
		if strings.EqualFold(value, "none") {
			s.cfg.Local.Path = config.Default().Local.Path
		} else {
			s.cfg.Local.Path = value
		}
		fmt.Fprintf(os.Stdout, "Data path: %s\n", s.cfg.Local.Path)

	case "access-key":
		s.cfg.AWS.AccessKey = value
		fmt.Fprintf(os.Stdout, "Access key: %s\n", s.cfg.AWS.AccessKey)

	case "secret-key":
		s.cfg.AWS.SecretKey = value
		fmt.Fprintln(os.Stdout, "Secret key updated")

	case "bucket-name":
		s.cfg.AWS.Bucket = value
		fmt.Fprintf(os.Stdout, "Bucket name: %s\n", s.cfg.AWS.Bucket)

	case "region":
		s.cfg.AWS.Region = value
		fmt.Fprintf(os.Stdout, "Region: %s\n", s.cfg.AWS.Region)

	default:
		return fmt.Errorf("unknown configuration key %q", cmd.Key)
	}
	return nil
}

// ConfigGetCmd prints a current configuration value.
type ConfigGetCmd struct {
	Key string `arg:"" enum:"${cfgKeys}" help:"Configuration key (${cfgKeys})."`
}

func (cmd *ConfigGetCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(globals, "config get")
	if err != nil {
		return err
	}
	defer s.report()

	switch cmd.Key {
	case "rate":
		printRate(s, s.ledger)
	case "provider":
		fmt.Fprintf(os.Stdout, "Provider: %s\n", s.cfg.Provider)
	case "path":
		fmt.Fprintf(os.Stdout, "Data path: %s\n", s.cfg.Local.Path)
	case "access-key":
		fmt.Fprintf(os.Stdout, "Access key: %s\n", s.cfg.AWS.AccessKey)
	case "secret-key":
		fmt.Fprintln(os.Stdout, "Secret key: (hidden)")
	case "bucket-name":
		fmt.Fprintf(os.Stdout, "Bucket name: %s\n", s.cfg.AWS.Bucket)
	case "region":
		fmt.Fprintf(os.Stdout, "Region: %s\n", s.cfg.AWS.Region)
	case "cringe":
		keys := maps.Keys(s.ledger.CringeFactors)
		slices.Sort(keys)
		for _, key := range keys {
			fmt.Fprintf(os.Stdout, "%s: %s\n", s.styles.Reason(key), s.styles.Keyword(s.ledger.CringeFactors[key].String()))
		}
	case "synonym":
		keys := maps.Keys(s.ledger.Synonyms)
		slices.Sort(keys)
		for _, key := range keys {
			fmt.Fprintf(os.Stdout, "%s: %s\n", s.styles.Reason(key), strings.Join(s.ledger.SynonymsOf(key), ", "))
		}
	default:
		return fmt.Errorf("unknown configuration key %q", cmd.Key)
	}

	// Reading configuration still accrues; persist like every other
	// invocation.
	return s.commit()
}

func printRate(s *session, ledger *budget.Ledger) {
	fmt.Fprintf(os.Stdout, "Rate is %s per day\n", s.styles.Balance(budget.FormatDollars(ledger.EffectiveRate()), false))
}
