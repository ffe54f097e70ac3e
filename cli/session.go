package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/budgetme/budgetme/budget"
	"github.com/budgetme/budgetme/config"
	"github.com/budgetme/budgetme/output"
	"github.com/budgetme/budgetme/storage"
	"github.com/budgetme/budgetme/telemetry"
)

// session is one logical transaction over the ledger: load the
// snapshot once, mutate it in memory, verify once, write once.
type session struct {
	cfg      *config.Config
	cfgPath  string
	provider storage.Provider
	ledger   *budget.Ledger
	now      time.Time

	styles *output.Styles
	logger *log.Logger

	ctx       context.Context
	collector telemetry.Collector
	timer     telemetry.Timer
	reportFn  func()
}

// openSession loads the configuration, builds the storage provider
// and fetches the ledger, substituting a fresh default when nothing
// is persisted yet. Accrual is applied before returning, so commands
// operate on an up-to-date snapshot.
func openSession(globals *Globals, operation string) (*session, error) {
	s := &session{
		now:    time.Now(),
		styles: output.NewStyles(os.Stdout),
		ctx:    context.Background(),
	}

	level := log.WarnLevel
	if globals.Debug {
		level = log.DebugLevel
	}
	s.logger = log.NewWithOptions(os.Stderr, log.Options{Level: level})

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		s.collector = collector
		s.ctx = telemetry.WithCollector(s.ctx, collector)
		s.timer = collector.Start(operation)

		var once sync.Once
		s.reportFn = func() {
			once.Do(func() {
				s.timer.End()
				_, _ = fmt.Fprintln(os.Stderr)
				collector.Report(os.Stderr, output.NewStyles(os.Stderr))
			})
		}
	}

	path := globals.ConfigFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	s.cfgPath = path

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg

	provider, err := cfg.StorageProvider()
	if err != nil {
		return nil, err
	}
	s.provider = provider

	ledger, err := s.fetch("fetch ledger")
	if err != nil {
		return nil, err
	}
	s.ledger = ledger

	if err := s.ledger.Accrue(s.now); err != nil {
		return nil, err
	}
	return s, nil
}

// fetch loads the persisted ledger, treating a miss or a transport
// failure as "no prior data" and substituting a fresh default. Only
// an unknown document version is fatal: silently replacing a newer
// schema with a fresh ledger would destroy it on the next store.
func (s *session) fetch(phase string) (*budget.Ledger, error) {
	timer := telemetry.FromContext(s.ctx).Start(phase)
	defer timer.End()

	ledger, err := s.provider.Fetch(s.ctx)
	if err != nil {
		var unknown *budget.UnknownVersionError
		if errors.As(err, &unknown) {
			return nil, err
		}
		s.logger.Debug("fetch failed, starting from a fresh ledger", "err", err)
		ledger = nil
	}
	if ledger == nil {
		ledger = budget.New(s.now)
	}
	return ledger, nil
}

// commit persists the configuration, then reconciles the mutated
// ledger against whatever is currently stored and writes it back.
// On a reconciliation failure the local ledger is discarded, the
// stored one left untouched, and the command exits nonzero.
func (s *session) commit() error {
	defer s.report()

	if err := s.cfg.Save(s.cfgPath); err != nil {
		return err
	}

	// Re-fetch immediately before writing to catch concurrent
	// invocations that committed after our initial read.
	remote, err := s.fetch("refetch ledger")
	if err != nil {
		return err
	}

	verifyTimer := telemetry.FromContext(s.ctx).Start("reconcile")
	verifyErr := budget.Verify(s.ledger, remote, s.now)
	verifyTimer.End()

	if verifyErr != nil {
		s.logger.Debug("reconciliation refused the write", "err", verifyErr)
		printError(os.Stderr, verifyErr.Error())
		printError(os.Stderr, "refusing to overwrite unrelated histories")
		return NewCommandError(1)
	}

	storeTimer := telemetry.FromContext(s.ctx).Start("store ledger")
	defer storeTimer.End()
	if err := s.provider.Store(s.ctx, s.ledger); err != nil {
		return err
	}
	s.logger.Debug("ledger stored", "entries", len(s.ledger.History))
	return nil
}

// report flushes telemetry, once. Safe to call on paths that never
// reach commit.
func (s *session) report() {
	if s.reportFn != nil {
		s.reportFn()
	}
}
