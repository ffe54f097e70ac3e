package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/budgetme/budgetme/storage"
)

// WatchCmd watches the local ledger file and reprints the balance
// whenever another invocation (or machine sync) rewrites it. Only
// meaningful for the local provider.
type WatchCmd struct{}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	s, err := openSession(globals, "watch")
	if err != nil {
		return err
	}
	defer s.report()

	local, ok := s.provider.(*storage.Local)
	if !ok {
		printError(os.Stderr, "watch requires the local provider")
		return NewCommandError(1)
	}

	printBalance(os.Stdout, s.styles, s.ledger)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors and syncers replace the file, which
	// would drop a watch on the file itself.
	dataPath := local.DataPath()
	if err := watcher.Add(filepath.Dir(dataPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dataPath, err)
	}

	runCtx, stop := signal.NotifyContext(s.ctx, os.Interrupt)
	defer stop()

	// Debounce timer - writers often touch the file in multiple steps.
	const debounceDelay = 100 * time.Millisecond
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	reload := make(chan struct{}, 1)
	for {
		select {
		case <-runCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != dataPath || event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Debug("watch error", "err", err)

		case <-reload:
			ledger, err := local.Fetch(runCtx)
			if err != nil || ledger == nil {
				s.logger.Debug("reload failed", "err", err)
				continue
			}
			printBalance(os.Stdout, s.styles, ledger)
		}
	}
}
