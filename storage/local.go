package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/budgetme/budgetme/budget"
)

// Local stores the ledger as data.json inside a directory.
type Local struct {
	// Dir is the directory holding the document. A leading ~ expands
	// to the user's home directory.
	Dir string
}

// NewLocal creates a local provider rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{Dir: dir}
}

// Fetch implements Provider. A missing file is not an error.
func (p *Local) Fetch(ctx context.Context) (*budget.Ledger, error) {
	raw, err := os.ReadFile(p.dataPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}
	return budget.UnmarshalLedger(raw)
}

// Store implements Provider, creating the directory if needed.
func (p *Local) Store(ctx context.Context, ledger *budget.Ledger) error {
	raw, err := ledger.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(p.directory(), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(p.dataPath(), raw, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	return nil
}

// DataPath returns the full path of the ledger document.
func (p *Local) DataPath() string {
	return p.dataPath()
}

func (p *Local) dataPath() string {
	return filepath.Join(p.directory(), dataObjectName)
}

func (p *Local) directory() string {
	if p.Dir == "~" || strings.HasPrefix(p.Dir, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, p.Dir[1:])
		}
	}
	return p.Dir
}
