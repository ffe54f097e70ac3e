package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/budgetme/budgetme/budget"
)

var testTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// TestLocal_FetchMiss verifies a never-written directory yields
// (nil, nil), not an error.
func TestLocal_FetchMiss(t *testing.T) {
	p := NewLocal(filepath.Join(t.TempDir(), "budgetme"))
	l, err := p.Fetch(context.Background())
	assert.NoError(t, err)
	assert.True(t, l == nil)
}

// TestLocal_RoundTrip verifies store creates the directory and fetch
// reloads an equal ledger.
func TestLocal_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "budgetme")
	p := NewLocal(dir)

	l := budget.New(testTime)
	_, err := l.Spend(decimal.NewFromInt(3), "food", "", false, testTime)
	assert.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, p.Store(ctx, l))

	loaded, err := p.Fetch(ctx)
	assert.NoError(t, err)
	assert.True(t, l.Equal(loaded))
}

// TestLocal_StoreReplaces verifies every store is a full-document
// replace.
func TestLocal_StoreReplaces(t *testing.T) {
	p := NewLocal(t.TempDir())
	ctx := context.Background()

	first := budget.New(testTime)
	assert.NoError(t, p.Store(ctx, first))

	second := budget.New(testTime)
	_, err := second.Spend(decimal.NewFromInt(1), "food", "", false, testTime)
	assert.NoError(t, err)
	assert.NoError(t, p.Store(ctx, second))

	loaded, err := p.Fetch(ctx)
	assert.NoError(t, err)
	assert.True(t, second.Equal(loaded))
	assert.False(t, first.Equal(loaded))
}

// TestLocal_CorruptDocument verifies unreadable documents surface as
// errors rather than silently becoming a fresh ledger; the caller
// decides how to treat fetch failures.
func TestLocal_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	p := NewLocal(dir)
	assert.NoError(t, os.WriteFile(p.DataPath(), []byte("{not json"), 0o644))

	_, err := p.Fetch(context.Background())
	assert.Error(t, err)
}
