// Package file implements the development preorder ledger on top of the
// JSON file store.
package file

import (
	"context"
	"fmt"

	"github.com/oakpress/storefront/internal/model"
	"github.com/oakpress/storefront/internal/repository"
	"github.com/oakpress/storefront/internal/store"
)

// PreorderLedger appends preorders to a single JSON array file. Every write
// re-reads the full ledger, appends one entry and rewrites the file, so two
// concurrent submissions can lose one of the entries (see internal/store).
type PreorderLedger struct {
	path string
}

// NewPreorderLedger creates a ledger backed by the file at path.
func NewPreorderLedger(path string) repository.PreorderLedger {
	return &PreorderLedger{path: path}
}

// Create appends the preorder to the ledger file.
func (l *PreorderLedger) Create(_ context.Context, preorder *model.Preorder) error {
	if preorder.ID == 0 {
		preorder.InitMeta()
	}

	preorders := store.Read[model.Preorder](l.path)
	preorders = append(preorders, *preorder)
	if err := store.Write(l.path, preorders); err != nil {
		return fmt.Errorf("failed to append preorder: %w", err)
	}
	return nil
}

// List returns every preorder in the ledger file. Read failures degrade to
// an empty result, per the file store contract.
func (l *PreorderLedger) List(_ context.Context) ([]model.Preorder, error) {
	return store.Read[model.Preorder](l.path), nil
}
