// Package repository defines the preorder ledger abstraction shared by the
// development (JSON file) and production (Postgres) backends.
package repository

import (
	"context"
	"errors"

	"github.com/oakpress/storefront/internal/model"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("resource not found")

// PreorderLedger is the append-only log of preorder submissions. There is
// deliberately no update or delete: entries live until the backing store is
// cleared out-of-band.
type PreorderLedger interface {
	Create(ctx context.Context, preorder *model.Preorder) error
	List(ctx context.Context) ([]model.Preorder, error)
}

// UniqueConstraintError represents a database unique constraint violation error.
type UniqueConstraintError struct {
	Detail string
}

func (u *UniqueConstraintError) Error() string {
	return "resource must be unique: " + u.Detail
}
