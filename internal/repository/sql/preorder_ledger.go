// Package sql implements the production preorder ledger on Postgres.
package sql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/oakpress/storefront/internal/model"
	"github.com/oakpress/storefront/internal/repository"
)

// PreorderLedger stores preorders in the preorders table. Inserts are
// single statements, so no explicit transaction is needed.
type PreorderLedger struct {
	db *sql.DB
}

// NewPreorderLedger creates a Postgres-backed preorder ledger.
func NewPreorderLedger(db *sql.DB) repository.PreorderLedger {
	return &PreorderLedger{db: db}
}

// Create inserts a new preorder row.
func (l *PreorderLedger) Create(ctx context.Context, preorder *model.Preorder) error {
	if preorder.ID == 0 {
		preorder.InitMeta()
	}

	query := `INSERT INTO preorders (id, name, email, message, product_id, product_name, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	stmt, err := l.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	createdAt, err := time.Parse(time.RFC3339, preorder.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to parse preorder timestamp: %w", err)
	}

	_, err = stmt.ExecContext(ctx, int64(preorder.ID), preorder.Name, preorder.Email,
		preorder.Message, preorder.ProductID, preorder.ProductName, createdAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolationErrCode {
			return &repository.UniqueConstraintError{Detail: pqErr.Detail}
		}
		return fmt.Errorf("failed to insert preorder: %w", err)
	}

	return nil
}

// List returns every preorder, newest last to match the append order of the
// file ledger.
func (l *PreorderLedger) List(ctx context.Context) ([]model.Preorder, error) {
	query := `SELECT id, name, email, message, product_id, product_name, created_at
	          FROM preorders ORDER BY created_at ASC, id ASC`

	stmt, err := l.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query preorders: %w", err)
	}
	defer rows.Close()

	var preorders []model.Preorder
	for rows.Next() {
		var (
			preorder  model.Preorder
			id        int64
			createdAt time.Time
		)
		err := rows.Scan(&id, &preorder.Name, &preorder.Email, &preorder.Message,
			&preorder.ProductID, &preorder.ProductName, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preorder: %w", err)
		}
		preorder.ID = model.NumericID(id)
		preorder.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		preorders = append(preorders, preorder)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return preorders, nil
}
