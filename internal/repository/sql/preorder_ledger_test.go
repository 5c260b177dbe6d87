package sql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/oakpress/storefront/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreorderLedger_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ledger := NewPreorderLedger(db)
	ctx := context.Background()

	t.Run("successful insert", func(t *testing.T) {
		message := "please"
		preorder := &model.Preorder{
			Name:        "A",
			Email:       "a@x.com",
			Message:     &message,
			ProductID:   nil,
			ProductName: nil,
		}

		mock.ExpectPrepare("INSERT INTO preorders").
			ExpectExec().
			WithArgs(sqlmock.AnyArg(), preorder.Name, preorder.Email, preorder.Message,
				preorder.ProductID, preorder.ProductName, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := ledger.Create(ctx, preorder)
		require.NoError(t, err)

		assert.NotZero(t, preorder.ID, "Create should assign an id")
		assert.NotEmpty(t, preorder.CreatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure", func(t *testing.T) {
		mock.ExpectPrepare("INSERT INTO preorders").
			ExpectExec().
			WillReturnError(assert.AnError)

		err := ledger.Create(ctx, &model.Preorder{Name: "A", Email: "a@x.com"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert preorder")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPreorderLedger_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ledger := NewPreorderLedger(db)
	ctx := context.Background()

	t.Run("successful list", func(t *testing.T) {
		createdAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "name", "email", "message", "product_id", "product_name", "created_at"}).
			AddRow(int64(1756641600000), "A", "a@x.com", nil, nil, nil, createdAt).
			AddRow(int64(1756641600001), "B", "b@x.com", "msg", "album-1", "Album 1", createdAt)

		mock.ExpectPrepare("SELECT id, name, email, message, product_id, product_name, created_at").
			ExpectQuery().
			WillReturnRows(rows)

		preorders, err := ledger.List(ctx)
		require.NoError(t, err)
		require.Len(t, preorders, 2)

		assert.Equal(t, model.NumericID(1756641600000), preorders[0].ID)
		assert.Equal(t, "a@x.com", preorders[0].Email)
		assert.Nil(t, preorders[0].Message)
		assert.Equal(t, "2026-08-31T12:00:00Z", preorders[0].CreatedAt)

		require.NotNil(t, preorders[1].ProductName)
		assert.Equal(t, "Album 1", *preorders[1].ProductName)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		mock.ExpectPrepare("SELECT id, name, email, message, product_id, product_name, created_at").
			ExpectQuery().
			WillReturnError(assert.AnError)

		_, err := ledger.List(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query preorders")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
