package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oakpress/storefront/internal/model"
	"github.com/oakpress/storefront/internal/repository/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreorderLedger_CreateAndList(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "preorders.json")
	ledger := file.NewPreorderLedger(path)

	preorder := &model.Preorder{Name: "A", Email: "a@x.com"}
	require.NoError(t, ledger.Create(ctx, preorder))
	assert.NotZero(t, preorder.ID, "Create should assign an id")
	assert.NotEmpty(t, preorder.CreatedAt)

	second := &model.Preorder{Name: "B", Email: "b@x.com"}
	require.NoError(t, ledger.Create(ctx, second))

	preorders, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, preorders, 2)
	assert.Equal(t, "a@x.com", preorders[0].Email)
	assert.Equal(t, "b@x.com", preorders[1].Email, "entries append in submission order")
}

func TestPreorderLedger_ListMissingFile(t *testing.T) {
	ledger := file.NewPreorderLedger(filepath.Join(t.TempDir(), "preorders.json"))

	preorders, err := ledger.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, preorders)
}

func TestPreorderLedger_ListCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preorders.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	ledger := file.NewPreorderLedger(path)

	preorders, err := ledger.List(context.Background())
	require.NoError(t, err, "a corrupt ledger degrades to empty, it never errors")
	assert.Empty(t, preorders)
}

func TestPreorderLedger_CreateIntoMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "preorders.json")
	ledger := file.NewPreorderLedger(path)

	err := ledger.Create(context.Background(), &model.Preorder{Name: "A", Email: "a@x.com"})
	assert.Error(t, err, "write failures surface as errors")
}
