package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mesh-intelligence/tradebook/internal/sqlite"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

func attachedStore(t *testing.T) *sqlite.Backend {
	t.Helper()
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	t.Cleanup(func() { b.Detach() })
	return b
}

func seed(t *testing.T, store types.Store) {
	t.Helper()
	ctx := context.Background()
	partner := types.NewPartner(types.Partner{
		PartnerType: "LLC", PartnerName: "Acme", Email: "office@acme.com", INN: "7701234567", Rating: 7,
	})
	require.NoError(t, store.Partners().Create(ctx, partner))
	require.NoError(t, store.ProductTypes().Create(ctx, &types.ProductType{ProductType: "Laminate", Coefficient: 2.35}))
	product := types.NewProduct(types.Product{
		ProductType: "Laminate", ProductName: "Oak board", ArticleNumber: "8758385", MinimumCost: 4456,
	})
	require.NoError(t, store.Products().Create(ctx, product))
	for _, q := range []int64{10, 25} {
		require.NoError(t, store.Sales().Create(ctx, types.NewSale(types.Sale{
			ProductID: product.ID,
			Quantity:  q,
			SaleDate:  types.Date{Year: 2024, Month: 2, Day: 29},
			PartnerID: partner.ID,
		})))
	}
}

func TestJSONL_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := attachedStore(t)
	seed(t, src)

	snap, err := Load(ctx, src)
	require.NoError(t, err)
	require.Equal(t, 5, snap.Len())

	dir := filepath.Join(t.TempDir(), "dump")
	require.NoError(t, WriteJSONL(dir, snap))
	for _, name := range []string{PartnersFile, ProductTypesFile, ProductsFile, SalesFile} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	read, err := ReadJSONL(dir)
	require.NoError(t, err)
	assert.Equal(t, snap, read)

	dst := attachedStore(t)
	n, err := Restore(ctx, dst, read)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	restored, err := Load(ctx, dst)
	require.NoError(t, err)
	assert.Equal(t, snap, restored)
}

func TestRestore_StopsOnConflict(t *testing.T) {
	ctx := context.Background()
	store := attachedStore(t)
	seed(t, store)

	snap, err := Load(ctx, store)
	require.NoError(t, err)

	n, err := Restore(ctx, store, snap)
	require.Error(t, err)
	assert.Equal(t, 0, n, "the first product type already exists")
	assert.True(t, types.IsDatabaseError(err))
}

func TestRestore_RejectsSaleWithoutDate(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	content := "{\"product_id\":\"p\",\"quantity\":1,\"partner_id\":\"q\",\"id\":\"s1\"}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SalesFile), []byte(content), 0o644))

	snap, err := ReadJSONL(dir)
	require.NoError(t, err)
	require.Len(t, snap.Sales, 1)
	assert.True(t, snap.Sales[0].SaleDate.IsZero())

	store := attachedStore(t)
	n, err := Restore(ctx, store, snap)
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.True(t, types.IsDatabaseError(err))

	sales, err := store.Sales().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestReadJSONL_Tolerance(t *testing.T) {
	t.Run("missing files are empty tables", func(t *testing.T) {
		snap, err := ReadJSONL(t.TempDir())
		require.NoError(t, err)
		assert.Zero(t, snap.Len())
	})

	t.Run("blank and malformed lines are skipped", func(t *testing.T) {
		dir := t.TempDir()
		content := "{\"product_type\":\"Laminate\",\"coefficient\":2.35}\n\n{not json\n{\"product_type\":\"Parquet\",\"coefficient\":4.34}\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ProductTypesFile), []byte(content), 0o644))

		snap, err := ReadJSONL(dir)
		require.NoError(t, err)
		assert.Equal(t, []*types.ProductType{
			{ProductType: "Laminate", Coefficient: 2.35},
			{ProductType: "Parquet", Coefficient: 4.34},
		}, snap.ProductTypes)
		assert.Equal(t, 1, snap.Skipped, "only the malformed line counts")
		assert.Equal(t, 2, snap.Len())
	})

	t.Run("bad date is an error", func(t *testing.T) {
		dir := t.TempDir()
		content := "{\"id\":\"s1\",\"sale_date\":\"29.02.2024\"}\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, SalesFile), []byte(content), 0o644))

		_, err := ReadJSONL(dir)
		assert.Error(t, err)
	})
}

func TestWriteXLSX(t *testing.T) {
	ctx := context.Background()
	store := attachedStore(t)
	seed(t, store)
	snap, err := Load(ctx, store)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tradebook.xlsx")
	require.NoError(t, WriteXLSX(path, snap))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"partners", "product_types", "products", "sales"}, f.GetSheetList())

	rows, err := f.GetRows("partners")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "partner_name", rows[0][2])
	assert.Equal(t, "Acme", rows[1][2])

	rows, err = f.GetRows("sales")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-02-29", rows[1][3])
}
