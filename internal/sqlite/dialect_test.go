// Tests for the per-driver dialect table and schema.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// envMySQLDSN names a MySQL server for the optional round-trip test.
const envMySQLDSN = "TRADEBOOK_TEST_MYSQL_DSN"

func TestDialects_Drivers(t *testing.T) {
	tests := []struct {
		backend string
		driver  string
	}{
		{backend: types.BackendSQLite, driver: "sqlite"},
		{backend: types.BackendMySQL, driver: "mysql"},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			d, ok := dialects[tt.backend]
			require.True(t, ok)
			assert.Equal(t, tt.driver, d.driver)
			assert.Contains(t, sql.Drivers(), d.driver, "driver is registered")
			assert.Len(t, d.schema, 4)
			require.NotNil(t, d.configure)
		})
	}
}

func TestDialects_MySQLDSNIsPassedThrough(t *testing.T) {
	dsn := "shop:secret@tcp(db.internal:3306)/tradebook?parseTime=true"
	got := dialects[types.BackendMySQL].dsn(types.Config{Backend: types.BackendMySQL, DSN: dsn})
	assert.Equal(t, dsn, got)

	cfg, err := mysql.ParseDSN(got)
	require.NoError(t, err)
	assert.Equal(t, "tradebook", cfg.DBName)
	assert.Equal(t, "db.internal:3306", cfg.Addr)
}

func TestSchema_CoversEntityColumns(t *testing.T) {
	tables := []struct {
		name    string
		columns []string
	}{
		{name: partnerEntity.name, columns: partnerEntity.columns},
		{name: productTypeEntity.name, columns: productTypeEntity.columns},
		{name: productEntity.name, columns: productEntity.columns},
		{name: saleEntity.name, columns: saleEntity.columns},
	}

	for dialectName, ddl := range map[string][]string{"sqlite": sqliteSchemaDDL, "mysql": mysqlSchemaDDL} {
		require.Len(t, ddl, len(tables), dialectName)
		for i, tbl := range tables {
			stmt := ddl[i]
			assert.Contains(t, stmt, "CREATE TABLE IF NOT EXISTS "+tbl.name+" (", "%s %s", dialectName, tbl.name)
			for _, col := range tbl.columns {
				assert.Contains(t, stmt, "\n    "+col+" ", "%s %s.%s", dialectName, tbl.name, col)
			}
		}
	}
	for _, stmt := range mysqlSchemaDDL {
		assert.False(t, strings.HasSuffix(strings.TrimSpace(stmt), ";"), "one statement per Exec")
	}
}

func TestMySQL_RoundTrip(t *testing.T) {
	dsn := os.Getenv(envMySQLDSN)
	if dsn == "" {
		t.Skipf("%s not set", envMySQLDSN)
	}
	ctx := context.Background()

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendMySQL, DSN: dsn}))
	t.Cleanup(func() { b.Detach() })

	p := samplePartner("mysql-" + types.NewID()[:8])
	require.NoError(t, b.Partners().Create(ctx, p))
	t.Cleanup(func() { b.Partners().Delete(ctx, p.ID) })

	pt := &types.ProductType{ProductType: "Type " + types.NewID(), Coefficient: 1.5}
	require.NoError(t, b.ProductTypes().Create(ctx, pt))
	t.Cleanup(func() { b.ProductTypes().Delete(ctx, pt.ProductType) })

	s := types.NewSale(types.Sale{
		ProductID: "p",
		PartnerID: p.ID,
		Quantity:  3,
		SaleDate:  types.Date{Year: 2024, Month: time.February, Day: 29},
	})
	require.NoError(t, b.Sales().Create(ctx, s))
	t.Cleanup(func() { b.Sales().Delete(ctx, s.ID) })

	gotPartner, err := b.Partners().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, gotPartner)

	gotType, err := b.ProductTypes().Get(ctx, pt.ProductType)
	require.NoError(t, err)
	assert.Equal(t, pt, gotType)

	gotSale, err := b.Sales().Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, gotSale)

	err = b.Sales().Create(ctx, types.NewSale(types.Sale{ProductID: "p", PartnerID: p.ID}))
	assert.True(t, types.IsDatabaseError(err))
}
