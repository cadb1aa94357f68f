package sqlite

import (
	"database/sql"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// DatabaseFileName is the SQLite database file kept in the data directory.
const DatabaseFileName = "data.sqlite"

// dialect describes how to open and initialise one database/sql driver.
// Both supported drivers accept "?" placeholders, so statement text is
// shared across dialects.
type dialect struct {
	driver    string
	schema    []string
	dsn       func(config types.Config) string
	configure func(db *sql.DB)
}

var dialects = map[string]dialect{
	types.BackendSQLite: {
		driver: "sqlite",
		schema: sqliteSchemaDDL,
		dsn: func(config types.Config) string {
			return filepath.Join(dataDirOrDefault(config.DataDir), DatabaseFileName)
		},
		configure: func(db *sql.DB) {
			// SQLite serialises writers; one connection avoids SQLITE_BUSY.
			db.SetMaxOpenConns(1)
		},
	},
	types.BackendMySQL: {
		driver: "mysql",
		schema: mysqlSchemaDDL,
		dsn: func(config types.Config) string {
			return config.DSN
		},
		configure: func(db *sql.DB) {},
	},
}

func dataDirOrDefault(dataDir string) string {
	if dataDir == "" {
		return "."
	}
	return dataDir
}
