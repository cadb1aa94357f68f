package sqlite

// SQLite DDL. Columns follow record declaration order; the identity column
// of ID-keyed records comes last. sale_date is declared TEXT so the driver
// hands back the stored string unchanged.
const (
	sqliteCreatePartners = `CREATE TABLE IF NOT EXISTS partners (
    partner_type TEXT NOT NULL,
    partner_name TEXT NOT NULL,
    director TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    legal_address TEXT NOT NULL,
    inn TEXT NOT NULL,
    rating INTEGER NOT NULL,
    id TEXT PRIMARY KEY
);`

	sqliteCreateProductTypes = `CREATE TABLE IF NOT EXISTS product_types (
    product_type TEXT PRIMARY KEY,
    coefficient REAL NOT NULL
);`

	sqliteCreateProducts = `CREATE TABLE IF NOT EXISTS products (
    product_type TEXT NOT NULL,
    product_name TEXT NOT NULL,
    article_number TEXT NOT NULL,
    minimum_cost INTEGER NOT NULL,
    id TEXT PRIMARY KEY
);`

	sqliteCreateSales = `CREATE TABLE IF NOT EXISTS sales (
    product_id TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    sale_date TEXT NOT NULL,
    partner_id TEXT NOT NULL,
    id TEXT PRIMARY KEY
);`
)

// MySQL DDL. Same layout; keys need bounded lengths.
const (
	mysqlCreatePartners = `CREATE TABLE IF NOT EXISTS partners (
    partner_type TEXT NOT NULL,
    partner_name TEXT NOT NULL,
    director TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    legal_address TEXT NOT NULL,
    inn TEXT NOT NULL,
    rating BIGINT NOT NULL,
    id VARCHAR(36) PRIMARY KEY
)`

	mysqlCreateProductTypes = `CREATE TABLE IF NOT EXISTS product_types (
    product_type VARCHAR(255) PRIMARY KEY,
    coefficient DOUBLE NOT NULL
)`

	mysqlCreateProducts = `CREATE TABLE IF NOT EXISTS products (
    product_type VARCHAR(255) NOT NULL,
    product_name TEXT NOT NULL,
    article_number TEXT NOT NULL,
    minimum_cost BIGINT NOT NULL,
    id VARCHAR(36) PRIMARY KEY
)`

	mysqlCreateSales = `CREATE TABLE IF NOT EXISTS sales (
    product_id VARCHAR(36) NOT NULL,
    quantity BIGINT NOT NULL,
    sale_date DATE NOT NULL,
    partner_id VARCHAR(36) NOT NULL,
    id VARCHAR(36) PRIMARY KEY
)`
)

// sqliteSchemaDDL lists all CREATE TABLE statements in dependency order.
var sqliteSchemaDDL = []string{
	sqliteCreatePartners,
	sqliteCreateProductTypes,
	sqliteCreateProducts,
	sqliteCreateSales,
}

// mysqlSchemaDDL lists all CREATE TABLE statements in dependency order.
// MySQL executes one statement per Exec.
var mysqlSchemaDDL = []string{
	mysqlCreatePartners,
	mysqlCreateProductTypes,
	mysqlCreateProducts,
	mysqlCreateSales,
}
