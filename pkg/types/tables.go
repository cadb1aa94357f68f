package types

// Store table names.
const (
	PartnersTable     = "partners"
	ProductTypesTable = "product_types"
	ProductsTable     = "products"
	SalesTable        = "sales"
)
