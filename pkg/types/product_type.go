package types

// ProductType groups products and carries a pricing coefficient. The type
// name is its primary key; there is no generated ID.
type ProductType struct {
	ProductType string  `json:"product_type"`
	Coefficient float64 `json:"coefficient"`
}

// Key returns the identity of the product type, its name.
func (pt *ProductType) Key() string { return pt.ProductType }

// Equal reports whether pt and other name the same product type.
func (pt *ProductType) Equal(other *ProductType) bool {
	if pt == nil || other == nil {
		return pt == other
	}
	return pt.ProductType == other.ProductType
}
