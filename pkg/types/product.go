package types

// Product is an article offered for sale.
type Product struct {
	ProductType   string `json:"product_type"` // References ProductType.ProductType.
	ProductName   string `json:"product_name"`
	ArticleNumber string `json:"article_number"`
	MinimumCost   int64  `json:"minimum_cost"`
	ID            string `json:"id"`
}

// NewProduct returns a copy of fields with a freshly generated ID.
func NewProduct(fields Product) *Product {
	fields.ID = NewID()
	return &fields
}

// Key returns the identity of the product.
func (p *Product) Key() string { return p.ID }

// Equal reports whether p and other are the same product by ID.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}
