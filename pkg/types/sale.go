package types

// Sale records a quantity of a product sold to a partner on a date.
// ProductID and PartnerID are expected to reference existing rows but the
// store does not enforce it; deleting a partner or product leaves its sales
// in place.
type Sale struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	SaleDate  Date   `json:"sale_date"`
	PartnerID string `json:"partner_id"`
	ID        string `json:"id"`
}

// NewSale returns a copy of fields with a freshly generated ID.
func NewSale(fields Sale) *Sale {
	fields.ID = NewID()
	return &fields
}

// Key returns the identity of the sale.
func (s *Sale) Key() string { return s.ID }

// Equal reports whether s and other are the same sale by ID.
func (s *Sale) Equal(other *Sale) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.ID == other.ID
}
