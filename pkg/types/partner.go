package types

// Partner is a counterparty the business sells to.
type Partner struct {
	ID           string `json:"id"` // Generated on construction, never changes.
	PartnerType  string `json:"partner_type"`
	PartnerName  string `json:"partner_name"`
	Director     string `json:"director"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	LegalAddress string `json:"legal_address"`
	INN          string `json:"inn"` // Taxpayer identification number.
	Rating       int64  `json:"rating"`
}

// NewPartner returns a copy of fields with a freshly generated ID. Any ID
// already set on fields is replaced.
func NewPartner(fields Partner) *Partner {
	fields.ID = NewID()
	return &fields
}

// Key returns the identity of the partner.
func (p *Partner) Key() string { return p.ID }

// Equal reports whether p and other are the same partner. Equality is by
// identity, not by field values.
func (p *Partner) Equal(other *Partner) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}

// Label is the display name used in lists and pickers.
func (p *Partner) Label() string {
	return p.PartnerName + " | " + p.PartnerType
}
