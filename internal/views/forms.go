package views

import (
	"strconv"
	"strings"
	"time"

	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// Field is one rendered form field.
type Field struct {
	Name  string
	Value string
}

// Form is the in-progress input of a form slot. Set parses and stores a
// scalar field; parse failures are *types.ValidationError.
type Form interface {
	Set(field, value string) error
	Fields() []Field
}

// PartnerForm collects a new partner.
type PartnerForm struct {
	PartnerType  string `form:"partner_type"`
	PartnerName  string `form:"partner_name" validate:"required"`
	Director     string `form:"director"`
	Email        string `form:"email" validate:"omitempty,email"`
	Phone        string `form:"phone"`
	LegalAddress string `form:"legal_address"`
	INN          string `form:"inn" validate:"omitempty,numeric"`
	Rating       int64  `form:"rating" validate:"gte=0"`
}

func (f *PartnerForm) Set(field, value string) error {
	switch field {
	case "partner_type":
		f.PartnerType = value
	case "partner_name":
		f.PartnerName = value
	case "director":
		f.Director = value
	case "email":
		f.Email = value
	case "phone":
		f.Phone = value
	case "legal_address":
		f.LegalAddress = value
	case "inn":
		f.INN = value
	case "rating":
		n, err := parseInt(field, value)
		if err != nil {
			return err
		}
		f.Rating = n
	default:
		return unknownField(field)
	}
	return nil
}

func (f *PartnerForm) Fields() []Field {
	return []Field{
		{"partner_name", f.PartnerName},
		{"partner_type", f.PartnerType},
		{"director", f.Director},
		{"email", f.Email},
		{"phone", f.Phone},
		{"legal_address", f.LegalAddress},
		{"inn", f.INN},
		{"rating", strconv.FormatInt(f.Rating, 10)},
	}
}

// Build validates the form and returns a new partner with a fresh ID.
func (f *PartnerForm) Build() (*types.Partner, error) {
	if err := validateForm(f); err != nil {
		return nil, err
	}
	return types.NewPartner(types.Partner{
		PartnerType:  f.PartnerType,
		PartnerName:  f.PartnerName,
		Director:     f.Director,
		Email:        f.Email,
		Phone:        f.Phone,
		LegalAddress: f.LegalAddress,
		INN:          f.INN,
		Rating:       f.Rating,
	}), nil
}

// SaleForm collects a new sale. The date is held as two independent fields,
// a year and a 1-based day of that year, and is only checked on Build.
type SaleForm struct {
	Product  *types.Product `form:"product" validate:"required"`
	Partner  *types.Partner `form:"partner" validate:"required"`
	Quantity int64          `form:"quantity" validate:"gte=0"`
	Year     int            `form:"year"`
	Day      int            `form:"day"`
}

// NewSaleForm returns an empty sale form dated today.
func NewSaleForm(today time.Time) *SaleForm {
	return &SaleForm{Year: today.Year(), Day: today.YearDay()}
}

func (f *SaleForm) Set(field, value string) error {
	switch field {
	case "quantity":
		n, err := parseInt(field, value)
		if err != nil {
			return err
		}
		f.Quantity = n
	case "year":
		n, err := parseInt(field, value)
		if err != nil {
			return err
		}
		f.Year = int(n)
	case "day":
		n, err := parseInt(field, value)
		if err != nil {
			return err
		}
		f.Day = int(n)
	case "date":
		d, err := types.ParseDate(strings.TrimSpace(value))
		if err != nil {
			return types.Invalidf("date must be YYYY-MM-DD, got %q", value)
		}
		f.Year, f.Day = d.Year, d.Ordinal()
	default:
		return unknownField(field)
	}
	return nil
}

func (f *SaleForm) Fields() []Field {
	product, partner := "", ""
	if f.Product != nil {
		product = f.Product.ProductName
	}
	if f.Partner != nil {
		partner = f.Partner.Label()
	}
	return []Field{
		{"product", product},
		{"quantity", strconv.FormatInt(f.Quantity, 10)},
		{"year", strconv.Itoa(f.Year)},
		{"day", strconv.Itoa(f.Day)},
		{"partner", partner},
	}
}

// Build validates the form, assembles the sale date and returns a new sale
// with a fresh ID.
func (f *SaleForm) Build() (*types.Sale, error) {
	if err := validateForm(f); err != nil {
		return nil, err
	}
	date, err := AssembleDate(f.Year, f.Day)
	if err != nil {
		return nil, err
	}
	return types.NewSale(types.Sale{
		ProductID: f.Product.ID,
		Quantity:  f.Quantity,
		SaleDate:  date,
		PartnerID: f.Partner.ID,
	}), nil
}

// AssembleDate combines the independent year and day-of-year inputs of the
// sale form. A day that does not exist in the year is a *types.ValidationError.
func AssembleDate(year, day int) (types.Date, error) {
	return types.DateFromOrdinal(year, day)
}

// ProductForm collects a new product.
type ProductForm struct {
	ProductType   *types.ProductType `form:"product_type" validate:"required"`
	ProductName   string             `form:"product_name" validate:"required"`
	ArticleNumber string             `form:"article_number"`
	MinimumCost   int64              `form:"minimum_cost" validate:"gte=0"`
}

func (f *ProductForm) Set(field, value string) error {
	switch field {
	case "product_name":
		f.ProductName = value
	case "article_number":
		f.ArticleNumber = value
	case "minimum_cost":
		n, err := parseInt(field, value)
		if err != nil {
			return err
		}
		f.MinimumCost = n
	default:
		return unknownField(field)
	}
	return nil
}

func (f *ProductForm) Fields() []Field {
	productType := ""
	if f.ProductType != nil {
		productType = f.ProductType.ProductType
	}
	return []Field{
		{"product_type", productType},
		{"product_name", f.ProductName},
		{"article_number", f.ArticleNumber},
		{"minimum_cost", strconv.FormatInt(f.MinimumCost, 10)},
	}
}

// Build validates the form and returns a new product with a fresh ID.
func (f *ProductForm) Build() (*types.Product, error) {
	if err := validateForm(f); err != nil {
		return nil, err
	}
	return types.NewProduct(types.Product{
		ProductType:   f.ProductType.ProductType,
		ProductName:   f.ProductName,
		ArticleNumber: f.ArticleNumber,
		MinimumCost:   f.MinimumCost,
	}), nil
}

// ProductTypeForm collects a new product type.
type ProductTypeForm struct {
	ProductType string  `form:"product_type" validate:"required"`
	Coefficient float64 `form:"coefficient" validate:"gte=0"`
}

func (f *ProductTypeForm) Set(field, value string) error {
	switch field {
	case "product_type":
		f.ProductType = value
	case "coefficient":
		x, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return types.Invalidf("coefficient must be a number, got %q", value)
		}
		f.Coefficient = x
	default:
		return unknownField(field)
	}
	return nil
}

func (f *ProductTypeForm) Fields() []Field {
	return []Field{
		{"product_type", f.ProductType},
		{"coefficient", strconv.FormatFloat(f.Coefficient, 'f', -1, 64)},
	}
}

// Build validates the form and returns a new product type.
func (f *ProductTypeForm) Build() (*types.ProductType, error) {
	if err := validateForm(f); err != nil {
		return nil, err
	}
	return &types.ProductType{ProductType: f.ProductType, Coefficient: f.Coefficient}, nil
}

func parseInt(field, value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, types.Invalidf("%s must be a whole number, got %q", field, value)
	}
	return n, nil
}

func unknownField(field string) error {
	return types.Invalidf("unknown field %q", field)
}
