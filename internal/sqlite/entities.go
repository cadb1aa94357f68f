package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/tradebook/pkg/types"
)

var partnerEntity = entity[*types.Partner]{
	name: types.PartnersTable,
	key:  "id",
	columns: []string{
		"partner_type", "partner_name", "director", "email", "phone",
		"legal_address", "inn", "rating", "id",
	},
	values: func(p *types.Partner) ([]any, error) {
		if p == nil {
			return nil, types.ErrInvalidRecord
		}
		return []any{
			p.PartnerType, p.PartnerName, p.Director, p.Email, p.Phone,
			p.LegalAddress, p.INN, p.Rating, p.ID,
		}, nil
	},
	scan: func(row rowScanner) (*types.Partner, error) {
		var p types.Partner
		err := row.Scan(
			&p.PartnerType, &p.PartnerName, &p.Director, &p.Email, &p.Phone,
			&p.LegalAddress, &p.INN, &p.Rating, &p.ID,
		)
		if err != nil {
			return nil, err
		}
		return &p, nil
	},
}

var productTypeEntity = entity[*types.ProductType]{
	name:    types.ProductTypesTable,
	key:     "product_type",
	columns: []string{"product_type", "coefficient"},
	values: func(pt *types.ProductType) ([]any, error) {
		if pt == nil {
			return nil, types.ErrInvalidRecord
		}
		return []any{pt.ProductType, pt.Coefficient}, nil
	},
	scan: func(row rowScanner) (*types.ProductType, error) {
		var pt types.ProductType
		if err := row.Scan(&pt.ProductType, &pt.Coefficient); err != nil {
			return nil, err
		}
		return &pt, nil
	},
}

var productEntity = entity[*types.Product]{
	name: types.ProductsTable,
	key:  "id",
	columns: []string{
		"product_type", "product_name", "article_number", "minimum_cost", "id",
	},
	values: func(p *types.Product) ([]any, error) {
		if p == nil {
			return nil, types.ErrInvalidRecord
		}
		return []any{p.ProductType, p.ProductName, p.ArticleNumber, p.MinimumCost, p.ID}, nil
	},
	scan: func(row rowScanner) (*types.Product, error) {
		var p types.Product
		if err := row.Scan(&p.ProductType, &p.ProductName, &p.ArticleNumber, &p.MinimumCost, &p.ID); err != nil {
			return nil, err
		}
		return &p, nil
	},
}

var saleEntity = entity[*types.Sale]{
	name: types.SalesTable,
	key:  "id",
	columns: []string{
		"product_id", "quantity", "sale_date", "partner_id", "id",
	},
	values: func(s *types.Sale) ([]any, error) {
		if s == nil {
			return nil, types.ErrInvalidRecord
		}
		if err := s.SaleDate.Check(); err != nil {
			return nil, fmt.Errorf("sale %s: %w", s.ID, err)
		}
		return []any{s.ProductID, s.Quantity, s.SaleDate, s.PartnerID, s.ID}, nil
	},
	scan: func(row rowScanner) (*types.Sale, error) {
		var s types.Sale
		if err := row.Scan(&s.ProductID, &s.Quantity, &s.SaleDate, &s.PartnerID, &s.ID); err != nil {
			return nil, err
		}
		return &s, nil
	},
}
