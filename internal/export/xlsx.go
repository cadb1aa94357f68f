package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// sheet is one table rendered as spreadsheet rows.
type sheet struct {
	name   string
	header []string
	rows   [][]any
}

func sheets(s Snapshot) []sheet {
	partners := sheet{
		name:   types.PartnersTable,
		header: []string{"id", "partner_type", "partner_name", "director", "email", "phone", "legal_address", "inn", "rating"},
	}
	for _, p := range s.Partners {
		partners.rows = append(partners.rows, []any{p.ID, p.PartnerType, p.PartnerName, p.Director, p.Email, p.Phone, p.LegalAddress, p.INN, p.Rating})
	}

	productTypes := sheet{
		name:   types.ProductTypesTable,
		header: []string{"product_type", "coefficient"},
	}
	for _, pt := range s.ProductTypes {
		productTypes.rows = append(productTypes.rows, []any{pt.ProductType, pt.Coefficient})
	}

	products := sheet{
		name:   types.ProductsTable,
		header: []string{"id", "product_type", "product_name", "article_number", "minimum_cost"},
	}
	for _, p := range s.Products {
		products.rows = append(products.rows, []any{p.ID, p.ProductType, p.ProductName, p.ArticleNumber, p.MinimumCost})
	}

	sales := sheet{
		name:   types.SalesTable,
		header: []string{"id", "product_id", "quantity", "sale_date", "partner_id"},
	}
	for _, sale := range s.Sales {
		sales.rows = append(sales.rows, []any{sale.ID, sale.ProductID, sale.Quantity, sale.SaleDate.String(), sale.PartnerID})
	}

	return []sheet{partners, productTypes, products, sales}
}

// WriteXLSX writes s to a workbook at path with one sheet per table. The
// first row of every sheet holds the column names.
func WriteXLSX(path string, s Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, sh := range sheets(s) {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sh.name); err != nil {
				return fmt.Errorf("naming sheet %s: %w", sh.name, err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return fmt.Errorf("adding sheet %s: %w", sh.name, err)
		}

		header := make([]any, len(sh.header))
		for j, h := range sh.header {
			header[j] = h
		}
		if err := setRow(f, sh.name, 1, header); err != nil {
			return err
		}
		for j, row := range sh.rows {
			if err := setRow(f, sh.name, j+2, row); err != nil {
				return err
			}
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheetName string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheetName, row, err)
	}
	return nil
}
