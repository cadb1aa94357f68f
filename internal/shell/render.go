package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/tradebook/internal/app"
	"github.com/mesh-intelligence/tradebook/internal/nav"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// table writes rows as aligned columns under header, trimming trailing
// padding from every line.
func table(out io.Writer, header []string, rows [][]string) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(rule, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
}

// WritePartners prints partners as a table.
func WritePartners(out io.Writer, partners []*types.Partner) {
	if len(partners) == 0 {
		fmt.Fprintln(out, "No partners found.")
		return
	}
	rows := make([][]string, 0, len(partners))
	for _, p := range partners {
		rows = append(rows, []string{p.ID, p.Label(), p.Director, p.Email, p.Phone, p.INN, strconv.FormatInt(p.Rating, 10)})
	}
	table(out, []string{"ID", "PARTNER", "DIRECTOR", "EMAIL", "PHONE", "INN", "RATING"}, rows)
	fmt.Fprintf(out, "Total: %d partner(s)\n", len(partners))
}

// WriteProducts prints products as a table.
func WriteProducts(out io.Writer, products []*types.Product) {
	if len(products) == 0 {
		fmt.Fprintln(out, "No products found.")
		return
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.ID, p.ProductName, p.ProductType, p.ArticleNumber, strconv.FormatInt(p.MinimumCost, 10)})
	}
	table(out, []string{"ID", "NAME", "TYPE", "ARTICLE", "MIN COST"}, rows)
	fmt.Fprintf(out, "Total: %d product(s)\n", len(products))
}

// WriteProductTypes prints product types as a table.
func WriteProductTypes(out io.Writer, productTypes []*types.ProductType) {
	if len(productTypes) == 0 {
		fmt.Fprintln(out, "No product types found.")
		return
	}
	rows := make([][]string, 0, len(productTypes))
	for _, pt := range productTypes {
		rows = append(rows, []string{pt.ProductType, strconv.FormatFloat(pt.Coefficient, 'f', -1, 64)})
	}
	table(out, []string{"TYPE", "COEFFICIENT"}, rows)
	fmt.Fprintf(out, "Total: %d product type(s)\n", len(productTypes))
}

// WriteSales prints resolved sale rows as a table.
func WriteSales(out io.Writer, sales []app.SaleRow) {
	if len(sales) == 0 {
		fmt.Fprintln(out, "No sales found.")
		return
	}
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{
			s.Sale.ID,
			s.Product,
			strconv.FormatInt(s.Sale.Quantity, 10),
			s.Sale.SaleDate.String(),
			s.Partner,
		})
	}
	table(out, []string{"ID", "PRODUCT", "QUANTITY", "DATE", "PARTNER"}, rows)
	fmt.Fprintf(out, "Total: %d sale(s)\n", len(sales))
}

// writeFrame renders one frame of the presentation loop.
func writeFrame(out io.Writer, fr app.Frame) {
	back, forward := " ", " "
	if fr.CanGoBack {
		back = "<"
	}
	if fr.CanGoForward {
		forward = ">"
	}
	fmt.Fprintf(out, "%s %s  == %s ==\n", back, forward, fr.View.Title())

	switch fr.View {
	case nav.Main:
		for _, v := range nav.AllViews[1:] {
			fmt.Fprintf(out, "  go %s\n", v)
		}
	case nav.Partners:
		WritePartners(out, fr.Partners)
	case nav.Sales:
		WriteSales(out, fr.Sales)
	case nav.Products:
		WriteProducts(out, fr.Products)
		fmt.Fprintln(out)
		WriteProductTypes(out, fr.ProductTypes)
	}

	for _, f := range fr.Forms {
		if !f.Open {
			continue
		}
		fmt.Fprintf(out, "[%s form]\n", f.ID)
		for _, field := range f.Fields {
			fmt.Fprintf(out, "  %s: %s\n", field.Name, field.Value)
		}
	}

	if fr.Error.Visible {
		fmt.Fprintln(out, "[error]")
		for _, line := range strings.Split(fr.Error.Message, "\n") {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
}
