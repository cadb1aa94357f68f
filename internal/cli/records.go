package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tradebook/internal/app"
	"github.com/mesh-intelligence/tradebook/internal/shell"
	"github.com/mesh-intelligence/tradebook/internal/views"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// recordKind describes how the CLI handles one record type.
type recordKind[T any] struct {
	use     string
	plural  string
	fields  string
	table   func(types.Store) types.Table[T]
	build   func(ctx context.Context, store types.Store, pairs []pair) (T, error)
	key     func(T) string
	display func(ctx context.Context, store types.Store, out io.Writer, recs []T)
}

// pair is one field=value argument.
type pair struct {
	field string
	value string
}

func parsePairs(args []string) ([]pair, error) {
	out := make([]pair, 0, len(args))
	for _, arg := range args {
		field, value, ok := strings.Cut(arg, "=")
		if !ok || field == "" {
			return nil, types.Invalidf("invalid field %q (expected field=value)", arg)
		}
		out = append(out, pair{field: field, value: value})
	}
	return out, nil
}

// fill applies pairs to form. Fields named in refs are resolved against the
// store instead of being parsed.
func fill(form views.Form, pairs []pair, refs map[string]func(key string) error) error {
	for _, p := range pairs {
		if resolve, ok := refs[p.field]; ok {
			if err := resolve(p.value); err != nil {
				return fmt.Errorf("%s %q: %w", p.field, p.value, err)
			}
			continue
		}
		if err := form.Set(p.field, p.value); err != nil {
			return err
		}
	}
	return nil
}

func newRecordCmd[T any](s *session, k recordKind[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   k.use,
		Short: fmt.Sprintf("Manage %s", k.plural),
	}

	add := &cobra.Command{
		Use:   "add field=value...",
		Short: fmt.Sprintf("Create one of the %s", k.plural),
		Long:  fmt.Sprintf("Add creates a record from field=value pairs.\n\nFields: %s", k.fields),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parsePairs(args)
			if err != nil {
				return err
			}
			return s.withStore(func(store types.Store) error {
				ctx := cmd.Context()
				rec, err := k.build(ctx, store, pairs)
				if err != nil {
					return err
				}
				if err := k.table(store).Create(ctx, rec); err != nil {
					return err
				}
				return output(s, ctx, store, cmd.OutOrStdout(), k, []T{rec}, "Created "+k.key(rec))
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List all %s", k.plural),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStore(func(store types.Store) error {
				ctx := cmd.Context()
				recs, err := k.table(store).GetAll(ctx)
				if err != nil {
					return err
				}
				return output(s, ctx, store, cmd.OutOrStdout(), k, recs, "")
			})
		},
	}

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStore(func(store types.Store) error {
				ctx := cmd.Context()
				rec, err := k.table(store).Get(ctx, args[0])
				if err != nil {
					return err
				}
				return output(s, ctx, store, cmd.OutOrStdout(), k, []T{rec}, "")
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete one record; a missing key is not an error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withStore(func(store types.Store) error {
				if err := k.table(store).Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				if !s.flags.jsonMode {
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				}
				return nil
			})
		},
	}

	cmd.AddCommand(add, list, get, del)
	return cmd
}

// output writes recs as JSON in --json mode, otherwise as a table preceded by
// an optional status line.
func output[T any](s *session, ctx context.Context, store types.Store, out io.Writer, k recordKind[T], recs []T, status string) error {
	if s.flags.jsonMode {
		if recs == nil {
			recs = []T{}
		}
		data, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", k.plural, err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	if status != "" {
		fmt.Fprintln(out, status)
	}
	k.display(ctx, store, out, recs)
	return nil
}

func newPartnerCmd(s *session) *cobra.Command {
	return newRecordCmd(s, recordKind[*types.Partner]{
		use:    "partner",
		plural: "partners",
		fields: "partner_name partner_type director email phone legal_address inn rating",
		table:  types.Store.Partners,
		build: func(_ context.Context, _ types.Store, pairs []pair) (*types.Partner, error) {
			f := &views.PartnerForm{}
			if err := fill(f, pairs, nil); err != nil {
				return nil, err
			}
			return f.Build()
		},
		key: func(p *types.Partner) string { return p.ID },
		display: func(_ context.Context, _ types.Store, out io.Writer, recs []*types.Partner) {
			shell.WritePartners(out, recs)
		},
	})
}

func newProductTypeCmd(s *session) *cobra.Command {
	return newRecordCmd(s, recordKind[*types.ProductType]{
		use:    "product-type",
		plural: "product types",
		fields: "product_type coefficient",
		table:  types.Store.ProductTypes,
		build: func(_ context.Context, _ types.Store, pairs []pair) (*types.ProductType, error) {
			f := &views.ProductTypeForm{}
			if err := fill(f, pairs, nil); err != nil {
				return nil, err
			}
			return f.Build()
		},
		key: func(pt *types.ProductType) string { return pt.ProductType },
		display: func(_ context.Context, _ types.Store, out io.Writer, recs []*types.ProductType) {
			shell.WriteProductTypes(out, recs)
		},
	})
}

func newProductCmd(s *session) *cobra.Command {
	return newRecordCmd(s, recordKind[*types.Product]{
		use:    "product",
		plural: "products",
		fields: "product_type (name of an existing type) product_name article_number minimum_cost",
		table:  types.Store.Products,
		build: func(ctx context.Context, store types.Store, pairs []pair) (*types.Product, error) {
			f := &views.ProductForm{}
			refs := map[string]func(string) error{
				"product_type": func(key string) (err error) {
					f.ProductType, err = store.ProductTypes().Get(ctx, key)
					return err
				},
			}
			if err := fill(f, pairs, refs); err != nil {
				return nil, err
			}
			return f.Build()
		},
		key: func(p *types.Product) string { return p.ID },
		display: func(_ context.Context, _ types.Store, out io.Writer, recs []*types.Product) {
			shell.WriteProducts(out, recs)
		},
	})
}

func newSaleCmd(s *session) *cobra.Command {
	return newRecordCmd(s, recordKind[*types.Sale]{
		use:    "sale",
		plural: "sales",
		fields: "product (product id) partner (partner id) quantity date (YYYY-MM-DD) year day",
		table:  types.Store.Sales,
		build: func(ctx context.Context, store types.Store, pairs []pair) (*types.Sale, error) {
			f := views.NewSaleForm(time.Now())
			refs := map[string]func(string) error{
				"product": func(key string) (err error) {
					f.Product, err = store.Products().Get(ctx, key)
					return err
				},
				"partner": func(key string) (err error) {
					f.Partner, err = store.Partners().Get(ctx, key)
					return err
				},
			}
			if err := fill(f, pairs, refs); err != nil {
				return nil, err
			}
			return f.Build()
		},
		key: func(sale *types.Sale) string { return sale.ID },
		display: func(ctx context.Context, store types.Store, out io.Writer, recs []*types.Sale) {
			shell.WriteSales(out, app.ResolveSales(ctx, store, recs))
		},
	})
}
