package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tradebook/internal/export"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

func newExportCmd(s *session) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every table to JSONL files or an XLSX workbook",
		Long: `Export dumps the whole store.

  --format jsonl   one <table>.jsonl file per table inside the --out directory
  --format xlsx    one sheet per table in the --out workbook

Example:
  tradebook export --out backup/
  tradebook export --format xlsx --out tradebook.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != export.FormatJSONL && format != export.FormatXLSX {
				return types.Invalidf("unknown format %q (valid: jsonl, xlsx)", format)
			}
			return s.withStore(func(store types.Store) error {
				snap, err := export.Load(cmd.Context(), store)
				if err != nil {
					return err
				}
				if format == export.FormatXLSX {
					err = export.WriteXLSX(out, snap)
				} else {
					err = export.WriteJSONL(out, snap)
				}
				if err != nil {
					return systemErr("export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d record(s) to %s\n", snap.Len(), out)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", export.FormatJSONL, "output format: jsonl or xlsx")
	cmd.Flags().StringVar(&out, "out", "", "output directory (jsonl) or file (xlsx)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newImportCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "import <dir>",
		Short: "Create the records of a JSONL export",
		Long: `Import reads the <table>.jsonl files written by export and creates every
record. It stops at the first record that cannot be created.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := export.ReadJSONL(args[0])
			if err != nil {
				return err
			}
			return s.withStore(func(store types.Store) error {
				n, err := export.Restore(cmd.Context(), store, snap)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported %d of %d record(s)\n", n, snap.Len())
				if snap.Skipped > 0 {
					fmt.Fprintf(out, "Skipped %d malformed line(s)\n", snap.Skipped)
				}
				return err
			})
		},
	}
}
