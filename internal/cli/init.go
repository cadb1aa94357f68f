package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tradebook/pkg/types"
)

func newInitCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and the database schema",
		Long:  "Init writes a default config.yaml if none exists, then attaches to the\nconfigured store so every table is created.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := s.withStore(func(types.Store) error { return nil })
			if err != nil {
				return err
			}
			where := s.settings.DataDir
			if s.settings.Backend == types.BackendMySQL {
				where = "mysql"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tradebook initialized (%s)\n", where)
			return nil
		},
	}
}
