package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tradebook/internal/app"
	"github.com/mesh-intelligence/tradebook/internal/shell"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

func newShellCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Browse and edit records interactively",
		Long: `Shell starts the interactive session on the main menu. Type help for the
list of commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runShell(cmd)
		},
	}
}

func (s *session) runShell(cmd *cobra.Command) error {
	return s.withStore(func(store types.Store) error {
		a := app.New(store, app.WithLogger(s.log))
		sh := shell.New(a, cmd.InOrStdin(), cmd.OutOrStdout(), shell.WithMetrics(s.metrics))
		return sh.Run(cmd.Context())
	})
}
