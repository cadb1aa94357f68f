// Package cli implements the tradebook command-line interface.
package cli

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/tradebook/internal/logging"
	"github.com/mesh-intelligence/tradebook/internal/metrics"
	"github.com/mesh-intelligence/tradebook/internal/paths"
	"github.com/mesh-intelligence/tradebook/internal/sqlite"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// Exit codes.
const (
	ExitSuccess   = 0
	ExitUserError = 1
	ExitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// session is the state shared by one command invocation: resolved settings,
// the logger and the store metrics.
type session struct {
	flags    rootFlags
	settings settings
	log      *zap.Logger
	metrics  *metrics.StoreMetrics
}

// sysError marks failures of the environment rather than of user input.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemErr(format string, args ...any) error {
	return &sysError{err: fmt.Errorf(format, args...)}
}

// NewRootCmd creates the top-level "tradebook" command with global flags
// and all subcommands registered. Running it without a subcommand starts the
// interactive shell.
func NewRootCmd() *cobra.Command {
	s := &session{log: zap.NewNop(), metrics: metrics.NewStoreMetrics()}

	root := &cobra.Command{
		Use:   "tradebook",
		Short: "Partners, products and sales in one local book",
		Long: "Tradebook keeps business partners, products, product types and sales\n" +
			"in a local SQLite database (or a shared MySQL server).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return s.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = s.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runShell(cmd)
		},
	}

	root.PersistentFlags().StringVar(&s.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&s.flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&s.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&s.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(s),
		newShellCmd(s),
		newPartnerCmd(s),
		newProductCmd(s),
		newProductTypeCmd(s),
		newSaleCmd(s),
		newExportCmd(s),
		newImportCmd(s),
	)
	return root
}

// Execute runs the root command with args and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitCode(err)
}

// exitCode maps a command failure onto an exit code. Environment failures,
// including a store connection lost mid-command, are system errors; bad
// input, missing rows and constraint violations are user errors.
func exitCode(err error) int {
	var sysErr *sysError
	if errors.As(err, &sysErr) || lostConnection(err) {
		return ExitSysError
	}
	return ExitUserError
}

func lostConnection(err error) bool {
	if !types.IsDatabaseError(err) {
		return false
	}
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, mysql.ErrInvalidConn),
		errors.Is(err, types.ErrStoreDetached):
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Main runs the CLI against the process streams.
func Main() int {
	return Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// load resolves configuration and builds the logger.
func (s *session) load() error {
	configDir, err := paths.ResolveConfigDir(s.flags.configDir)
	if err != nil {
		return systemErr("resolve config dir: %w", err)
	}
	st, err := loadSettings(configDir)
	if err != nil {
		return &sysError{err: err}
	}
	if s.flags.logLevel != "" {
		st.LogLevel = s.flags.logLevel
	}
	st.DataDir, err = paths.ResolveDataDir(s.flags.dataDir, st.DataDir)
	if err != nil {
		return systemErr("resolve data dir: %w", err)
	}
	s.settings = st

	log, err := logging.New(logging.Config{Level: st.LogLevel, Format: st.LogFormat})
	if err != nil {
		return systemErr("logger: %w", err)
	}
	s.log = log
	s.log.Debug("configuration loaded",
		zap.String("config_dir", configDir),
		zap.String("backend", st.Backend),
		zap.String("data_dir", st.DataDir),
	)
	return nil
}

// attach opens the configured store. The caller must Detach it.
func (s *session) attach() (*sqlite.Backend, error) {
	b := sqlite.NewBackend(sqlite.WithLogger(s.log), sqlite.WithMetrics(s.metrics))
	if err := b.Attach(s.settings.storeConfig()); err != nil {
		return nil, systemErr("attach store: %w", err)
	}
	return b, nil
}

// withStore runs fn against an attached store and detaches afterwards.
func (s *session) withStore(fn func(store types.Store) error) error {
	b, err := s.attach()
	if err != nil {
		return err
	}
	defer b.Detach()
	return fn(b)
}
