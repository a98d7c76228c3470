// Package cli implements the frontdesk command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values shared by all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	variant   string
}

// NewRootCmd creates the top-level "frontdesk" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "frontdesk",
		Short: "Front-desk admin service for a gym or a hospital",
		Long: "Frontdesk runs the REST API behind a gym or hospital admin dashboard,\n" +
			"backed by one SQLite file per variant.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.frontdesk-db)")
	root.PersistentFlags().StringVar(&flags.variant, "variant", "", "application variant: gym or hospital")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(flags))
	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newStatsCmd(flags))
	root.AddCommand(newExportCmd(flags))
	root.AddCommand(newImportCmd(flags))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// cmdError attaches an exit code to an error returned from a command.
type cmdError struct {
	code int
	err  error
}

func (e *cmdError) Error() string { return e.err.Error() }

func (e *cmdError) Unwrap() error { return e.err }

// userError marks err as caused by bad input or configuration.
func userError(err error) error { return &cmdError{code: exitUserError, err: err} }

// sysError marks err as a storage or runtime failure.
func sysError(err error) error { return &cmdError{code: exitSysError, err: err} }

// exitCode returns the process exit code for an error from Execute.
// Errors cobra reports itself (unknown flags and commands) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *cmdError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}
