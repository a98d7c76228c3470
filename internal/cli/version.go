package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/frontdesk/pkg/frontdesk"
)

const modulePath = "github.com/mesh-intelligence/frontdesk"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the frontdesk version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "frontdesk v%s\nmodule: %s\n", frontdesk.Version, modulePath)
			return nil
		},
	}
}
