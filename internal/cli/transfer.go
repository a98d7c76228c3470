package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/frontdesk/internal/sqlite"
	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Export every table of the variant to JSONL files",
		Long:  "Write one <table>.jsonl file per table of the configured variant into dir.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd.Context(), flags, func(ctx context.Context, b *sqlite.Backend, _ *settings) error {
				report, err := b.Export(ctx, args[0])
				if err != nil {
					return sysError(err)
				}
				printReport(cmd.OutOrStdout(), "Exported", b.Variant(), report)
				return nil
			})
		},
	}
}

func newImportCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <dir>",
		Short: "Replace the variant's data with JSONL files",
		Long: "Delete every row of the configured variant and load <table>.jsonl files\n" +
			"from dir in one transaction. A table without a file is left empty.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd.Context(), flags, func(ctx context.Context, b *sqlite.Backend, _ *settings) error {
				report, err := b.Import(ctx, args[0])
				if err != nil {
					return sysError(err)
				}
				printReport(cmd.OutOrStdout(), "Imported", b.Variant(), report)
				return nil
			})
		},
	}
}

// printReport writes one line per table in dependency order.
func printReport(w io.Writer, verb, variant string, report sqlite.TransferReport) {
	for _, table := range types.VariantTables[variant] {
		fmt.Fprintf(w, "%s %d %s rows\n", verb, report[table], table)
	}
}
