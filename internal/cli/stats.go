package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/frontdesk/internal/sqlite"
	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

func newStatsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the variant's statistics as JSON",
		Long:  "Compute the same aggregates served under /api/stats and print them as one JSON object.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBackend(cmd.Context(), flags, func(ctx context.Context, b *sqlite.Backend, _ *settings) error {
				report, err := collectStats(ctx, b)
				if err != nil {
					return sysError(err)
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			})
		},
	}
}

// statSource is one named aggregate of a variant.
type statSource struct {
	name string
	get  func(context.Context) (any, error)
}

// collectStats runs every aggregate of the backend's variant. Keys match the
// /api/stats route names with dashes replaced by underscores.
func collectStats(ctx context.Context, b *sqlite.Backend) (map[string]any, error) {
	var sources []statSource
	switch b.Variant() {
	case types.VariantGym:
		sources = []statSource{
			{"memberships", func(ctx context.Context) (any, error) { return b.MembershipStats(ctx) }},
			{"membership_types", func(ctx context.Context) (any, error) { return b.MembershipTypes(ctx) }},
			{"attendance", func(ctx context.Context) (any, error) { return b.AttendanceStats(ctx) }},
			{"expiring_memberships", func(ctx context.Context) (any, error) { return b.ExpiringMemberships(ctx) }},
		}
	case types.VariantHospital:
		sources = []statSource{
			{"patients", func(ctx context.Context) (any, error) { return b.PatientStats(ctx) }},
			{"diseases", func(ctx context.Context) (any, error) { return b.DiseaseDistribution(ctx) }},
			{"checkins", func(ctx context.Context) (any, error) { return b.CheckinStats(ctx) }},
			{"doctors", func(ctx context.Context) (any, error) { return b.DoctorLoads(ctx) }},
		}
	}

	report := make(map[string]any, len(sources)+1)
	report["variant"] = b.Variant()
	for _, src := range sources {
		v, err := src.get(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s stats: %w", src.name, err)
		}
		report[src.name] = v
	}
	return report, nil
}
