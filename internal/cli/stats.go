package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/contacts/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show storage statistics",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	stats, err := store.Collect(cmd.Context(), e.storage, e.cfg.Backend, e.cfg.Path)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
