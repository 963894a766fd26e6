package cli

import (
	"fmt"
	"strings"

	"github.com/rcliao/contacts/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search saved contacts",
		Long:  "Print saved contacts whose line contains the term. Matching is case-sensitive.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	results, err := store.Search(cmd.Context(), e.storage, term)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No matches found.")
		return nil
	}
	for _, r := range results {
		fmt.Fprintln(out, r)
	}
	return nil
}
