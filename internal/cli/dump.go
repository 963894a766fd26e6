package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print saved contacts",
		Long:  "Print the contacts last saved to storage, one per line. Use --json for a JSON array.",
		Args:  cobra.NoArgs,
		RunE:  runDump,
	}

	cmd.Flags().Bool("json", false, "Output as a JSON array")

	RootCmd.AddCommand(cmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	lines, err := e.storage.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		b, _ := json.MarshalIndent(lines, "", "  ")
		fmt.Fprintln(out, string(b))
		return nil
	}
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}
