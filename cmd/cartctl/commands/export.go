package commands

import (
	"os"

	"storefront/internal/domain/cart/snapshot"
	"storefront/internal/errors"

	"github.com/spf13/cobra"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the persisted cart as a canonical snapshot document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")

			state, _, err := c.load(cmd)
			if err != nil {
				return err
			}

			data, err := snapshot.Encode(state)
			if err != nil {
				return err
			}

			if output == "" {
				cmd.Println(string(data))

				return nil
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrapf(err, "write %s", output)
			}
			cmd.Printf("Exported %d line(s) to %s\n", len(state.Lines), output)

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "File to write instead of stdout")

	return cmd
}
