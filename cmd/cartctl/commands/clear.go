package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the persisted cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			purge, _ := cmd.Flags().GetBool("purge")
			ctx := cmd.Context()

			if purge {
				if err := c.repo.DeleteSnapshot(ctx, c.opts.Key); err != nil {
					return err
				}
				cmd.Println("Cart slot deleted")

				return nil
			}

			// Go through the service so the empty snapshot is written exactly as the server writes it.
			if _, err := c.cartUC.Hydrate(ctx); err != nil {
				return err
			}
			if _, err := c.cartUC.ClearCart(ctx); err != nil {
				return err
			}
			if err := c.cartUC.Flush(ctx); err != nil {
				return err
			}
			cmd.Println("Cart cleared")

			return nil
		},
	}

	cmd.Flags().Bool("purge", false, "Delete the snapshot slot instead of writing an empty cart")

	return cmd
}
