package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/cart/snapshot"
	"storefront/internal/domain/entity"
	"storefront/internal/util"

	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the persisted cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			state, size, err := c.load(cmd)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := snapshot.Encode(state)
				if err != nil {
					return err
				}
				cmd.Println(string(data))

				return nil
			}

			return c.printCart(cmd.OutOrStdout(), state, size)
		},
	}

	cmd.Flags().Bool("json", false, "Print the canonical snapshot document instead of a table")

	return cmd
}

func (c *CLI) printCart(out io.Writer, state entity.CartState, size int) error {
	if state.IsEmpty() {
		_, err := fmt.Fprintln(out, "Cart is empty")

		return err
	}

	if state.Store != nil {
		if _, err := fmt.Fprintf(out, "Store: %s (%s)\n", state.Store.Name, state.Store.ID); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tQTY\tADD-ONS\tTOTAL")
	for _, line := range state.Lines {
		names := make([]string, 0, len(line.Addons))
		for _, a := range line.Addons {
			names = append(names, a.CanonicalKey())
		}
		addons := strings.Join(names, ", ")
		if addons == "" {
			addons = "-"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			line.Item.Name,
			strconv.Itoa(line.Quantity),
			addons,
			util.FormatCurrency(line.Total, c.opts.CurrencySymbol),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	checkout := cart.CheckoutSummary(state, c.opts.DefaultFee)
	_, err := fmt.Fprintf(out, "Items: %d  Subtotal: %s  Delivery: %s  Total: %s\nFingerprint: %s  Snapshot: %s\n",
		checkout.ItemCount,
		util.FormatCurrency(checkout.Subtotal, c.opts.CurrencySymbol),
		util.FormatCurrency(checkout.DeliveryFee, c.opts.CurrencySymbol),
		util.FormatCurrency(checkout.Total, c.opts.CurrencySymbol),
		cart.Fingerprint(state),
		util.FormatBytes(int64(size)),
	)

	return err
}
