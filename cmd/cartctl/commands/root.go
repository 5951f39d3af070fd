// Package commands implements the cartctl maintenance commands.
package commands

import (
	"context"
	"io"

	"storefront/internal/domain/cart/snapshot"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/spf13/cobra"
)

// Options carries the cart settings the commands render with.
type Options struct {
	Key            string
	CurrencySymbol string
	DefaultFee     entity.Money
}

// CLI represents the cartctl command line interface.
type CLI struct {
	repo    repository.CartSnapshotRepository
	cartUC  usecase.CartUsecase
	opts    Options
	rootCmd *cobra.Command
}

// New creates a new CLI over the snapshot slot and the cart service that owns it.
func New(repo repository.CartSnapshotRepository, cartUC usecase.CartUsecase, opts Options) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cartctl",
		Short:         "Inspect and maintain the persisted storefront cart",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		repo:    repo,
		cartUC:  cartUC,
		opts:    opts,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newClearCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)

	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// load reads the slot the same way the service does on start: a missing or malformed
// snapshot is an empty cart. The raw size is returned for display.
func (c *CLI) load(cmd *cobra.Command) (entity.CartState, int, error) {
	raw, err := c.repo.LoadSnapshot(cmd.Context(), c.opts.Key)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		return entity.EmptyCart(), 0, nil
	}
	if err != nil {
		return entity.CartState{}, 0, errors.Wrapf(err, "load snapshot %q", c.opts.Key)
	}

	state, err := snapshot.Decode(raw)
	if err != nil {
		cmd.PrintErrf("warning: %v; treating the cart as empty\n", err)

		return entity.EmptyCart(), len(raw), nil
	}

	return state, len(raw), nil
}
