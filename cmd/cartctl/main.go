// Package main is the entry point for cartctl.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"storefront/cmd/cartctl/commands"
	"storefront/config"
	"storefront/internal/domain/entity"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/usecase/impl"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())

		return 1
	}

	// Logs go to stderr so stdout stays machine readable.
	logger, err := logs.New(logs.Params{Config: cfg, Output: stderr})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())

		return 1
	}

	defaultFee, err := entity.ParseMoney(cfg.Cart.DefaultDeliveryFee)
	if err != nil {
		logger.Error("Invalid default delivery fee", slog.Any("error", err))

		return 1
	}

	repo, err := persistence.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open cart storage", slog.Any("error", err))

		return 1
	}
	defer func() { _ = repo.Close() }()

	cartUC, err := impl.NewCartService(impl.CartServiceParams{
		Config: cfg,
		Repo:   repo,
		Logger: logger,
	})
	if err != nil {
		logger.Error("Failed to create cart service", slog.Any("error", err))

		return 1
	}
	defer func() { _ = cartUC.Close(context.WithoutCancel(ctx)) }()

	cli := commands.New(repo, cartUC, commands.Options{
		Key:            cfg.Cart.Key,
		CurrencySymbol: cfg.Cart.Currency.Symbol,
		DefaultFee:     defaultFee,
	})
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		logger.Error("Command failed", slog.Any("error", err))

		return 1
	}

	return 0
}
