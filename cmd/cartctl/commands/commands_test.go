package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"storefront/cmd/cartctl/commands"
	"storefront/config"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/cart/snapshot"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/blobstore"
	"storefront/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const storedCart = `{
	"store": {"id": "s1", "name": "Slice"},
	"orders": [{
		"item": {"id": "p1", "name": "Pizza", "price": "20.00", "image": null},
		"addons": [{"name": "Olives", "price": "3.00"}],
		"quantity": 2,
		"total": "46.00",
		"store": {"id": "s1", "name": "Slice"}
	}]
}`

func newCLI(t *testing.T, seed string) (*commands.CLI, repository.CartSnapshotRepository, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	repo := blobstore.NewCartSnapshotRepository(memblob.OpenBucket(nil))
	t.Cleanup(func() { _ = repo.Close() })

	if seed != "" {
		require.NoError(t, repo.SaveSnapshot(context.Background(), "cart", []byte(seed)))
	}

	cfg := &config.Config{
		Cart: &config.CartConfig{
			Key:                "cart",
			Currency:           config.CurrencyConfig{Code: "ILS", Symbol: "₪"},
			DefaultDeliveryFee: "2.00",
			RecomputePolicy:    string(cart.RecomputeBasePrice),
			Persistence:        config.PersistenceConfig{WriteTimeout: time.Second},
		},
	}
	cartUC, err := impl.NewCartService(impl.CartServiceParams{Config: cfg, Repo: repo, Logger: slog.Default()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cartUC.Close(context.Background()) })

	fee, err := entity.ParseMoney("2.00")
	require.NoError(t, err)

	cli := commands.New(repo, cartUC, commands.Options{Key: "cart", CurrencySymbol: "₪", DefaultFee: fee})
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cli.SetOutput(stdout, stderr)

	return cli, repo, stdout, stderr
}

func TestCommands_Show(t *testing.T) {
	t.Run("prints lines and checkout totals", func(t *testing.T) {
		cli, _, stdout, _ := newCLI(t, storedCart)
		cli.SetArgs([]string{"show"})

		require.NoError(t, cli.Execute(context.Background()))

		out := stdout.String()
		assert.Contains(t, out, "Store: Slice (s1)")
		assert.Contains(t, out, "Pizza")
		assert.Contains(t, out, "Olives")
		assert.Contains(t, out, "₪ 46.00")
		assert.Contains(t, out, "Delivery: ₪ 2.00")
		assert.Contains(t, out, "Total: ₪ 48.00")
	})

	t.Run("missing slot is an empty cart", func(t *testing.T) {
		cli, _, stdout, _ := newCLI(t, "")
		cli.SetArgs([]string{"show"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, stdout.String(), "Cart is empty")
	})

	t.Run("malformed slot warns and shows empty", func(t *testing.T) {
		cli, _, stdout, stderr := newCLI(t, "not json")
		cli.SetArgs([]string{"show"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, stdout.String(), "Cart is empty")
		assert.Contains(t, stderr.String(), "warning")
	})

	t.Run("json prints the canonical document", func(t *testing.T) {
		cli, _, stdout, _ := newCLI(t, storedCart)
		cli.SetArgs([]string{"show", "--json"})

		require.NoError(t, cli.Execute(context.Background()))

		state, err := snapshot.Decode(stdout.Bytes())
		require.NoError(t, err)
		require.Len(t, state.Lines, 1)
		assert.Equal(t, "46.00", state.Lines[0].Total.String())
	})
}

func TestCommands_Export(t *testing.T) {
	cli, _, stdout, _ := newCLI(t, storedCart)
	path := filepath.Join(t.TempDir(), "cart.json")
	cli.SetArgs([]string{"export", "--output", path})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, stdout.String(), "Exported 1 line(s)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	state, err := snapshot.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.ItemCount(state))
}

func TestCommands_Clear(t *testing.T) {
	t.Run("writes an empty cart", func(t *testing.T) {
		cli, repo, stdout, _ := newCLI(t, storedCart)
		cli.SetArgs([]string{"clear"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, stdout.String(), "Cart cleared")

		raw, err := repo.LoadSnapshot(context.Background(), "cart")
		require.NoError(t, err)
		assert.JSONEq(t, `{"store":null,"orders":[]}`, string(raw))
	})

	t.Run("purge deletes the slot", func(t *testing.T) {
		cli, repo, _, _ := newCLI(t, storedCart)
		cli.SetArgs([]string{"clear", "--purge"})

		require.NoError(t, cli.Execute(context.Background()))

		_, err := repo.LoadSnapshot(context.Background(), "cart")
		assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	})
}

func TestCommands_RejectsArguments(t *testing.T) {
	cli, _, _, _ := newCLI(t, "")
	cli.SetArgs([]string{"show", "extra"})

	assert.Error(t, cli.Execute(context.Background()))
}
