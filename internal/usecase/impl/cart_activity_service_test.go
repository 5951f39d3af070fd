package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartEvent(id, kind string, at time.Time) *service.CartEvent {
	return &service.CartEvent{
		EventID:    id,
		CartKey:    "cart",
		Kind:       kind,
		ItemCount:  1,
		GrandTotal: "23.00",
		OccurredAt: at,
	}
}

func TestCartActivityService_Record(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("keeps the newest event per cart", func(t *testing.T) {
		svc := NewCartActivityService(CartActivityServiceParams{Logger: slog.Default()})

		applied, err := svc.Record(ctx, cartEvent("e1", "add", base))
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = svc.Record(ctx, cartEvent("e2", "clear", base.Add(time.Second)))
		require.NoError(t, err)
		assert.True(t, applied)

		latest, ok := svc.Latest("cart")
		require.True(t, ok)
		assert.Equal(t, "e2", latest.EventID)
	})

	t.Run("ignores redelivery and stale events", func(t *testing.T) {
		svc := NewCartActivityService(CartActivityServiceParams{Logger: slog.Default()})

		_, err := svc.Record(ctx, cartEvent("e2", "add", base.Add(time.Second)))
		require.NoError(t, err)

		applied, err := svc.Record(ctx, cartEvent("e2", "add", base.Add(time.Second)))
		require.NoError(t, err)
		assert.False(t, applied)

		applied, err = svc.Record(ctx, cartEvent("e1", "add", base))
		require.NoError(t, err)
		assert.False(t, applied)

		latest, _ := svc.Latest("cart")
		assert.Equal(t, "e2", latest.EventID)
	})

	t.Run("rejects incomplete events", func(t *testing.T) {
		svc := NewCartActivityService(CartActivityServiceParams{Logger: slog.Default()})

		_, err := svc.Record(ctx, &service.CartEvent{Kind: "add"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, ok := svc.Latest("cart")
		assert.False(t, ok)
	})

	t.Run("latest returns a copy", func(t *testing.T) {
		svc := NewCartActivityService(CartActivityServiceParams{Logger: slog.Default()})
		_, err := svc.Record(ctx, cartEvent("e1", "add", base))
		require.NoError(t, err)

		latest, _ := svc.Latest("cart")
		latest.Kind = "mutated"

		again, _ := svc.Latest("cart")
		assert.Equal(t, "add", again.Kind)
	})
}
