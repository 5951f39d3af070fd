package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// CartActivityUsecase keeps the latest known activity of every cart from the event stream.
type CartActivityUsecase interface {
	// Record applies a delivered event. It reports false for a redelivery or for an event
	// older than the one already recorded for the cart.
	Record(ctx context.Context, event *service.CartEvent) (bool, error)

	// Latest returns the most recent event recorded for the cart key.
	Latest(cartKey string) (*service.CartEvent, bool)
}
