package impl

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// CartActivityServiceParams holds dependencies for the cart activity service, injected by Fx.
type CartActivityServiceParams struct {
	fx.In

	Logger *slog.Logger
}

type cartActivityService struct {
	logger *slog.Logger

	mu     sync.RWMutex
	latest map[string]*service.CartEvent
}

// NewCartActivityService creates the in-memory activity view fed by pushed cart events.
func NewCartActivityService(params CartActivityServiceParams) usecase.CartActivityUsecase {
	return &cartActivityService{
		logger: params.Logger,
		latest: make(map[string]*service.CartEvent),
	}
}

func (s *cartActivityService) Record(ctx context.Context, event *service.CartEvent) (bool, error) {
	if event == nil || event.EventID == "" || event.CartKey == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("event_id and cart_key are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Pub/Sub delivers at least once and ordering only holds per key within a region.
	if current, ok := s.latest[event.CartKey]; ok {
		if current.EventID == event.EventID || event.OccurredAt.Before(current.OccurredAt) {
			return false, nil
		}
	}

	recorded := *event
	s.latest[event.CartKey] = &recorded

	s.logger.DebugContext(ctx, "Cart activity recorded",
		slog.String("cart_key", event.CartKey),
		slog.String("kind", event.Kind),
		slog.Int("item_count", event.ItemCount),
	)

	return true, nil
}

func (s *cartActivityService) Latest(cartKey string) (*service.CartEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.latest[cartKey]
	if !ok {
		return nil, false
	}
	out := *event

	return &out, true
}
