package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// CartServiceParams holds dependencies for the cart service, injected by Fx.
type CartServiceParams struct {
	fx.In

	Lc        fx.Lifecycle `optional:"true"`
	Config    *config.Config
	Repo      repository.CartSnapshotRepository
	Publisher service.EventPublisher `optional:"true"`
	Policy    cart.StorePolicy       `optional:"true"`
	Logger    *slog.Logger
}

// cartService owns the single process-wide cart. Mutations are serialised by mu and
// return as soon as the new state is in memory; persistence and event publishing
// happen in the background.
type cartService struct {
	key            string
	opts           cart.Options
	policy         cart.StorePolicy
	defaultFee     entity.Money
	currencySymbol string

	persister *cartPersister
	publisher service.EventPublisher
	logger    *slog.Logger

	mu    sync.Mutex
	state entity.CartState
	ready bool

	// notifyMu is taken before mu is released so subscribers observe states in mutation order.
	notifyMu    sync.Mutex
	subMu       sync.Mutex
	subscribers map[uint64]func(entity.CartState)
	nextSubID   uint64

	events sync.WaitGroup
}

// NewCartService is the constructor for cartService. With a lifecycle it hydrates on
// start and flushes on stop.
func NewCartService(params CartServiceParams) (usecase.CartUsecase, error) {
	cfg := params.Config.Cart
	if cfg == nil {
		return nil, errors.New("cart section is missing from configuration")
	}

	recompute := cart.RecomputePolicy(cfg.RecomputePolicy)
	if !recompute.IsValid() {
		return nil, errors.Errorf("unknown recompute policy: %s", cfg.RecomputePolicy)
	}

	defaultFee, err := entity.ParseMoney(cfg.DefaultDeliveryFee)
	if err != nil {
		return nil, errors.Wrap(err, "invalid default delivery fee")
	}

	policy := params.Policy
	if policy == nil {
		policy = cart.AllowAnyStore
		if cfg.SingleStore {
			policy = cart.RequireSingleStore
		}
	}

	logger := params.Logger.With(slog.String("component", "cart"))

	srv := &cartService{
		key:            cfg.Key,
		opts:           cart.Options{Recompute: recompute},
		policy:         policy,
		defaultFee:     defaultFee,
		currencySymbol: cfg.Currency.Symbol,
		persister:      newCartPersister(params.Repo, cfg.Key, cfg.Persistence.WriteTimeout, logger),
		publisher:      params.Publisher,
		logger:         logger,
		state:          entity.EmptyCart(),
		subscribers:    make(map[uint64]func(entity.CartState)),
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				_, err := srv.Hydrate(ctx)

				return err
			},
			OnStop: srv.Close,
		})
	}

	logger.Info("Cart service configured",
		slog.String("cart_key", cfg.Key),
		slog.String("recompute_policy", string(recompute)),
		slog.Bool("single_store", cfg.SingleStore),
	)

	return srv, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Hydrate replaces the in-memory cart with the persisted one and opens the cart for mutations.
func (srv *cartService) Hydrate(ctx context.Context) (entity.CartState, error) {
	restored := srv.persister.Load(ctx)

	srv.mu.Lock()
	srv.ready = true

	return srv.commitLocked(ctx, cart.HydrateCart{State: restored}, false), nil
}

func (srv *cartService) AddToCart(ctx context.Context, line entity.CartLine) (entity.CartState, error) {
	if line.Quantity <= 0 {
		return entity.CartState{}, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	return srv.apply(ctx, cart.AddLine{Line: line})
}

func (srv *cartService) RemoveFromCart(ctx context.Context, itemID entity.ID) (entity.CartState, error) {
	return srv.apply(ctx, cart.RemoveItem{ItemID: itemID})
}

func (srv *cartService) SetQuantity(ctx context.Context, itemID entity.ID, quantity int) (entity.CartState, error) {
	return srv.apply(ctx, cart.SetQuantity{ItemID: itemID, Quantity: quantity})
}

func (srv *cartService) DecreaseQuantity(ctx context.Context, itemID entity.ID) (entity.CartState, error) {
	return srv.apply(ctx, cart.DecreaseQuantity{ItemID: itemID})
}

func (srv *cartService) ClearCart(ctx context.Context) (entity.CartState, error) {
	return srv.apply(ctx, cart.ClearCart{})
}

func (srv *cartService) apply(ctx context.Context, cmd cart.Command) (entity.CartState, error) {
	srv.mu.Lock()
	if !srv.ready {
		srv.mu.Unlock()

		return entity.CartState{}, domainerrors.ErrCartNotReady
	}

	if add, ok := cmd.(cart.AddLine); ok {
		if err := srv.policy.AllowAdd(srv.state, add.Line); err != nil {
			srv.mu.Unlock()
			srv.log(ctx).Info("Cart add rejected by store policy", slog.Any("error", err))

			return entity.CartState{}, err
		}
	}

	return srv.commitLocked(ctx, cmd, true), nil
}

// commitLocked applies cmd with mu held and releases it before notifying subscribers.
func (srv *cartService) commitLocked(ctx context.Context, cmd cart.Command, persist bool) entity.CartState {
	next := cart.Reduce(srv.state, cmd, srv.opts)
	srv.state = next
	if persist {
		srv.persister.Schedule(next.Clone())
	}

	srv.notifyMu.Lock()
	srv.mu.Unlock()
	srv.notify(next)
	srv.notifyMu.Unlock()

	srv.log(ctx).Debug("Cart updated",
		slog.String("kind", string(cmd.Kind())),
		slog.Int("line_count", len(next.Lines)),
		slog.Int("item_count", cart.ItemCount(next)),
	)
	srv.publish(ctx, cmd.Kind(), next)

	return next.Clone()
}

// notify calls subscribers synchronously. A subscriber must not mutate the cart from
// inside the callback.
func (srv *cartService) notify(state entity.CartState) {
	srv.subMu.Lock()
	subscribers := make([]func(entity.CartState), 0, len(srv.subscribers))
	for _, fn := range srv.subscribers {
		subscribers = append(subscribers, fn)
	}
	srv.subMu.Unlock()

	for _, fn := range subscribers {
		fn(state.Clone())
	}
}

func (srv *cartService) publish(ctx context.Context, kind cart.Kind, state entity.CartState) {
	if srv.publisher == nil {
		return
	}

	event := &service.CartEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		CartKey:    srv.key,
		Kind:       string(kind),
		LineCount:  len(state.Lines),
		ItemCount:  cart.ItemCount(state),
		GrandTotal: cart.GrandTotal(state).String(),
		OccurredAt: time.Now().UTC(),
	}
	if state.Store != nil {
		event.StoreID = state.Store.ID.String()
	}

	logger := srv.log(ctx)
	publishCtx := context.WithoutCancel(ctx)

	srv.events.Add(1)
	go func() {
		defer srv.events.Done()

		ctx, cancel := context.WithTimeout(publishCtx, lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.publisher.PublishCartEvent(ctx, event); err != nil {
			logger.Warn("Failed to publish cart event",
				slog.Any("error", err),
				slog.String("event_id", event.EventID),
				slog.String("kind", event.Kind),
			)
		}
	}()
}

func (srv *cartService) State() entity.CartState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state.Clone()
}

func (srv *cartService) Summary() usecase.CartSummary {
	state := srv.State()
	total := cart.GrandTotal(state)

	return usecase.CartSummary{
		ItemCount:      cart.ItemCount(state),
		LineCount:      len(state.Lines),
		GrandTotal:     total,
		FormattedTotal: util.FormatCurrency(total, srv.currencySymbol),
		Visible:        cart.IsVisible(state),
		Store:          state.Store,
		Fingerprint:    cart.Fingerprint(state),
	}
}

func (srv *cartService) Stores() []entity.Store {
	return cart.GroupByStore(srv.State())
}

func (srv *cartService) HasConflictingStore(storeID entity.ID) bool {
	return cart.HasConflictingStore(srv.State(), storeID)
}

func (srv *cartService) Checkout() cart.Checkout {
	return cart.CheckoutSummary(srv.State(), srv.defaultFee)
}

func (srv *cartService) Subscribe(fn func(entity.CartState)) func() {
	srv.subMu.Lock()
	id := srv.nextSubID
	srv.nextSubID++
	srv.subscribers[id] = fn
	srv.subMu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			srv.subMu.Lock()
			delete(srv.subscribers, id)
			srv.subMu.Unlock()
		})
	}
}

// Flush waits for in-flight event publishes and the latest snapshot write.
func (srv *cartService) Flush(ctx context.Context) error {
	published := make(chan struct{})
	go func() {
		srv.events.Wait()
		close(published)
	}()

	select {
	case <-published:
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "wait for cart events")
	}

	return srv.persister.Flush(ctx)
}

// Close flushes and stops the persister. Mutations after Close are kept in memory only.
func (srv *cartService) Close(ctx context.Context) error {
	srv.logger.Info("Flushing cart before shutdown")

	if err := srv.Flush(ctx); err != nil {
		srv.logger.Warn("Cart flush incomplete", slog.Any("error", err))
	}

	return srv.persister.Stop(ctx)
}
