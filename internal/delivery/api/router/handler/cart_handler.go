package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/cart"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	headerETag        = "ETag"
	headerIfNoneMatch = "If-None-Match"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler exposes the cart operations and derived views.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// StoreRequest is the store snapshot attached to a line
type StoreRequest struct {
	ID          entity.ID     `json:"id" validate:"required"`
	Name        string        `json:"name"`
	LogoURL     string        `json:"logo_url"`
	DeliveryFee *entity.Money `json:"delivery_fee"`
	ETAMinutes  *int          `json:"eta_minutes" validate:"omitempty,gte=0"`
	Area        string        `json:"area"`
}

// ItemRequest is the catalog item snapshot
type ItemRequest struct {
	ID    entity.ID    `json:"id" validate:"required"`
	Name  string       `json:"name" validate:"required"`
	Price entity.Money `json:"price"`
	Image *string      `json:"image"`
}

// AddonRequest is one selected add-on; either id or name identifies it
type AddonRequest struct {
	ID    entity.ID    `json:"id"`
	Name  string       `json:"name" validate:"required_without=ID"`
	Price entity.Money `json:"price"`
}

// AddLineRequest represents the request body for adding a configured item
type AddLineRequest struct {
	Item     ItemRequest    `json:"item"`
	Addons   []AddonRequest `json:"addons" validate:"dive"`
	Quantity int            `json:"quantity" validate:"gte=1"`
	Total    *entity.Money  `json:"total"`
	Store    *StoreRequest  `json:"store"`
}

// SetQuantityRequest represents the request body for replacing a quantity
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartResponse is the cart as returned by every cart endpoint
type CartResponse struct {
	Store      *entity.Store     `json:"store"`
	Lines      []entity.CartLine `json:"lines"`
	ItemCount  int               `json:"item_count"`
	GrandTotal entity.Money      `json:"grand_total"`
	Visible    bool              `json:"visible"`
}

// ConflictResponse tells the store page whether to show the "cart belongs to another store" banner
type ConflictResponse struct {
	Conflict  bool          `json:"conflict"`
	CartStore *entity.Store `json:"cart_store"`
	LineCount int           `json:"line_count"`
}

// GetCart returns the cart. It honours If-None-Match against the cart fingerprint.
func (h *CartHandler) GetCart(c echo.Context) error {
	state := h.cartUC.State()
	etag := `"` + cart.Fingerprint(state) + `"`
	c.Response().Header().Set(headerETag, etag)

	if match := c.Request().Header.Get(headerIfNoneMatch); match != "" && match == etag {
		return c.NoContent(http.StatusNotModified)
	}

	return response.Success(c, http.StatusOK, toCartResponse(state))
}

// GetSummary returns the cart bar aggregates
func (h *CartHandler) GetSummary(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartUC.Summary())
}

// GetStores returns the distinct stores in the cart
func (h *CartHandler) GetStores(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartUC.Stores())
}

// GetCheckout returns the checkout price breakdown
func (h *CartHandler) GetCheckout(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartUC.Checkout())
}

// GetConflict reports whether the cart was started from a store other than store_id
func (h *CartHandler) GetConflict(c echo.Context) error {
	storeID := c.QueryParam("store_id")
	if storeID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "store_id is required")
	}

	state := h.cartUC.State()

	return response.Success(c, http.StatusOK, ConflictResponse{
		Conflict:  cart.HasConflictingStore(state, entity.ID(storeID)),
		CartStore: state.Store,
		LineCount: len(state.Lines),
	})
}

// AddLine handles adding a configured item
func (h *CartHandler) AddLine(c echo.Context) error {
	var req AddLineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart line input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	line, err := req.toLine()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.cartUC.AddToCart(c.Request().Context(), line)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(state))
}

// RemoveLine removes every line for the item
func (h *CartHandler) RemoveLine(c echo.Context) error {
	state, err := h.cartUC.RemoveFromCart(c.Request().Context(), entity.ID(c.Param("itemId")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(state))
}

// SetQuantity replaces the quantity of the item's lines; zero or less removes them
func (h *CartHandler) SetQuantity(c echo.Context) error {
	itemID := entity.ID(c.Param("itemId"))

	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	if !h.inCart(itemID) {
		return response.HandleAppError(c, domainerrors.ErrLineNotFound.WithDetails(itemID.String()))
	}

	state, err := h.cartUC.SetQuantity(c.Request().Context(), itemID, *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(state))
}

// DecreaseQuantity removes one unit from the item's first line
func (h *CartHandler) DecreaseQuantity(c echo.Context) error {
	itemID := entity.ID(c.Param("itemId"))
	if !h.inCart(itemID) {
		return response.HandleAppError(c, domainerrors.ErrLineNotFound.WithDetails(itemID.String()))
	}

	state, err := h.cartUC.DecreaseQuantity(c.Request().Context(), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(state))
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	state, err := h.cartUC.ClearCart(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Cart cleared")

	return response.Success(c, http.StatusOK, toCartResponse(state))
}

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func validationFailed(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", httpErr.Message)
	}

	return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
}

func (h *CartHandler) inCart(itemID entity.ID) bool {
	for _, line := range h.cartUC.State().Lines {
		if line.Item.ID == itemID {
			return true
		}
	}

	return false
}

// toLine converts the request into a cart line. The item must have a positive price and
// add-ons must not be negative. A missing total is computed from the unit prices.
func (req *AddLineRequest) toLine() (entity.CartLine, error) {
	if !req.Item.Price.IsPositive() {
		return entity.CartLine{}, domainerrors.ErrValidationFailed.WithDetails("item price must be positive")
	}

	addons := make([]entity.AddonSelection, 0, len(req.Addons))
	for _, a := range req.Addons {
		if a.Price.IsNegative() {
			return entity.CartLine{}, domainerrors.ErrValidationFailed.WithDetails("add-on price must not be negative")
		}
		addons = append(addons, entity.AddonSelection{ID: a.ID, Name: a.Name, Price: a.Price})
	}

	total := entity.LineTotal(req.Item.Price, addons, req.Quantity)
	if req.Total != nil {
		if req.Total.IsNegative() {
			return entity.CartLine{}, domainerrors.ErrValidationFailed.WithDetails("total must not be negative")
		}
		total = req.Total.Round2()
	}

	line := entity.CartLine{
		Item: entity.CatalogItem{
			ID:    req.Item.ID,
			Name:  req.Item.Name,
			Price: req.Item.Price,
			Image: req.Item.Image,
		},
		Addons:   addons,
		Quantity: req.Quantity,
		Total:    total,
	}
	if req.Store != nil {
		line.Store = &entity.Store{
			ID:          req.Store.ID,
			Name:        req.Store.Name,
			LogoURL:     req.Store.LogoURL,
			DeliveryFee: req.Store.DeliveryFee,
			ETAMinutes:  req.Store.ETAMinutes,
			Area:        req.Store.Area,
		}
	}

	return line, nil
}

func toCartResponse(state entity.CartState) CartResponse {
	return CartResponse{
		Store:      state.Store,
		Lines:      state.Lines,
		ItemCount:  cart.ItemCount(state),
		GrandTotal: cart.GrandTotal(state),
		Visible:    cart.IsVisible(state),
	}
}
