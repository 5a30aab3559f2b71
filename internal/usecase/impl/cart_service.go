package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"lanche/config"
	deliverycontext "lanche/internal/delivery/context"
	"lanche/internal/domain/entity"
	domainerrors "lanche/internal/domain/errors"
	"lanche/internal/domain/repository"
	"lanche/internal/errors"
	"lanche/internal/usecase"
)

// cartSchemaVersion tags the storage envelope. Loading a document with a
// different version resets the cart rather than guessing a migration.
const cartSchemaVersion = 1

// cartDocument is the on-disk representation of the cart: a versioned
// envelope around the line items. Carts written before versioning was
// introduced are a bare JSON array; decodeCartDocument still accepts those
// when the first record carries a cartItemId (best-effort compatibility
// shim, not a guaranteed migration).
type cartDocument struct {
	SchemaVersion int                    `json:"schemaVersion"`
	Items         []*entity.CartLineItem `json:"items"`
}

type cartService struct {
	mu         sync.Mutex
	items      []*entity.CartLineItem
	storage    repository.CartStorage
	catalog    repository.CatalogRepository
	storageKey string
	logger     *slog.Logger
}

// NewCartService creates the cart store and hydrates it from durable
// storage. A missing, corrupt or incompatible stored document degrades
// silently to an empty cart; construction never fails on storage state.
func NewCartService(
	cfg *config.Config,
	storage repository.CartStorage,
	catalog repository.CatalogRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	s := &cartService{
		storage:    storage,
		catalog:    catalog,
		storageKey: cfg.Cart.StorageKey,
		logger:     logger,
	}
	s.items = s.loadFromStorage(context.Background())

	return s
}

// AddProduct builds a fully snapshotted line item from the catalog product
// and the customization, then appends it to the cart.
func (s *cartService) AddProduct(ctx context.Context, productID int, choice *usecase.Customization) (*entity.CartLineItem, error) {
	product, err := s.catalog.FindProductByID(productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	item, err := buildLineItem(product, choice)
	if err != nil {
		return nil, err
	}

	if err := s.AddCustomizedItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// AddCustomizedItem appends an already built line item to the cart. Only
// the structural invariants are re-checked here; content-level validation
// against the catalog happens in AddProduct.
func (s *cartService) AddCustomizedItem(ctx context.Context, item *entity.CartLineItem) error {
	if item == nil || !item.Valid() {
		return domainerrors.ErrInvalidCartItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
	s.saveToStorage(ctx)

	return nil
}

// RemoveItem removes the line item with that ID, if present.
func (s *cartService) RemoveItem(ctx context.Context, cartItemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(ctx, cartItemID)
}

func (s *cartService) removeLocked(ctx context.Context, cartItemID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.CartItemID != cartItemID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.saveToStorage(ctx)
}

// IncrementItem increases the item's quantity by one. The write-through
// happens even when the ID is unknown; the overwrite is idempotent and
// doubles as a re-sync of storage with memory.
func (s *cartService) IncrementItem(ctx context.Context, cartItemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.findLocked(cartItemID); item != nil {
		item.Quantity++
	}
	s.saveToStorage(ctx)
}

// DecrementItem decreases the item's quantity by one; at quantity one the
// item is removed instead (single persist via removeLocked).
func (s *cartService) DecrementItem(ctx context.Context, cartItemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findLocked(cartItemID)
	if item != nil && item.Quantity > 1 {
		item.Quantity--
		s.saveToStorage(ctx)

		return
	}
	if item != nil {
		s.removeLocked(ctx, cartItemID)

		return
	}
	s.saveToStorage(ctx)
}

// Items returns a snapshot copy of the line items in insertion order.
// The customization slices are copied too, so callers cannot reach back
// into store state through the snapshot.
func (s *cartService) Items() []entity.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entity.CartLineItem, 0, len(s.items))
	for _, item := range s.items {
		snapshot := *item
		snapshot.RemovedIngredients = append([]string(nil), item.RemovedIngredients...)
		snapshot.SelectedAddons = append([]entity.SelectedAddon(nil), item.SelectedAddons...)
		items = append(items, snapshot)
	}

	return items
}

// TotalItems is the sum of quantities, recomputed on every call.
func (s *cartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}

	return total
}

// TotalPrice is the sum of finalPrice x quantity, recomputed on every call.
func (s *cartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.LineTotal()
	}

	return total
}

// log returns a request-scoped logger if available, otherwise falls back
// to the service's logger.
func (s *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *cartService) findLocked(cartItemID string) *entity.CartLineItem {
	for _, item := range s.items {
		if item.CartItemID == cartItemID {
			return item
		}
	}

	return nil
}

// saveToStorage writes the full item list through to the storage slot.
// Failures are logged and swallowed: in-memory state is primary and a
// failed write never rolls a mutation back. Callers hold s.mu, so a
// mutation and its write happen as one step.
func (s *cartService) saveToStorage(ctx context.Context) {
	data, err := json.Marshal(cartDocument{
		SchemaVersion: cartSchemaVersion,
		Items:         s.items,
	})
	if err != nil {
		s.log(ctx).Error("failed to serialize cart", slog.Any("error", err))

		return
	}

	if err := s.storage.Save(ctx, s.storageKey, data); err != nil {
		s.log(ctx).Warn("failed to persist cart", slog.Any("error", err))
	}
}

// loadFromStorage hydrates the cart from the storage slot. Anything it
// cannot make sense of degrades to an empty cart.
func (s *cartService) loadFromStorage(ctx context.Context) []*entity.CartLineItem {
	data, err := s.storage.Load(ctx, s.storageKey)
	if err != nil {
		if !errors.Is(err, repository.ErrSlotNotFound) {
			s.log(ctx).Warn("failed to read stored cart, starting empty", slog.Any("error", err))
		}

		return nil
	}

	items, ok := decodeCartDocument(data)
	if !ok {
		s.log(ctx).Warn("stored cart is stale or corrupt, starting empty")

		return nil
	}

	return items
}

// decodeCartDocument parses a stored cart. It accepts the versioned
// envelope with the current schema version, or the legacy bare array kept
// only when its first record carries a cartItemId. Everything else is
// rejected.
func decodeCartDocument(data []byte) ([]*entity.CartLineItem, bool) {
	var doc cartDocument
	if err := json.Unmarshal(data, &doc); err == nil && doc.SchemaVersion != 0 {
		if doc.SchemaVersion != cartSchemaVersion {
			return nil, false
		}

		return validItems(doc.Items)
	}

	var legacy []*entity.CartLineItem
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, false
	}
	if len(legacy) > 0 && (legacy[0] == nil || legacy[0].CartItemID == "") {
		return nil, false
	}

	return validItems(legacy)
}

// validItems rejects a decoded list wholesale when any record breaks the
// structural invariants; a partially trusted cart is worse than an empty
// one.
func validItems(items []*entity.CartLineItem) ([]*entity.CartLineItem, bool) {
	for _, item := range items {
		if item == nil || !item.Valid() {
			return nil, false
		}
	}

	return items, true
}

// buildLineItem snapshots the product into a new line item per the
// customization. Unknown or non-removable ingredients and unknown addon,
// flavor or size references are rejected against the product.
func buildLineItem(product *entity.Product, choice *usecase.Customization) (*entity.CartLineItem, error) {
	if choice == nil {
		choice = &usecase.Customization{}
	}

	quantity := choice.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, domainerrors.ErrInvalidCustomization.WithDetails("quantity must be at least 1")
	}

	basePrice := product.BasePrice
	selectedSize := ""
	if choice.Size != "" {
		size, ok := product.FindSize(choice.Size)
		if !ok {
			return nil, domainerrors.ErrInvalidCustomization.WithDetails("unknown size: " + choice.Size)
		}
		basePrice = size.Price
		selectedSize = size.Name
	} else if len(product.Sizes) > 0 {
		return nil, domainerrors.ErrInvalidCustomization.WithDetails("a size must be chosen for this product")
	}

	selectedFlavor := ""
	if choice.Flavor != "" {
		if !product.HasFlavor(choice.Flavor) {
			return nil, domainerrors.ErrInvalidCustomization.WithDetails("unknown flavor: " + choice.Flavor)
		}
		selectedFlavor = choice.Flavor
	} else if len(product.Flavors) > 0 {
		return nil, domainerrors.ErrInvalidCustomization.WithDetails("a flavor must be chosen for this product")
	}

	removed := make([]string, 0, len(choice.RemovedIngredients))
	for _, name := range choice.RemovedIngredients {
		if !product.IngredientRemovable(name) {
			return nil, domainerrors.ErrInvalidCustomization.WithDetails("ingredient cannot be removed: " + name)
		}
		removed = append(removed, name)
	}

	finalPrice := basePrice
	addons := make([]entity.SelectedAddon, 0, len(choice.AddonIDs))
	for _, addonID := range choice.AddonIDs {
		addon, ok := product.FindAddon(addonID)
		if !ok {
			return nil, domainerrors.ErrInvalidCustomization.WithDetails("unknown addon for this product")
		}
		addons = append(addons, entity.SelectedAddon{
			ID:    addon.ID,
			Name:  addon.Name,
			Price: addon.Price,
		})
		finalPrice += addon.Price
	}

	return &entity.CartLineItem{
		CartItemID:         entity.NewCartItemID(product.ID),
		ProductID:          product.ID,
		Name:               product.Name,
		ImageRef:           product.ImageRef,
		BasePrice:          basePrice,
		RemovedIngredients: removed,
		SelectedAddons:     addons,
		Observation:        choice.Observation,
		FinalPrice:         finalPrice,
		Quantity:           quantity,
		SelectedFlavor:     selectedFlavor,
		SelectedSize:       selectedSize,
	}, nil
}
