package cart

import (
	"context"
	"slices"
	"sync"
	"time"

	"printaro-be/internal/catalog"
	"printaro-be/internal/configurator"
	"printaro-be/internal/logger"
	"printaro-be/internal/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddParams carries everything a new line item freezes at add-time. The
// breakdown is the one the configurator just computed.
type AddParams struct {
	ProductID      string
	ProductSlug    string
	Name           string
	PreviewURL     string
	FileURL        string
	Specifications Specifications
	Upsells        []catalog.Upsell
	Breakdown      pricing.Summary
}

// UpdateParams patch a persisted item's specification. Nil fields are left
// unchanged.
type UpdateParams struct {
	Quantity     *int
	Dimension    *configurator.Dimension
	FinishingIDs []string
	Options      map[string][]string
}

// Store is the process-local cart container. The item slice is copy-on-write:
// every mutation replaces it wholesale, so concurrent readers never observe a
// partially-updated item. Durable persistence happens through Storage after
// the new state is fully computed.
type Store struct {
	mu       sync.RWMutex
	items    []Item
	storage  Storage
	products catalog.Repository
}

func NewStore(storage Storage, products catalog.Repository) *Store {
	return &Store{storage: storage, products: products}
}

// Load replaces the in-memory state with the persisted snapshot.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.storage.Load(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load cart", zap.Error(err))
		return ErrFailedLoadCart
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Add appends a new line item and returns it with a fresh id.
func (s *Store) Add(ctx context.Context, params AddParams) (Item, error) {
	if params.Specifications.Quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}

	item := Item{
		ID:             uuid.New().String(),
		ProductID:      params.ProductID,
		ProductSlug:    params.ProductSlug,
		Name:           params.Name,
		PreviewURL:     params.PreviewURL,
		FileURL:        params.FileURL,
		Specifications: params.Specifications,
		Upsells:        slices.Clone(params.Upsells),
		Breakdown:      params.Breakdown,
		TotalPrice:     params.Breakdown.Total,
		AddedAt:        time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(slices.Clone(s.items), item)
	if err := s.persist(ctx, next); err != nil {
		return Item{}, err
	}
	s.items = next

	return item, nil
}

// Update is the single code path allowed to change a stored item's price:
// it re-runs the configurator and pricing engine against the patched
// specification, then swaps specification and breakdown in together.
func (s *Store) Update(ctx context.Context, itemID string, params UpdateParams) (Item, error) {
	if params.Quantity != nil && *params.Quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.items, func(it Item) bool { return it.ID == itemID })
	if idx < 0 {
		return Item{}, ErrItemNotFound
	}

	item := s.items[idx]
	specs := patchSpecs(item.Specifications, params)

	product, err := s.products.GetConfiguratorProduct(ctx, item.ProductSlug)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to resolve product for recalculation",
			zap.String("item_id", itemID),
			zap.String("slug", item.ProductSlug),
			zap.Error(err),
		)
		return Item{}, err
	}

	item.Specifications = specs
	item.Breakdown = recalculate(product, specs, item.Upsells)
	item.TotalPrice = item.Breakdown.Total

	next := slices.Clone(s.items)
	next[idx] = item
	if err := s.persist(ctx, next); err != nil {
		return Item{}, err
	}
	s.items = next

	return item, nil
}

// recalculate replays the item's specification through the same filter and
// pricing chain the configurator uses, so a stored price can never drift
// from the rules.
func recalculate(product *catalog.Product, specs Specifications, upsells []catalog.Upsell) pricing.Summary {
	session := configurator.Resume(product, configurator.Selections{
		MaterialID:    specs.MaterialID,
		PrintMethodID: specs.PrintMethodID,
		FinishingIDs:  slices.Clone(specs.FinishingIDs),
		Options:       specs.Options,
		Quantity:      specs.Quantity,
		Dimension:     specs.Dimension,
	})

	summary := session.Summary()
	if len(upsells) == 0 {
		return summary
	}

	// Upsells ride on the line item, not the configurator session.
	req := pricing.Request{
		Quantity: specs.Quantity,
		Options:  specs.Options,
	}
	if specs.Dimension != nil {
		req.Width = specs.Dimension.Width
		req.Height = specs.Dimension.Height
		req.Unit = specs.Dimension.Unit
	}

	ctx := pricing.Context{Upsells: upsells, Finishing: session.Finishing().SelectedFinishing}
	if selected := session.Materials().SelectedMaterial; selected != nil {
		ctx.Material = &selected.Material
	}
	ctx.PrintMethod = session.PrintMethods().SelectedMethod

	return pricing.Calculate(product, req, ctx)
}

func patchSpecs(specs Specifications, params UpdateParams) Specifications {
	if params.Quantity != nil {
		specs.Quantity = *params.Quantity
	}
	if params.Dimension != nil {
		specs.Dimension = params.Dimension
	}
	if params.FinishingIDs != nil {
		specs.FinishingIDs = slices.Clone(params.FinishingIDs)
	}
	if params.Options != nil {
		specs.Options = params.Options
	}
	return specs
}

// Remove deletes one line item.
func (s *Store) Remove(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.items, func(it Item) bool { return it.ID == itemID })
	if idx < 0 {
		return ErrItemNotFound
	}

	next := slices.Clone(s.items)
	next = append(next[:idx], next[idx+1:]...)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.items = next

	return nil
}

// Duplicate copies a line item under a new id.
func (s *Store) Duplicate(ctx context.Context, itemID string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.items, func(it Item) bool { return it.ID == itemID })
	if idx < 0 {
		return Item{}, ErrItemNotFound
	}

	duplicate := s.items[idx]
	duplicate.ID = uuid.New().String()
	duplicate.AddedAt = time.Now().UTC()

	next := append(slices.Clone(s.items), duplicate)
	if err := s.persist(ctx, next); err != nil {
		return Item{}, err
	}
	s.items = next

	return duplicate, nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := []Item{}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.items = next

	return nil
}

// Items returns a snapshot copy.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Totals sums the stored line totals and quantities.
func (s *Store) Totals() Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var totals Totals
	for _, item := range s.items {
		totals.Subtotal += item.TotalPrice
		totals.ItemCount += item.Specifications.Quantity
	}
	return totals
}

func (s *Store) persist(ctx context.Context, items []Item) error {
	if err := s.storage.Save(ctx, items); err != nil {
		logger.FromCtx(ctx).Error("failed to save cart", zap.Error(err))
		return ErrFailedSaveCart
	}
	return nil
}
