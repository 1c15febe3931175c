// Package cart holds the single client-side authority for the cart
// contents: a quantity-merged line collection with exact-cents aggregates,
// persisted in full to durable client storage after every mutation.
package cart

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// linesKey is the single storage key holding the serialized collection.
// The session store uses the "session." namespace.
const linesKey = "cart.lines"

// Store is the cart store. Construct once with NewStore; reads never hit
// the network, and every mutating operation writes the full collection to
// storage before returning.
type Store struct {
	kv     port.KeyValueStore
	logger *slog.Logger

	mu    sync.Mutex
	lines []domain.CartLine
}

// NewStore creates the store and rehydrates persisted lines. A corrupted
// payload yields an empty cart, never an error.
func NewStore(kv port.KeyValueStore, logger *slog.Logger) *Store {
	s := &Store{
		kv:     kv,
		logger: logger.With("component", "cart_store"),
	}
	s.restore()
	return s
}

func (s *Store) restore() {
	raw, ok, err := s.kv.Get(linesKey)
	if err != nil {
		s.logger.Warn("could not read persisted cart", "error", err)
		return
	}
	if !ok {
		return
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		s.logger.Warn("persisted cart is corrupted, starting empty", "error", err)
		if err := s.kv.Delete(linesKey); err != nil {
			s.logger.Warn("could not clear corrupted cart payload", "error", err)
		}
		return
	}

	// A line that violates the quantity invariant means the payload was
	// tampered with; treat the whole collection as corrupt.
	for _, l := range lines {
		if l.Quantity < 1 || l.ProductID == "" {
			s.logger.Warn("persisted cart has invalid lines, starting empty")
			return
		}
	}

	s.lines = lines
	s.logger.Debug("cart restored", "lines", len(lines))
}

// AddItem merges a product into the cart: an existing line's quantity is
// incremented, otherwise a new line with quantity 1 is appended. The same
// product never yields two lines.
func (s *Store) AddItem(productID, name string, unitPrice domain.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := domain.MergeLine(cloneLines(s.lines), productID, name, unitPrice)
	return s.commitLocked(next)
}

// AddProduct is AddItem for a catalog product.
func (s *Store) AddProduct(p *domain.Product) error {
	return s.AddItem(p.ID.String(), p.Name, p.Price)
}

// RemoveItem deletes the line for a product; absent products are a no-op.
func (s *Store) RemoveItem(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := domain.RemoveLine(cloneLines(s.lines), productID)
	return s.commitLocked(next)
}

// SetQuantity overwrites a line's quantity. A quantity of zero or below
// removes the line; an absent product is a no-op.
func (s *Store) SetQuantity(productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := domain.SetLineQuantity(cloneLines(s.lines), productID, quantity)
	return s.commitLocked(next)
}

// Clear empties the collection and persists the empty state.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commitLocked([]domain.CartLine{})
}

// commitLocked persists the candidate collection and only then replaces
// the in-memory state, so a storage failure leaves the cart as it was.
func (s *Store) commitLocked(next []domain.CartLine) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := s.kv.Set(linesKey, raw); err != nil {
		return err
	}
	s.lines = next
	return nil
}

// Items returns a snapshot of the line collection in insertion order.
func (s *Store) Items() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.lines)
}

// TotalItemCount sums all line quantities.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CountLineItems(s.lines)
}

// TotalPrice sums unitPrice*quantity over all lines in exact cents.
func (s *Store) TotalPrice() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SumLineTotals(s.lines)
}

func cloneLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}
