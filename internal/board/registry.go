package board

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IDGenerator produces the identifiers the registry hands back to
// callers. RandomIDs is the production generator; tests can inject a
// deterministic one.
type IDGenerator interface {
	NewID() (uuid.UUID, error)
}

// RandomIDs generates random 128-bit identifiers.
type RandomIDs struct{}

func (RandomIDs) NewID() (uuid.UUID, error) { return uuid.NewRandom() }

type entry struct {
	seq   uint64
	order *Order
}

// Registry owns the live set of registered orders. It is the interaction
// point between callers and the board: orders are registered and
// cancelled here, and the current board view is computed on demand from
// whatever is registered at that instant.
//
// Register and Cancel take the write lock; Orders and Board take the read
// lock, so any number of board computations may run concurrently but
// never observe a half-applied mutation.
type Registry struct {
	mu     sync.RWMutex
	gen    IDGenerator
	seq    uint64
	orders map[uuid.UUID]entry
}

func NewRegistry() *Registry {
	return NewRegistryWithIDs(RandomIDs{})
}

func NewRegistryWithIDs(gen IDGenerator) *Registry {
	return &Registry{
		gen:    gen,
		orders: make(map[uuid.UUID]entry),
	}
}

// Register stores an order and returns the identifier to cancel it with.
func (r *Registry) Register(o *Order) (uuid.UUID, error) {
	if o == nil {
		return uuid.Nil, ErrNilOrder
	}

	id, err := r.gen.NewID()
	if err != nil {
		return uuid.Nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.orders[id] = entry{seq: r.seq, order: o}
	return id, nil
}

// RegisterNew constructs an order from its parts and registers it.
func (r *Registry) RegisterNew(userID string, quantity decimal.Decimal, pricePerKilo int64, side Side) (uuid.UUID, error) {
	o, err := NewOrder(userID, quantity, pricePerKilo, side)
	if err != nil {
		return uuid.Nil, err
	}
	return r.Register(o)
}

// Cancel removes the order registered under id. Cancelling an unknown or
// already-cancelled id is a no-op.
func (r *Registry) Cancel(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
}

// Orders returns the currently registered orders in registration order.
// The slice is a fresh snapshot; the orders themselves are immutable.
func (r *Registry) Orders() []*Order {
	r.mu.RLock()
	entries := make([]entry, 0, len(r.orders))
	for _, e := range r.orders {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]*Order, len(entries))
	for i, e := range entries {
		out[i] = e.order
	}
	return out
}

// Board consolidates the current orders into a board view. The snapshot
// is captured under the read lock; aggregation runs outside it, so a slow
// board build never delays writers.
func (r *Registry) Board() Board {
	return BuildBoard(r.Orders())
}

// Len reports the number of live orders.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
