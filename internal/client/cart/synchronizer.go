// Package cart keeps a locally cached view of the server-side cart
// consistent across mutations, identity changes and multiple display
// surfaces.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/akodina/shopfront/internal/client/session"
	"github.com/akodina/shopfront/pkg/api"
)

// ErrNotAuthenticated is returned by AddItem when nobody is logged in.
// No network call is attempted; the caller is expected to prompt for
// login rather than swallow it.
var ErrNotAuthenticated = errors.New("please login to add items to cart")

// Backend is the slice of the gateway the synchronizer needs.
type Backend interface {
	GetCart(ctx context.Context) (*api.Cart, error)
	AddToCart(ctx context.Context, productID int64, quantity int) error
	UpdateCartItem(ctx context.Context, itemID int64, quantity int) error
	RemoveFromCart(ctx context.Context, itemID int64) error
}

// IdentityProvider exposes the current identity and its transitions.
// *session.Manager satisfies it.
type IdentityProvider interface {
	Current() *session.Identity
	OnChange(fn func(*session.Identity)) func()
}

// Summary is the cached, server-derived view of the cart.
// ItemCount always equals the sum of line quantities except during the
// short optimistic window inside AddItem, which the unconditional
// reconcile closes.
type Summary struct {
	ItemCount int
	Items     []api.CartItem
}

// Synchronizer owns the cart Summary. It is the single writer; display
// surfaces read via Summary() and listen via Subscribe(). Mutations are
// not serialized against each other: two rapid mutations may complete
// out of order, and the displayed state converges to whatever the
// last-completing refresh reports. That is accepted behavior: no
// client-side sequencing is layered on top of the backend.
type Synchronizer struct {
	backend  Backend
	identity IdentityProvider
	logger   *slog.Logger
	unwatch  func()

	mu        sync.Mutex
	summary   Summary
	listeners map[int]func()
	nextID    int
}

// NewSynchronizer creates a synchronizer and registers it for identity
// changes: every transition (login, logout, or a switch between users)
// triggers a refresh, so a fresh login never shows a stale cart.
func NewSynchronizer(backend Backend, identity IdentityProvider, logger *slog.Logger) *Synchronizer {
	s := &Synchronizer{
		backend:   backend,
		identity:  identity,
		logger:    logger,
		listeners: make(map[int]func()),
	}
	s.unwatch = identity.OnChange(func(*session.Identity) {
		s.Refresh(context.Background())
	})
	return s
}

// Close unregisters the identity listener.
func (s *Synchronizer) Close() {
	if s.unwatch != nil {
		s.unwatch()
	}
}

// Summary returns a copy of the cached cart view.
func (s *Synchronizer) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]api.CartItem, len(s.summary.Items))
	copy(items, s.summary.Items)
	return Summary{ItemCount: s.summary.ItemCount, Items: items}
}

// Subscribe registers a listener invoked after every refresh and after
// every optimistic update. The returned function unsubscribes. A surface
// that mounts after mutations already fired must still call Refresh
// itself; subscribing only covers changes from then on.
func (s *Synchronizer) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Refresh replaces the cached summary with server truth. Without an
// identity it resets to empty without touching the network. Fetch
// failures degrade to an empty cart and are swallowed; mutations
// surface their own errors separately.
func (s *Synchronizer) Refresh(ctx context.Context) {
	if s.identity.Current() == nil {
		s.replace(Summary{})
		return
	}

	cart, err := s.backend.GetCart(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch cart, degrading to empty", "error", err)
		s.replace(Summary{})
		return
	}

	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}

	// Wholesale replacement, never a partial merge: items removed by
	// another tab or device must disappear here too.
	s.replace(Summary{ItemCount: count, Items: cart.Items})
}

// AddItem adds quantity units of a product. The visible count is bumped
// optimistically before the network call; whatever the call's outcome,
// a reconciling refresh runs so the optimistic delta never survives
// uncorrected. A mutation failure propagates after that refresh has run.
func (s *Synchronizer) AddItem(ctx context.Context, productID int64, quantity int) error {
	if s.identity.Current() == nil {
		return ErrNotAuthenticated
	}

	s.applyOptimistic(quantity)
	defer s.Refresh(ctx)

	if err := s.backend.AddToCart(ctx, productID, quantity); err != nil {
		return fmt.Errorf("failed to add item to cart: %w", err)
	}
	return nil
}

// UpdateItemQuantity changes one line's quantity then refreshes. No
// optimistic update: only add-to-cart is latency-sensitive enough to
// warrant one.
func (s *Synchronizer) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	defer s.Refresh(ctx)

	if err := s.backend.UpdateCartItem(ctx, itemID, quantity); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

// RemoveItem removes one line then refreshes.
func (s *Synchronizer) RemoveItem(ctx context.Context, itemID int64) error {
	defer s.Refresh(ctx)

	if err := s.backend.RemoveFromCart(ctx, itemID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// applyOptimistic bumps the visible count ahead of server confirmation.
// The quantity is not clamped against stock: the reconcile corrects any
// overshoot.
func (s *Synchronizer) applyOptimistic(quantity int) {
	s.mu.Lock()
	s.summary.ItemCount += quantity
	s.mu.Unlock()
	s.notifyAll()
}

// replace swaps in a new summary and notifies listeners.
func (s *Synchronizer) replace(summary Summary) {
	s.mu.Lock()
	s.summary = summary
	s.mu.Unlock()
	s.notifyAll()
}

func (s *Synchronizer) notifyAll() {
	s.mu.Lock()
	listeners := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	// Fire outside the lock so listeners may read Summary.
	for _, fn := range listeners {
		fn()
	}
}
