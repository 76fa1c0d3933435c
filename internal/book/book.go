// Package book holds the client book session: the stored clients plus the
// filtered view that command indexes refer to.
package book

import (
	"context"
	"fmt"
	"sync"

	"github.com/aidanlsb/clientbook/internal/model"
)

// Store persists clients. Implementations keep clients in insertion order.
type Store interface {
	List(ctx context.Context) ([]model.Client, error)
	Insert(ctx context.Context, c model.Client) (model.Client, error)
	Update(ctx context.Context, c model.Client) error
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
	HasName(ctx context.Context, name model.Name, exceptID int64) (bool, error)
}

// Book is the client book as seen by commands.
// It is safe for concurrent use.
type Book struct {
	store Store

	mu     sync.RWMutex
	filter model.Predicate
}

// New wraps a store. The initial view shows every client.
func New(store Store) *Book {
	return &Book{store: store, filter: model.ShowAll}
}

// All returns every stored client, ignoring the current filter.
func (b *Book) All(ctx context.Context) ([]model.Client, error) {
	clients, err := b.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// Visible returns the clients in the current view, in display order.
func (b *Book) Visible(ctx context.Context) ([]model.Client, error) {
	clients, err := b.All(ctx)
	if err != nil {
		return nil, err
	}
	b.mu.RLock()
	filter := b.filter
	b.mu.RUnlock()

	visible := make([]model.Client, 0, len(clients))
	for _, c := range clients {
		if filter(c) {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

// SetFilter narrows the view to clients matching p.
func (b *Book) SetFilter(p model.Predicate) {
	if p == nil {
		p = model.ShowAll
	}
	b.mu.Lock()
	b.filter = p
	b.mu.Unlock()
}

// ResetFilter shows every client again.
func (b *Book) ResetFilter() {
	b.SetFilter(model.ShowAll)
}

// HasClient reports whether a client with the same identity is stored,
// ignoring the row with exceptID (0 ignores nothing).
func (b *Book) HasClient(ctx context.Context, c model.Client, exceptID int64) (bool, error) {
	exists, err := b.store.HasName(ctx, c.Name, exceptID)
	if err != nil {
		return false, fmt.Errorf("look up client: %w", err)
	}
	return exists, nil
}

// Add stores a new client and returns it with its assigned ID.
func (b *Book) Add(ctx context.Context, c model.Client) (model.Client, error) {
	stored, err := b.store.Insert(ctx, c)
	if err != nil {
		return model.Client{}, fmt.Errorf("add client: %w", err)
	}
	return stored, nil
}

// Replace overwrites target's stored fields with edited.
func (b *Book) Replace(ctx context.Context, target, edited model.Client) error {
	edited.ID = target.ID
	if err := b.store.Update(ctx, edited); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Remove deletes a stored client.
func (b *Book) Remove(ctx context.Context, c model.Client) error {
	if err := b.store.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// Clear deletes every client.
func (b *Book) Clear(ctx context.Context) error {
	if err := b.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear clients: %w", err)
	}
	return nil
}
