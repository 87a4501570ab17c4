// Package contacts holds the in-memory list of known identities.
//
// Names are not unique. Lookups return the first entry with a matching name
// in insertion order; Remove drops every entry with that name.
package contacts

import (
	"sync"

	"blackipher/internal/domain"
)

type Directory struct {
	mu    sync.RWMutex
	users []*domain.Identity
}

// New returns a directory seeded with ids, in order.
func New(ids ...*domain.Identity) *Directory {
	d := &Directory{}
	for _, id := range ids {
		d.Add(id)
	}
	return d
}

// Add appends id. A nil id is ignored.
func (d *Directory) Add(id *domain.Identity) {
	if id == nil {
		return
	}
	d.mu.Lock()
	d.users = append(d.users, id)
	d.mu.Unlock()
}

// Remove deletes every identity named name and reports how many were removed.
func (d *Directory) Remove(name domain.Username) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.users[:0]
	for _, u := range d.users {
		if u.Username != name {
			kept = append(kept, u)
		}
	}
	removed := len(d.users) - len(kept)
	clear(d.users[len(kept):])
	d.users = kept
	return removed
}

func (d *Directory) Find(name domain.Username) (*domain.Identity, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if u.Username == name {
			return u, true
		}
	}
	return nil, false
}

// Get is Find.
func (d *Directory) Get(name domain.Username) (*domain.Identity, bool) {
	return d.Find(name)
}

// List returns every name in insertion order, duplicates included.
func (d *Directory) List() []domain.Username {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Username, len(d.users))
	for i, u := range d.users {
		out[i] = u.Username
	}
	return out
}

// Users returns the stored identities in insertion order.
func (d *Directory) Users() []*domain.Identity {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*domain.Identity(nil), d.users...)
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}

var _ domain.Directory = (*Directory)(nil)
