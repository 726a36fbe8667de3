package client

import (
	"sync"

	"tracking/internal/core/domain/model/order"
)

// Entry is one cached order row as a role terminal sees it.
type Entry struct {
	Pieza         string
	Guarda        string
	Status        order.Status
	PosteRestante bool
}

// Cache holds the orders currently visible to one role terminal, keyed by
// pieza. Events whose status falls outside the role's visible set evict
// the entry; everything else is inserted or updated in place.
//
// Safe for concurrent use: the subscription worker and the terminal's own
// optimistic updates both write to it.
type Cache struct {
	mu      sync.Mutex
	role    order.Role
	entries map[string]*Entry
	keys    []string
}

// NewCache creates an empty cache scoped to the given role's visibility.
func NewCache(role order.Role) *Cache {
	return &Cache{
		role:    role,
		entries: make(map[string]*Entry),
	}
}

// Apply merges one broadcast event into the cache. Returns true when the
// visible set changed, meaning the terminal should re-render.
func (c *Cache) Apply(e Entry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.role.CanDisplay(e.Status) {
		return c.removeLocked(e.Pieza)
	}

	if existing, ok := c.entries[e.Pieza]; ok {
		*existing = e
		return true
	}

	c.entries[e.Pieza] = &e
	c.keys = append(c.keys, e.Pieza)
	return true
}

// SetStatus records a local status change for pieza ahead of the server
// round-trip. An entry whose new status leaves the visible set is evicted,
// matching how the authoritative echo would later be merged. Unknown pieza
// is a no-op.
func (c *Cache) SetStatus(pieza string, status order.Status) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.entries[pieza]
	if !ok {
		return false
	}

	if !c.role.CanDisplay(status) {
		return c.removeLocked(pieza)
	}

	existing.Status = status
	return true
}

// Get returns the cached entry for pieza, if any.
func (c *Cache) Get(pieza string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.entries[pieza]
	if !ok {
		return Entry{}, false
	}
	return *existing, true
}

// ReplaceAll swaps the whole cache for a fresh snapshot. Rows outside the
// role's visible set are skipped.
func (c *Cache) ReplaceAll(entries []Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*Entry, len(entries))
	c.keys = c.keys[:0]
	for _, e := range entries {
		if !c.role.CanDisplay(e.Status) {
			continue
		}
		if _, ok := c.entries[e.Pieza]; ok {
			*c.entries[e.Pieza] = e
			continue
		}
		e := e
		c.entries[e.Pieza] = &e
		c.keys = append(c.keys, e.Pieza)
	}
}

// Len returns the number of visible entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Snapshot returns the visible entries in display order. Statuses earlier
// in the role's visible-status list come first (the depot shows failed
// deliveries above fresh arrivals); within a status group, insertion order
// is preserved.
func (c *Cache) Snapshot() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, 0, len(c.entries))
	for _, status := range c.role.VisibleStatuses() {
		for _, pieza := range c.keys {
			if e := c.entries[pieza]; e.Status == status {
				out = append(out, *e)
			}
		}
	}
	return out
}

// removeLocked deletes pieza from the cache. Caller holds the mutex.
func (c *Cache) removeLocked(pieza string) bool {
	if _, ok := c.entries[pieza]; !ok {
		return false
	}
	delete(c.entries, pieza)
	for i, k := range c.keys {
		if k == pieza {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return true
}
