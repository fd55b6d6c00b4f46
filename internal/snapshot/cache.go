package snapshot

import (
	"sync"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
)

// ComputeFunc produces a breakdown for a return on cache miss.
type ComputeFunc func(*domain.TaxReturn) (*domain.CalculationBreakdown, error)

// Cache memoizes calculation results keyed by input content hash. It is an
// explicitly constructed, dependency-injected object — no package-level
// singleton — created at process start and shared across requests.
//
// Concurrent requests with the same hash may both miss and both compute;
// that is acceptable duplicate work because the engine is pure. The store
// step uses insert-if-absent semantics so the first computed result wins.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*domain.CalculationBreakdown
}

// NewCache creates an empty snapshot cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*domain.CalculationBreakdown)}
}

// Get returns the stored breakdown for a hash, if any.
func (c *Cache) Get(hash string) (*domain.CalculationBreakdown, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bd, ok := c.entries[hash]
	return bd, ok
}

// PutIfAbsent stores a breakdown unless the hash is already present, and
// returns the breakdown that ended up stored.
func (c *Cache) PutIfAbsent(hash string, bd *domain.CalculationBreakdown) *domain.CalculationBreakdown {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[hash]; ok {
		return existing
	}
	c.entries[hash] = bd
	return bd
}

// Len reports the number of stored snapshots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetOrCompute is the cache-aside lookup/store pair as one logical
// operation: hash the normalized input, return a hit, otherwise invoke the
// engine and store the result under the hash.
func (c *Cache) GetOrCompute(ret *domain.TaxReturn, compute ComputeFunc) (*domain.CalculationBreakdown, error) {
	hash, err := HashTaxReturn(ret)
	if err != nil {
		return nil, err
	}
	if bd, ok := c.Get(hash); ok {
		return bd, nil
	}
	bd, err := compute(ret)
	if err != nil {
		return nil, err
	}
	return c.PutIfAbsent(hash, bd), nil
}
