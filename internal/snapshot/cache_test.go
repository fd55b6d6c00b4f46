package snapshot

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCacheGetOrCompute verifies the miss-compute-store-hit cycle.
func TestCacheGetOrCompute(t *testing.T) {
	cache := NewCache()
	ret := sampleReturn()

	var calls int
	compute := func(r *domain.TaxReturn) (*domain.CalculationBreakdown, error) {
		calls++
		return &domain.CalculationBreakdown{
			TaxYear:  r.TaxYear,
			TotalTax: decimal.NewFromInt(9000),
		}, nil
	}

	first, err := cache.GetOrCompute(ret, compute)
	require.NoError(t, err)
	second, err := cache.GetOrCompute(ret, compute)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second lookup must be a cache hit")
	assert.Same(t, first, second, "hit must return the stored breakdown")
	assert.Equal(t, 1, cache.Len())
}

// TestCacheDistinguishesInputs verifies different returns get different slots.
func TestCacheDistinguishesInputs(t *testing.T) {
	cache := NewCache()

	compute := func(r *domain.TaxReturn) (*domain.CalculationBreakdown, error) {
		return &domain.CalculationBreakdown{TaxYear: r.TaxYear}, nil
	}

	retA := sampleReturn()
	retB := sampleReturn()
	retB.Income.InterestIncome = retB.Income.InterestIncome.Add(decimal.NewFromFloat(0.01))

	_, err := cache.GetOrCompute(retA, compute)
	require.NoError(t, err)
	_, err = cache.GetOrCompute(retB, compute)
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len(), "a one-cent difference is a distinct entry")
}

// TestCachePutIfAbsentFirstWins verifies insert-if-absent semantics.
func TestCachePutIfAbsentFirstWins(t *testing.T) {
	cache := NewCache()

	first := &domain.CalculationBreakdown{TaxYear: 2025}
	second := &domain.CalculationBreakdown{TaxYear: 2026}

	stored := cache.PutIfAbsent("k", first)
	assert.Same(t, first, stored)

	stored = cache.PutIfAbsent("k", second)
	assert.Same(t, first, stored, "the first stored result wins")
}

// TestCacheConcurrentAccess hammers one key from many goroutines; duplicate
// computation is acceptable but every caller must get a valid result and the
// cache must end with a single entry.
func TestCacheConcurrentAccess(t *testing.T) {
	cache := NewCache()
	ret := sampleReturn()

	var computations int64
	compute := func(r *domain.TaxReturn) (*domain.CalculationBreakdown, error) {
		atomic.AddInt64(&computations, 1)
		return &domain.CalculationBreakdown{TaxYear: r.TaxYear}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bd, err := cache.GetOrCompute(ret, compute)
			assert.NoError(t, err)
			assert.NotNil(t, bd)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, cache.Len(), "all goroutines share one hash slot")
	assert.GreaterOrEqual(t, atomic.LoadInt64(&computations), int64(1))
}
