package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// numGoroutines is the number of concurrent goroutines for stress testing.
	numGoroutines = 150

	// numIterations is the number of evaluations per goroutine.
	numIterations = 10
)

// TestConcurrentAccess_Default verifies the shared catalog is built once and
// evaluates consistently from many goroutines.
func TestConcurrentAccess_Default(t *testing.T) {
	in := NewInputs().
		SetScalar("fuel_consumption", 10).
		SetScalar("carbon_content", 0.027).
		SetScalar("oxidation_rate", 0.98)

	var wg sync.WaitGroup
	errs := make(chan error, numGoroutines*numIterations)
	results := make(chan float64, numGoroutines*numIterations)
	catalogs := make(chan *Catalog, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := Default()
			if err != nil {
				errs <- err
				return
			}
			catalogs <- c
			for j := 0; j < numIterations; j++ {
				res, err := c.Evaluate("mining/fuel-combustion", in)
				if err != nil {
					errs <- err
					return
				}
				results <- res.Value
			}
		}()
	}

	wg.Wait()
	close(errs)
	close(results)
	close(catalogs)

	require.Empty(t, errs, "No errors should occur during concurrent access")

	first := <-catalogs
	for c := range catalogs {
		assert.Same(t, first, c)
	}

	count := 0
	for v := range results {
		assert.InDelta(t, 0.9702, v, 1e-9)
		count++
	}
	assert.Equal(t, numGoroutines*numIterations, count)
}
