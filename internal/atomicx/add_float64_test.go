package atomicx

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFloat64Sequential(t *testing.T) {
	var bits uint64 = math.Float64bits(0)
	got := AddFloat64(&bits, 2.5)
	assert.Equal(t, 2.5, got)
	got = AddFloat64(&bits, 1.5)
	assert.Equal(t, 4.0, got)
}

func TestAddFloat64Concurrent(t *testing.T) {
	var bits uint64 = math.Float64bits(0)
	var wg sync.WaitGroup
	const n = 200
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			AddFloat64(&bits, 1.0)
		}()
	}
	wg.Wait()
	assert.Equal(t, float64(n), math.Float64frombits(bits))
}
