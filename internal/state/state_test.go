package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New(nil, "I'm OK.")

	assert.NotNil(t, s)
	assert.Equal(t, "I'm OK.", s.Greeting)
	assert.Equal(t, 0, s.VisitCount())
}

func TestAppState_RecordVisit(t *testing.T) {
	s := New(nil, "I'm OK.")

	assert.Equal(t, 1, s.RecordVisit())
	assert.Equal(t, 2, s.RecordVisit())
	assert.Equal(t, 3, s.RecordVisit())
	assert.Equal(t, 3, s.VisitCount())
}

// Concurrent visits must produce strictly increasing, non-duplicated counts:
// n calls starting from 0 yield the set {1..n} with each value seen exactly once.
func TestAppState_RecordVisit_Concurrent(t *testing.T) {
	const n = 100

	s := New(nil, "I'm OK.")
	results := make(chan int, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.RecordVisit()
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool, n)
	for count := range results {
		assert.False(t, seen[count], "duplicate visit count %d", count)
		assert.GreaterOrEqual(t, count, 1)
		assert.LessOrEqual(t, count, n)
		seen[count] = true
	}

	assert.Len(t, seen, n)
	assert.Equal(t, n, s.VisitCount())
}
