package infra

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionPutAndGet(t *testing.T) {
	c := NewCollection[string]()
	c.Put("a", "alpha")

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCollectionListKeepsInsertionOrder(t *testing.T) {
	c := NewCollection[int]()
	for i := 0; i < 10; i++ {
		c.Put(fmt.Sprintf("k%d", i), i)
	}

	got := c.List()
	require.Len(t, got, 10)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestCollectionPutOverwriteKeepsPosition(t *testing.T) {
	c := NewCollection[string]()
	c.Put("a", "first")
	c.Put("b", "second")
	c.Put("a", "updated")

	assert.Equal(t, []string{"updated", "second"}, c.List())
	assert.Equal(t, 2, c.Len())
}

func TestCollectionListReturnsFreshSlice(t *testing.T) {
	c := NewCollection[string]()
	c.Put("a", "alpha")

	first := c.List()
	first[0] = "mutated"

	assert.Equal(t, []string{"alpha"}, c.List())
}

func TestCollectionFilterAndFind(t *testing.T) {
	c := NewCollection[int]()
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	evens := c.Filter(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2}, evens)

	got, ok := c.Find(func(v int) bool { return v > 1 })
	require.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = c.Find(func(v int) bool { return v > 100 })
	assert.False(t, ok)
}

func TestCollectionPutIfAbsentRejectsConflict(t *testing.T) {
	c := NewCollection[string]()
	require.True(t, c.PutIfAbsent("1", "foo@example.com", func(v string) bool { return v == "foo@example.com" }))
	assert.False(t, c.PutIfAbsent("2", "foo@example.com", func(v string) bool { return v == "foo@example.com" }))
	assert.Equal(t, 1, c.Len())
}

func TestCollectionPutIfAbsentConcurrentSingleWinner(t *testing.T) {
	c := NewCollection[string]()

	const workers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ok := c.PutIfAbsent(fmt.Sprintf("id-%d", n), "same@example.com", func(v string) bool {
				return v == "same@example.com"
			})
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, c.Len())
}

func TestNewStoreCollectionsStartEmpty(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 0, s.Destinations.Len())
	assert.Equal(t, 0, s.Tours.Len())
	assert.Equal(t, 0, s.Subscribers.Len())
	assert.Equal(t, 0, s.ContactMessages.Len())
}
