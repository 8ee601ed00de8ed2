package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sameInt(n int) func(int) bool {
	return func(v int) bool { return v == n }
}

func TestOwnerCache_StoreIfCurrent(t *testing.T) {
	owner := uuid.New()
	c := newOwnerCache[int]()

	gen := c.generation(owner)
	assert.True(t, c.storeIfCurrent(owner, gen, []int{1}))

	// A write lands while a second fetch is in flight
	gen = c.generation(owner)
	c.prepend(owner, sameInt(2), 2)
	assert.False(t, c.storeIfCurrent(owner, gen, []int{1}))

	list, ok := c.get(owner)
	assert.True(t, ok)
	assert.Equal(t, []int{2, 1}, list)
}

func TestOwnerCache_WritesBumpGeneration(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	c := newOwnerCache[int]()

	writes := map[string]func(){
		"prepend":    func() { c.prepend(owner, sameInt(3), 3) },
		"replace":    func() { c.replace(owner, sameInt(3), 4) },
		"remove":     func() { c.remove(owner, sameInt(4)) },
		"invalidate": func() { c.invalidate(owner) },
	}
	for name, write := range writes {
		gen := c.generation(owner)
		otherGen := c.generation(other)
		write()
		assert.NotEqual(t, gen, c.generation(owner), name)
		assert.Equal(t, otherGen, c.generation(other), name)
	}

	// An unloaded list stays unloaded after a skipped store
	gen := c.generation(owner)
	c.invalidate(owner)
	assert.False(t, c.storeIfCurrent(owner, gen, []int{1}))
	_, ok := c.get(owner)
	assert.False(t, ok)
}

func TestOwnerCache_PrependDropsFetchedCopy(t *testing.T) {
	owner := uuid.New()
	c := newOwnerCache[int]()
	c.storeIfCurrent(owner, c.generation(owner), []int{5, 1})

	c.prepend(owner, sameInt(5), 5)

	list, _ := c.get(owner)
	assert.Equal(t, []int{5, 1}, list)
}
