package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDAllocatorStartsAtOne(t *testing.T) {
	ids := NewIDAllocator()
	assert.Equal(t, int64(1), ids.Next())
}

func TestIDAllocatorIsStrictlyIncreasing(t *testing.T) {
	ids := NewIDAllocator()
	seen := make(map[int64]bool)
	prev := int64(0)
	for i := 0; i < 1000; i++ {
		id := ids.Next()
		assert.Greater(t, id, prev)
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
		prev = id
	}
}

func TestIDAllocatorInstancesAreIndependent(t *testing.T) {
	a := NewIDAllocator()
	b := NewIDAllocator()
	a.Next()
	a.Next()
	assert.Equal(t, int64(1), b.Next())
	assert.Equal(t, int64(3), a.Next())
}

func TestIDAllocatorAdvance(t *testing.T) {
	ids := NewIDAllocator()
	ids.Advance(10)
	assert.Equal(t, int64(11), ids.Next())

	// Never moves backward
	ids.Advance(3)
	assert.Equal(t, int64(12), ids.Next())
}
