package model

// AccountID identifies an account within a session
type AccountID int64

// ProductID identifies a product within a catalog
type ProductID int64

// IDAllocator hands out strictly increasing identifiers starting at 1.
// It is not safe for concurrent use.
type IDAllocator struct {
	last int64
}

// NewIDAllocator creates an allocator whose first Next returns 1
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the next identifier
func (a *IDAllocator) Next() int64 {
	a.last++
	return a.last
}

// Advance ensures the next identifier is greater than n.
// It never moves the counter backward.
func (a *IDAllocator) Advance(n int64) {
	if n > a.last {
		a.last = n
	}
}
