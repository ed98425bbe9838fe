package controller

// IDAllocator hands out epic and path ids from one increasing sequence.
// Ids are never reused.
type IDAllocator struct {
	next int
}

// NewIDAllocator starts the sequence at first (values below 1 start at 1).
func NewIDAllocator(first int) *IDAllocator {
	if first < 1 {
		first = 1
	}
	return &IDAllocator{next: first}
}

func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}
