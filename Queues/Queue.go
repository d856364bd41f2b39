// Package Queues implements FIFO queues used as work queues by the tree
// traversals.
package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError if the queue is empty.
	Pop() (T, error)
	//Peek the oldest item without removing it. Returns the zero value of T
	//if the queue is empty.
	Peek() T
	Empty() bool
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
