package Trees

import "fmt"

// InvalidSliceError is the panic value of BuildOrderedTree when the given
// slice isn't strictly ascending: Prev is found right before Next.
type InvalidSliceError[T any] struct {
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending: %v is followed by %v", e.Prev, e.Next)
}
