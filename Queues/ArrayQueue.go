package Queues

// circArrQ holds items in content[head], content[head+1], ... wrapping around
// the end of content. tail is the next slot to write.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns a Queue backed by a growable circular array with room
// for initCap items before the first growth. An initCap of 0 is allowed.
func MakeArrayQueue[T any](initCap uint) Queue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize the backing array to newLen>sz, moving the items to the front.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content, u.head = nc, 0
	u.tail = u.sz
}

// Push item to the end of the queue, growing the backing array by half when
// it's full.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(l + l>>1 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() (item T) {
	if u.Empty() {
		return
	}
	return u.content[u.head]
}
