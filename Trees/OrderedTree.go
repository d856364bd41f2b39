package Trees

import (
	"golang.org/x/exp/constraints"
)

// OrderedTree is a binary search tree with no repeated values. It never
// rebalances, so its shape is purely a function of the order of insertions
// and removals; the height D is O(log n) for random orders and O(n) for
// monotonic ones.
// For every node, values in the left subtree are strictly less than the
// node's value and values in the right subtree are strictly greater.
// The zero value is an empty tree ready to use. An OrderedTree must not be
// used by multiple goroutines concurrently.
type OrderedTree[T constraints.Ordered] struct {
	root *Node[T] //nil when the tree is empty.
	sz   uint
}

// New returns an empty OrderedTree.
func New[T constraints.Ordered]() *OrderedTree[T] {
	return &OrderedTree[T]{}
}

// FromValue returns an OrderedTree holding only v.
func FromValue[T constraints.Ordered](v T) *OrderedTree[T] {
	return &OrderedTree[T]{&Node[T]{v: v}, 1}
}

// FromRoot returns an OrderedTree that takes ownership of the tree rooting at
// root, which may be nil. The ordering of the given nodes isn't checked,
// call Verify for that.
// Time: O(n)
func FromRoot[T constraints.Ordered](root *Node[T]) *OrderedTree[T] {
	return &OrderedTree[T]{root, count(root)}
}

// BuildOrderedTree builds an OrderedTree using the given sorted slice recursively.
// This is faster than repeatedly calling Insert and gives a tree of minimal height.
// The given slice must be sorted in ascending order and mustn't contain
// duplicate elements.
// If safe==true, this function will check if the conditions are met and panic with
// InvalidSliceError if the conditions are broken. Otherwise, this function won't
// perform the check, and it is up to the user to ensure the conditions are met
// (otherwise the tree will be corrupt).
// Time: O(n).
func BuildOrderedTree[T constraints.Ordered](sli []T, safe bool) *OrderedTree[T] {
	var build func([]T) *Node[T]
	if safe {
		build = func(s []T) *Node[T] {
			if len(s) == 0 {
				return nil
			}
			mid := len(s) >> 1
			if mid > 0 && !(s[mid-1] < s[mid]) {
				panic(InvalidSliceError[T]{s[mid-1], s[mid]})
			}
			if mid+1 < len(s) && !(s[mid] < s[mid+1]) {
				panic(InvalidSliceError[T]{s[mid], s[mid+1]})
			}
			return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
		}
	} else {
		build = func(s []T) *Node[T] {
			if len(s) == 0 {
				return nil
			}
			mid := len(s) >> 1
			return &Node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
		}
	}
	return &OrderedTree[T]{build(sli), uint(len(sli))}
}

// Root of the tree, nil if the tree is empty.
func (u *OrderedTree[T]) Root() *Node[T] {
	return u.root
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *OrderedTree[T]) Size() uint {
	return u.sz
}

// Clear the tree. The removed nodes are left to the garbage collector.
func (u *OrderedTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Insert v into the tree by descending from the root and attaching a new leaf
// at the first vacant slot. Inserting a value that is already present is a
// no-op. Returns u for chaining.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Insert(v T) *OrderedTree[T] {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else if v > cur.v {
			curPtr = &cur.r
		} else {
			return u
		}
	}
	*curPtr = &Node[T]{v: v}
	u.sz++
	return u
}

// insert v to the subtree rooting at cur recursively. cur is passed by
// reference. Returns true if a node is created.
func (u *OrderedTree[T]) insert(curPtr **Node[T], v T) bool {
	if cur := *curPtr; cur == nil {
		*curPtr = &Node[T]{v: v}
		return true
	} else if v < cur.v {
		return u.insert(&cur.l, v)
	} else if v > cur.v {
		return u.insert(&cur.r, v)
	}
	return false
}

// InsertRecursively is the same as Insert, but descends with one call per
// level of the tree. Both give identical trees for identical sequences of
// values. Recursive.
// Time: O(D); Space: O(D)
func (u *OrderedTree[T]) InsertRecursively(v T) *OrderedTree[T] {
	if u.insert(&u.root, v) {
		u.sz++
	}
	return u
}

// Find the node holding v. Returns nil if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v == cur.v {
			return cur
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return nil
}

func find[T constraints.Ordered](cur *Node[T], v T) *Node[T] {
	if cur == nil || v == cur.v {
		return cur
	} else if v < cur.v {
		return find(cur.l, v)
	}
	return find(cur.r, v)
}

// FindRecursively is the same as Find. Recursive.
// Time: O(D); Space: O(D)
func (u *OrderedTree[T]) FindRecursively(v T) *Node[T] {
	return find(u.root, v)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// remove v from the subtree rooting at cur recursively and returns the new
// root of that subtree, which the caller reattaches in place of cur.
// A node with two children isn't unlinked: the value of its in-order
// successor is copied into it and the successor is removed from the right
// subtree instead, where it has at most one child.
func (u *OrderedTree[T]) remove(cur *Node[T], v T) *Node[T] {
	if cur == nil {
		return nil
	}
	if v < cur.v {
		cur.l = u.remove(cur.l, v)
		return cur
	} else if v > cur.v {
		cur.r = u.remove(cur.r, v)
		return cur
	}
	if cur.l == nil {
		u.sz--
		return cur.r
	} else if cur.r == nil {
		u.sz--
		return cur.l
	}
	s := cur.r
	for s.l != nil {
		s = s.l
	}
	cur.v = s.v
	cur.r = u.remove(cur.r, s.v)
	return cur
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D); Space: O(D)
func (u *OrderedTree[T]) Remove(v T) {
	u.root = u.remove(u.root, v)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// FindSecondHighest walks the right spine from the root to the maximum while
// tracking its parent. If the maximum has a left subtree, the result is the
// rightmost value of that subtree; otherwise it is the parent's value.
// Returns false for an empty tree or a tree with only a root.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) FindSecondHighest() (T, bool) {
	if u.root == nil || u.root.leaf() {
		return *new(T), false
	}
	cur, p := u.root, (*Node[T])(nil)
	for cur.r != nil {
		p, cur = cur, cur.r
	}
	if cur = cur.l; cur != nil {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
	//cur was the maximum without a left child, so it isn't the root.
	return p.v, true
}
