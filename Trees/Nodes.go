package Trees

import "golang.org/x/exp/constraints"

// Node in the OrderedTree.
// A nil *Node is an absent subtree. Every node owns its children
// exclusively: a node is never reachable from two places, so there are
// no cycles and no parent links.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
}

// NewNode returns a node holding v that takes ownership of l and r.
// It is up to the caller to make sure l and r are disjoint and keep the
// ordering, see OrderedTree.Verify.
func NewNode[T constraints.Ordered](v T, l, r *Node[T]) *Node[T] {
	return &Node[T]{v, l, r}
}

// Value held by the node.
func (n *Node[T]) Value() T {
	return n.v
}

// Left subtree, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right subtree, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// leaf reports whether n has no children.
func (n *Node[T]) leaf() bool {
	return n.l == nil && n.r == nil
}

// count the nodes in the subtree rooting at n.
// Time: O(n)
func count[T constraints.Ordered](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	return count(n.l) + count(n.r) + 1
}

// height of the subtree rooting at n. An absent subtree has height -1, so a
// leaf has height 0.
// Time: O(n)
func height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return max(height(n.l), height(n.r)) + 1
}
