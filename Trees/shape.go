package Trees

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func balanced[T constraints.Ordered](c *Node[T]) bool {
	if c == nil {
		return true
	}
	if d := height(c.l) - height(c.r); d > 1 || d < -1 {
		return false
	}
	return balanced(c.l) && balanced(c.r)
}

// IsBalanced [Tree.IsBalanced]. Every node is checked, not only the root. An
// empty tree is balanced. Recursive.
// Time: O(n*D); Space: O(D)
func (u *OrderedTree[T]) IsBalanced() bool {
	return balanced(u.root)
}

// Height of the tree: -1 for an empty tree, 0 for a tree with only a root.
// Recursive.
// Time: O(n); Space: O(D)
func (u *OrderedTree[T]) Height() int {
	return height(u.root)
}

func minDepth[T constraints.Ordered](c *Node[T], cd int) int {
	if c.leaf() {
		return cd
	} else if c.l == nil {
		return minDepth(c.r, cd+1)
	} else if c.r == nil {
		return minDepth(c.l, cd+1)
	}
	return min(minDepth(c.l, cd+1), minDepth(c.r, cd+1))
}

// MinDepth is the depth of the shallowest leaf, where the root has depth 0.
// Returns -1 for an empty tree. Recursive.
func (u *OrderedTree[T]) MinDepth() int {
	if u.root == nil {
		return -1
	}
	return minDepth(u.root, 0)
}

func maxDepth[T constraints.Ordered](c *Node[T], cd int) int {
	if c.leaf() {
		return cd
	} else if c.l == nil {
		return maxDepth(c.r, cd+1)
	} else if c.r == nil {
		return maxDepth(c.l, cd+1)
	}
	return max(maxDepth(c.l, cd+1), maxDepth(c.r, cd+1))
}

// MaxDepth is the depth of the deepest leaf, where the root has depth 0.
// Returns -1 for an empty tree. Recursive.
func (u *OrderedTree[T]) MaxDepth() int {
	if u.root == nil {
		return -1
	}
	return maxDepth(u.root, 0)
}

func sumDepth[T constraints.Ordered](c *Node[T], d int, leaves, total *int) {
	if c.leaf() {
		*leaves++
		*total += d
		return
	}
	if c.l != nil {
		sumDepth(c.l, d+1, leaves, total)
	}
	if c.r != nil {
		sumDepth(c.r, d+1, leaves, total)
	}
}

// AverageDepth of the leaves of the tree. Returns 0 for an empty tree.
// Recursive.
func (u *OrderedTree[T]) AverageDepth() float64 {
	if u.root == nil {
		return 0
	}
	var leaves, total int
	sumDepth(u.root, 0, &leaves, &total)
	return float64(total) / float64(leaves)
}

func printNode[T constraints.Ordered](w io.Writer, c *Node[T], d uint) {
	if c != nil {
		fmt.Fprintln(w, "node", c.v, "depth", d)
		printNode(w, c.l, d+1)
		printNode(w, c.r, d+1)
	}
}

// Print every node with its depth to w in pre-order.
func (u *OrderedTree[T]) Print(w io.Writer) {
	printNode(w, u.root, 0)
}

// verify that every value in the subtree rooting at c lies in the open
// interval (lo, hi); a nil bound is unbounded.
func verify[T constraints.Ordered](c *Node[T], lo, hi *T, d uint) error {
	if c == nil {
		return nil
	}
	if lo != nil && !(*lo < c.v) {
		return errors.Errorf("value %v at depth %d isn't greater than %v", c.v, d, *lo)
	}
	if hi != nil && !(c.v < *hi) {
		return errors.Errorf("value %v at depth %d isn't less than %v", c.v, d, *hi)
	}
	if err := verify(c.l, lo, &c.v, d+1); err != nil {
		return errors.Wrapf(err, "left of %v", c.v)
	}
	if err := verify(c.r, &c.v, hi, d+1); err != nil {
		return errors.Wrapf(err, "right of %v", c.v)
	}
	return nil
}

// Verify checks the ordering of the whole tree and returns an error
// describing the first violation found in pre-order, with the path leading to
// it. Trees built only through Insert and Remove never fail; trees adopted
// through FromRoot or BuildOrderedTree with safe==false might.
// Recursive.
// Time: O(n); Space: O(D)
func (u *OrderedTree[T]) Verify() error {
	return verify(u.root, nil, nil, 0)
}

// Corrupt [Tree.Corrupt]
func (u *OrderedTree[T]) Corrupt() bool {
	return u.Verify() != nil
}
