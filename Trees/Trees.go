// Package Trees implements an unbalanced binary search tree over ordered
// values, together with the traversal and shape queries used to inspect it.
package Trees

// Tree represents A tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Has element v.
	Has(v T) bool
	//Remove v from the Tree. Removing an absent value is a no-op.
	Remove(v T)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//FindSecondHighest element of the tree, see OrderedTree.FindSecondHighest
	//for the exact walk.
	FindSecondHighest() (T, bool)
	//Size of the tree.
	Size() uint
	//InOrder returns all elements in the in-order traversal of the tree,
	//which is ascending for a tree that isn't corrupt.
	InOrder() []T
	//IsBalanced reports whether the heights of the two subtrees of every
	//node differ by at most 1.
	IsBalanced() bool
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering of the tree.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var _ Tree[int] = (*OrderedTree[int])(nil)
