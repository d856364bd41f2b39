package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// Order of a traversal.
type Order byte

const (
	Pre   Order = iota // node, then left subtree, then right subtree.
	In                 // left subtree, then node, then right subtree.
	Post               // left subtree, then right subtree, then node.
	Level              // breadth first, left before right on each level.
)

func (o Order) String() string {
	switch o {
	case Pre:
		return "pre-order"
	case In:
		return "in-order"
	case Post:
		return "post-order"
	case Level:
		return "level-order"
	}
	return "unknown"
}

// Walk the tree in the given order, calling f on every value until f returns
// false. The depth first orders use an explicit stack instead of recursion,
// so degenerate trees are safe to walk. The tree must not be modified during
// the walk. Walking an empty tree calls nothing. Walk panics if o isn't one
// of Pre, In, Post or Level.
// Time: O(n); Space: O(D) for depth first orders, O(width) for Level.
func (u *OrderedTree[T]) Walk(o Order, f func(T) bool) {
	if o > Level {
		panic("Trees: unknown traversal order " + o.String())
	}
	if u.root == nil {
		return
	}
	switch o {
	case Pre:
		walkPre(u.root, f)
	case In:
		walkIn(u.root, f)
	case Post:
		walkPost(u.root, f)
	case Level:
		walkLevel(u.root, f)
	}
}

func walkPre[T constraints.Ordered](root *Node[T], f func(T) bool) {
	st := arraystack.New()
	for st.Push(root); !st.Empty(); {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		if !f(cur.v) {
			return
		}
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
}

func walkIn[T constraints.Ordered](root *Node[T], f func(T) bool) {
	st := arraystack.New()
	for cur := root; cur != nil || !st.Empty(); {
		for ; cur != nil; cur = cur.l {
			st.Push(cur)
		}
		top, _ := st.Pop()
		n := top.(*Node[T])
		if !f(n.v) {
			return
		}
		cur = n.r
	}
}

func walkPost[T constraints.Ordered](root *Node[T], f func(T) bool) {
	st := arraystack.New()
	var last *Node[T] //the last visited node, telling whether we came back from the right.
	for cur := root; cur != nil || !st.Empty(); {
		if cur != nil {
			st.Push(cur)
			cur = cur.l
			continue
		}
		top, _ := st.Peek()
		n := top.(*Node[T])
		if n.r != nil && n.r != last {
			cur = n.r
		} else {
			if !f(n.v) {
				return
			}
			last = n
			st.Pop()
		}
	}
}

func walkLevel[T constraints.Ordered](root *Node[T], f func(T) bool) {
	q := Queues.MakeArrayQueue[*Node[T]](16)
	for q.Push(root); !q.Empty(); {
		cur, _ := q.Pop()
		if !f(cur.v) {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

func (u *OrderedTree[T]) collect(o Order) []T {
	s := make([]T, 0, u.sz)
	u.Walk(o, func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// PreOrder returns all values visiting each node before its left subtree,
// then its right subtree.
// Time: O(n); Space: O(n)
func (u *OrderedTree[T]) PreOrder() []T {
	return u.collect(Pre)
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(n)
func (u *OrderedTree[T]) InOrder() []T {
	return u.collect(In)
}

// PostOrder returns all values visiting each node after its left subtree,
// then its right subtree.
// Time: O(n); Space: O(n)
func (u *OrderedTree[T]) PostOrder() []T {
	return u.collect(Post)
}

// BFS returns all values level by level from the root, left to right.
// Time: O(n); Space: O(n)
func (u *OrderedTree[T]) BFS() []T {
	return u.collect(Level)
}
