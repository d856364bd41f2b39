package Trees

import (
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

func randomValues(n, valRange int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = rg.Intn(valRange)
	}
	return a
}

// checkContent verifies that every traversal of tree visits exactly the values in content.
func checkContent(t *testing.T, tree *OrderedTree[int], content map[int]struct{}) {
	t.Helper()
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for _, o := range []Order{Pre, In, Post, Level} {
		var s []int
		tree.Walk(o, func(v int) bool {
			s = append(s, v)
			return true
		})
		if len(s) != len(content) {
			t.Errorf("%v has %d values, want %d", o, len(s), len(content))
		}
		seen := make(map[int]struct{}, len(s))
		for _, v := range s {
			if _, in := content[v]; !in {
				t.Errorf("%v has non existent key %v", o, v)
			}
			if _, in := seen[v]; in {
				t.Errorf("%v visits key %v twice", o, v)
			}
			seen[v] = struct{}{}
		}
	}
	if s := tree.InOrder(); !slices.IsSorted(s) {
		t.Log(s)
		t.Errorf("in-order is not sorted")
	}
	if err := tree.Verify(); err != nil {
		t.Errorf("tree is corrupt: %v", err)
	}
}

func TestTree_Insert(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for _, b := range randomValues(tAddN, tAddValRange) {
		_, in := content[b]
		sz := tree.Size()
		if tree.Insert(b) != tree {
			t.Fatalf("insert doesn't return the tree")
		}
		if !in && tree.Size() != sz+1 {
			t.Errorf("failed to insert key %v", b)
		} else if in && tree.Size() != sz {
			t.Errorf("inserted key %v twice", b)
		}
		content[b] = struct{}{}
	}
	t.Logf("depth: %f, size: %d.\n", tree.AverageDepth(), tree.Size())
	for k := range content {
		if n := tree.Find(k); n == nil || n.Value() != k {
			t.Errorf("tree does not have key %v", k)
		}
	}
	checkContent(t, tree, content)
}

func TestTree_InsertRecursively(t *testing.T) {
	a := randomValues(tAddN, tAddValRange)
	t1, t2 := New[int](), New[int]()
	for _, b := range a {
		t1.Insert(b)
		t2.InsertRecursively(b)
	}
	if t1.Size() != t2.Size() {
		t.Errorf("sizes differ: %d and %d", t1.Size(), t2.Size())
	}
	//pre-order and in-order together determine the shape.
	if !slices.Equal(t1.PreOrder(), t2.PreOrder()) {
		t.Errorf("pre-order differs")
	}
	if !slices.Equal(t1.InOrder(), t2.InOrder()) {
		t.Errorf("in-order differs")
	}
	if !slices.Equal(t1.BFS(), t2.BFS()) {
		t.Errorf("level-order differs")
	}
}

func TestTree_Find(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for _, b := range randomValues(tAddN, tAddValRange) {
		tree.Insert(b)
		content[b] = struct{}{}
	}
	for v := -1; v <= tAddValRange; v++ {
		_, in := content[v]
		n1, n2 := tree.Find(v), tree.FindRecursively(v)
		if n1 != n2 {
			t.Errorf("Find and FindRecursively disagree on %v", v)
		}
		if (n1 != nil) != in || tree.Has(v) != in {
			t.Errorf("found %v is %t, want %t", v, n1 != nil, in)
		}
	}
}

func TestTree_Remove(t *testing.T) {
	tree := New[int]()
	tree.Remove(0)
	if tree.Size() != 0 || tree.Root() != nil {
		t.Errorf("removing from an empty tree changed it")
	}
	content := make(map[int]struct{})
	a := randomValues(tAddN, tAddValRange)
	for _, b := range a {
		tree.Insert(b)
		content[b] = struct{}{}
	}
	for i := range rg.Intn(len(a)) {
		tree.Remove(a[i])
		delete(content, a[i])
		if tree.Has(a[i]) {
			t.Errorf("key %v is still present after removal", a[i])
		}
		sz := tree.Size()
		tree.Remove(a[i])
		if tree.Size() != sz {
			t.Errorf("can remove a second time key %v", a[i])
		}
	}
	t.Logf("depth: %f, size: %d.\n", tree.AverageDepth(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	checkContent(t, tree, content)
}

func TestTree_InsertRemove(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for range 4 {
		a := randomValues(rg.Intn(tAddN)+1, tAddValRange)
		for _, b := range a {
			if rg.Intn(2) == 0 {
				tree.Insert(b)
			} else {
				tree.InsertRecursively(b)
			}
			content[b] = struct{}{}
		}
		for i := range rg.Intn(len(a)) {
			tree.Remove(a[i])
			delete(content, a[i])
		}
		checkContent(t, tree, content)
	}
	for k := range content {
		tree.Remove(k)
	}
	if tree.Size() != 0 || tree.Root() != nil {
		t.Errorf("tree isn't empty after removing everything, size %d", tree.Size())
	}
}

func TestTree_Walk(t *testing.T) {
	tree := New[int]()
	for _, b := range randomValues(tAddN, tAddValRange) {
		tree.Insert(b)
	}
	for _, o := range []Order{Pre, In, Post, Level} {
		for range 10 {
			stop := rg.Intn(int(tree.Size())) + 1
			var s []int
			tree.Walk(o, func(v int) bool {
				s = append(s, v)
				return len(s) < stop
			})
			if len(s) != stop {
				t.Errorf("%v visited %d values, want to stop at %d", o, len(s), stop)
			}
		}
	}
	if s := tree.InOrder(); !slices.IsSorted(s) {
		t.Errorf("walks modified the tree")
	}
}

func TestTree_Degenerate(t *testing.T) {
	const n = 1 << 12
	tree := New[int]()
	for i := range n {
		tree.Insert(i)
	}
	if tree.Height() != n-1 || tree.MinDepth() != n-1 || tree.MaxDepth() != n-1 {
		t.Errorf("height is %d, want %d", tree.Height(), n-1)
	}
	if tree.IsBalanced() {
		t.Errorf("degenerate tree is balanced")
	}
	for _, s := range [][]int{tree.PreOrder(), tree.InOrder(), tree.BFS()} {
		if len(s) != n || !slices.IsSorted(s) {
			t.Errorf("traversal of an ascending chain isn't ascending")
		}
	}
	if s := tree.PostOrder(); len(s) != n || s[0] != n-1 || s[n-1] != 0 {
		t.Errorf("post-order of an ascending chain isn't descending")
	}
	if v, ok := tree.FindSecondHighest(); !ok || v != n-2 {
		t.Errorf("second highest is %d, want %d", v, n-2)
	}
}

func TestTree_SecondHighest(t *testing.T) {
	for range 100 {
		tree := New[int]()
		for _, b := range randomValues(rg.Intn(64)+2, 128) {
			tree.Insert(b)
		}
		s := tree.InOrder()
		v, ok := tree.FindSecondHighest()
		if len(s) < 2 {
			if ok {
				t.Errorf("tree of size %d has a second highest %d", len(s), v)
			}
			continue
		}
		if !ok || v != s[len(s)-2] {
			t.Errorf("second highest is %d %t, want %d", v, ok, s[len(s)-2])
		}
	}
}

func TestTree_Build(t *testing.T) {
	content := make(map[int]struct{})
	for _, b := range randomValues(tAddN, tAddValRange) {
		content[b] = struct{}{}
	}
	s := make([]int, 0, len(content))
	for k := range content {
		s = append(s, k)
	}
	slices.Sort(s)
	tree := BuildOrderedTree(s, true)
	if !tree.IsBalanced() {
		t.Errorf("built tree isn't balanced")
	}
	t.Logf("depth: %f, size: %d.\n", tree.AverageDepth(), tree.Size())
	if !slices.Equal(tree.InOrder(), s) {
		t.Errorf("built tree doesn't hold the slice")
	}
	checkContent(t, tree, content)
	if adopted := FromRoot(BuildOrderedTree(s, false).Root()); adopted.Size() != tree.Size() {
		t.Errorf("adopted tree has size %d, want %d", adopted.Size(), tree.Size())
	} else if !slices.Equal(adopted.PreOrder(), tree.PreOrder()) || adopted.Root() == tree.Root() {
		t.Errorf("adopted tree doesn't own a copy of the built shape")
	}
}
