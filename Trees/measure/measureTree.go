// Command measure benchmarks building and querying an OrderedTree for a
// given insertion order, and reports the shape of the resulting trees.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"slices"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
)

var (
	bAddN  = flag.Int("n", 100000, "number of values inserted per run")
	bSteps = flag.Int("steps", 10, "number of measured runs")
	bOrder = flag.String("order", "random", "insertion order: random, ascending, or build")
	bSeed  = flag.Int64("seed", 0, "seed of the random insertion order")
)

var _R *rand.Rand

func values() []int {
	all := make([]int, *bAddN)
	for i := range all {
		all[i] = i
	}
	if *bOrder == "random" {
		_R.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	}
	return all
}

func create(all []int) *Trees.OrderedTree[int] {
	if *bOrder == "build" {
		return Trees.BuildOrderedTree(all, false)
	}
	tree := Trees.New[int]()
	for _, v := range all {
		tree.Insert(v)
	}
	return tree
}

var last *Trees.OrderedTree[int]

func BenchmarkBuildQry(b *testing.B) {
	for range b.N {
		b.StopTimer()
		all := values()
		b.StartTimer()
		tree := create(all)
		for _, v := range all {
			if tree.Find(v) == nil {
				b.Fatalf("missing %d", v)
			}
		}
		last = tree
	}
}

func main() {
	testing.Init()
	flag.Parse()
	switch *bOrder {
	case "random", "ascending", "build":
	default:
		fmt.Fprintf(os.Stderr, "unknown order %q\n", *bOrder)
		os.Exit(2)
	}
	if *bSteps < 1 || *bAddN < 1 {
		fmt.Fprintln(os.Stderr, "n and steps must be positive")
		os.Exit(2)
	}
	_R = rand.New(rand.NewSource(*bSeed))

	var cs []float64
	for i := 0; i < *bSteps; i++ {
		br := testing.Benchmark(BenchmarkBuildQry)
		cs = append(cs, float64(br.T.Milliseconds())/float64(br.N))
		fmt.Printf("%d: %s\n", i, br)
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	fmt.Printf("average: %fms/op\n", avg)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(len(cs))))
	if last != nil {
		fmt.Printf("size: %d, height: %d, min depth: %d, average depth: %f, balanced: %t, sorted: %t\n",
			last.Size(), last.Height(), last.MinDepth(), last.AverageDepth(), last.IsBalanced(), slices.IsSorted(last.InOrder()))
	}
}
