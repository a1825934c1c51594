package graph_test

import (
	"fmt"

	"github.com/matzehuels/tripgraph/pkg/graph"
)

func ExampleDirected() {
	g := graph.NewDirected()
	for range 4 {
		g.Add()
	}
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(1, 3)
	_, _ = g.AddEdge(3, 4)

	fmt.Println("Vertices:", g.VertexSize())
	fmt.Println("Edges:", g.EdgeSize())
	fmt.Println("Successors of 1:", g.Successors(1).Collect())
	fmt.Println("Predecessors of 4:", g.Predecessors(4).Collect())
	// Output:
	// Vertices: 4
	// Edges: 3
	// Successors of 1: [2 3]
	// Predecessors of 4: [3]
}

func ExampleUndirected() {
	g := graph.NewUndirected()
	for range 4 {
		g.Add()
	}
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(3, 4)
	g.RemoveEdge(4, 3)

	fmt.Println(g.ContainsEdge(2, 1), g.ContainsEdge(3, 4))
	// Output:
	// true false
}

func ExampleDirected_Add() {
	// Removed ids are reused, smallest first.
	g := graph.NewDirected()
	for range 5 {
		g.Add()
	}
	g.Remove(4)
	g.Remove(2)

	fmt.Println(g.Add(), g.Add(), g.Add())
	// Output:
	// 2 4 6
}

func ExampleLabeled() {
	g := graph.NewLabeled[string, float64](graph.NewDirected())
	home := g.AddLabeled("home")
	work := g.AddLabeled("work")
	_, _ = g.AddLabeledEdge(home, work, 4.5)

	name, _ := g.Label(work)
	km, _ := g.EdgeLabel(home, work)
	fmt.Printf("%s is %.1f km away\n", name, km)
	// Output:
	// work is 4.5 km away
}
