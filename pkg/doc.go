// Package pkg provides the core libraries for tripgraph route planning.
//
// # Overview
//
// tripgraph turns a text map of locations and roads into a graph and prints
// the shortest trip through a list of stops as numbered directions. The pkg
// directory is organized into three areas:
//
//  1. [graph] - Integer-vertex graphs with labels, search and traversal
//  2. [trip] - Road maps, the planner and report rendering
//  3. Infrastructure - [cache], [errors], [observability] and [buildinfo]
//
// # Architecture
//
// The typical data flow through tripgraph:
//
//	Map file
//	   ↓
//	[trip] ReadMapFile (locations → vertices, roads → labeled edges)
//	   ↓
//	[graph/search] shortest path per leg (A* with straight-line estimate)
//	   ↓
//	[trip] Report (merged, numbered steps)
//	   ↓
//	text output, optionally cached by [cache]
//
// # Quick Start
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/tripgraph/pkg/trip"
//	)
//
//	m, _ := trip.ReadMapFile(context.Background(), "bay.map")
//	report, _ := trip.NewPlanner(m).Plan(context.Background(), []string{"Albany", "San_Francisco"})
//	report.WriteTo(os.Stdout)
//
// # Main Packages
//
// [graph] - Directed and undirected graphs over recycled integer ids, with
// lazily evaluated [graph.Iteration] results and the [graph.Labeled] decorator.
// Subpackages add shortest paths (graph/search) and hook-driven depth-first
// traversal (graph/traverse).
//
// [trip] - Map parsing, road directions, the leg-by-leg planner and a cached
// [trip.Runner] used by the CLI.
//
// [cache] - File-backed report cache with content-addressed keys.
//
// [errors] - Structured error codes shared by the CLI and libraries.
//
// [observability] - Hook registry for map loading, searches and cache events.
//
// [graph]: github.com/matzehuels/tripgraph/pkg/graph
// [trip]: github.com/matzehuels/tripgraph/pkg/trip
// [cache]: github.com/matzehuels/tripgraph/pkg/cache
// [errors]: github.com/matzehuels/tripgraph/pkg/errors
// [observability]: github.com/matzehuels/tripgraph/pkg/observability
// [buildinfo]: github.com/matzehuels/tripgraph/pkg/buildinfo
package pkg
