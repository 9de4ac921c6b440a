package simulator_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dkoval/emergenet/sched"
	"github.com/dkoval/emergenet/simulator"
)

func newQuietSimulator() *simulator.Simulator {
	return simulator.New(
		simulator.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

// Submit a routing analysis and print its report once it lands in the inbox.
func ExampleSimulator_RunShortestPath() {
	sim := newQuietSimulator()

	task := sim.RunShortestPath(1, 8)
	task.Wait()

	for _, msg := range sim.Poll() {
		if msg.Kind == sched.KindReport {
			fmt.Println(msg.Text)
		}
	}
	// Output:
	// Shortest Path (Dijkstra) Node 1 -> 8:
	// Path: [1 3 5 6 7 8]
	// Total Weight: 14
}

// Color the sites so that no two linked sites share a frequency band.
func ExampleSimulator_RunColoring() {
	sim := newQuietSimulator()

	task := sim.RunColoring()
	task.Wait()

	for _, msg := range sim.Poll() {
		if msg.Kind == sched.KindReport {
			fmt.Println(msg.Text)
		}
	}
	// Output:
	// Graph Coloring Complete.
	// Chromatic Number: 2
	// Mapping: {1:1, 2:0, 3:0, 4:1, 5:1, 6:0, 7:1, 8:0}
}

// Fail a site and observe both the notice and the shrunken topology.
func ExampleSimulator_FailNode() {
	sim := newQuietSimulator()

	if err := sim.FailNode(4); err != nil {
		fmt.Println("unexpected:", err)
		return
	}
	for _, msg := range sim.Poll() {
		fmt.Println(msg.Text)
	}
	g := sim.CurrentGraph()
	fmt.Printf("%d sites, %d links remain\n", g.NodeCount(), g.EdgeCount())
	// Output:
	// Node 4 has failed and was removed.
	// 7 sites, 6 links remain
}
