// Command dcmapdemo runs a handful of hardcoded scenarios against the
// cmap package, gating each one behind a boolean flag instead of flag
// parsing.
package main

import (
	"github.com/MaxQu/dcmap/cmap"
	"github.com/MaxQu/dcmap/dart"
	"github.com/plan-systems/klog"
)

func main() {
	runEdgeSplit := true
	runDanglingEdgeLifecycle := true
	runVolumeFacetRejection := true

	if runEdgeSplit {
		demoSplitAnEdge()
	}
	if runDanglingEdgeLifecycle {
		demoDanglingEdgeLifecycle()
	}
	if runVolumeFacetRejection {
		demoRejectsAnOpenVolumeFacetPath()
	}
}

// demoSplitAnEdge inserts a vertex into a single isolated edge and checks
// the map is still well-formed afterwards.
func demoSplitAnEdge() {
	m := cmap.NewMap[string](1, cmap.WithAllAttributesEnabled())
	a := m.CreateDart()
	m.SetAttribute(a, 1, "segment-AB")

	klog.Infof("dcmapdemo: splitting an isolated edge (%d darts before)", m.NumberOfDarts())
	mid := m.InsertCell0InCell1(a)
	klog.Infof("dcmapdemo: new vertex dart %v, %d darts after", mid, m.NumberOfDarts())

	if err := m.IsValid(); err != nil {
		klog.Errorf("dcmapdemo: map is invalid after split: %v", err)
		return
	}
	klog.Infof("dcmapdemo: split-edge map is valid")
}

// demoDanglingEdgeLifecycle grows a dangling edge off a lone dart, splits
// it with a vertex, then contracts that vertex back out — a round trip
// through insert_cell_0_in_cell_2's sibling and contract_cell.
func demoDanglingEdgeLifecycle() {
	m := cmap.NewMap[int](2)
	a := m.CreateDart()

	tip := m.InsertDanglingCell1InCell2(a)
	klog.Infof("dcmapdemo: grew a dangling edge, tip dart %v, %d darts", tip, m.NumberOfDarts())
	if err := m.IsValid(); err != nil {
		klog.Errorf("dcmapdemo: invalid after dangling insert: %v", err)
		return
	}

	mid := m.InsertCell0InCell1(tip)
	klog.Infof("dcmapdemo: split the dangling edge at %v, %d darts", mid, m.NumberOfDarts())
	if err := m.IsValid(); err != nil {
		klog.Errorf("dcmapdemo: invalid after edge split: %v", err)
		return
	}

	if !m.IsContractible(1, tip) {
		klog.Errorf("dcmapdemo: expected the split segment to be contractible")
		return
	}
	n := m.ContractCell(1, tip)
	klog.Infof("dcmapdemo: contracted the new segment, erased %d darts, %d remain", n, m.NumberOfDarts())
}

// demoRejectsAnOpenVolumeFacetPath shows is_insertable_cell_2_in_cell_3
// rejecting a path that cannot possibly close onto itself: a single dart
// with no other extremity.
func demoRejectsAnOpenVolumeFacetPath() {
	m := cmap.NewMap[int](3)
	a := m.CreateDart()

	ok, err := m.IsInsertableCell2InCell3([]dart.Handle{a})
	if !ok {
		klog.Infof("dcmapdemo: single-dart path rejected as expected: %v", err)
		return
	}
	klog.Errorf("dcmapdemo: single-dart path was unexpectedly accepted")
}
