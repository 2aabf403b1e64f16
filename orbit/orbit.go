// Package orbit walks the dart orbits that recover topological cells from
// the raw β-linkage. It is a pure-read collaborator: nothing here mutates
// the map.
//
// The walking style here — following one β-slot at a time, stopping on a
// free slot or a return to the start — is the same shape as a half-edge
// mesh's inline face walk (ENext/ETwin), generalized into reusable,
// dimension-parametrized orbit walks shared by the predicates and operators.
package orbit

import "github.com/MaxQu/dcmap/dart"

// Reader is the minimal read surface an orbit walk needs from a map: the
// dimension, and β_i lookups. *dart.Store satisfies it directly.
type Reader interface {
	Dim() int
	Beta(h dart.Handle, i int) dart.Handle
}

// Cell returns every dart in the i-cell of start: the orbit generated by
// {β_j : j in [1,d], j != i}, walked breadth-first
// (CMap_dart_iterator_basic_of_cell<Map,i> in the original source). β_0 is
// never a generator here: since β_0 is stored as β_1's partial inverse
// rather than an independent involution (dart.Store's own convention), it
// would be redundant with β_1 as a generator rather than adding any darts
// β_1 cannot already reach. Order is: start first, then darts in BFS
// discovery order.
func Cell(r Reader, start dart.Handle, i int) []dart.Handle {
	dim := r.Dim()
	visited := map[dart.Handle]bool{start: true}
	queue := []dart.Handle{start}
	order := []dart.Handle{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for j := 1; j <= dim; j++ {
			if j == i {
				continue
			}
			n := r.Beta(cur, j)
			if n.IsNull() || visited[n] {
				continue
			}
			visited[n] = true
			order = append(order, n)
			queue = append(queue, n)
		}
	}
	return order
}

// Generated returns the orbit generated by repeatedly applying any β_j for
// j in dims, breadth-first. Used for the handful of small fixed-generator
// orbits the operators need (e.g. the 2-element β_2-orbit of an edge-pair)
// where spelling out the generator set is clearer than excluding one
// dimension as Cell does.
func Generated(r Reader, start dart.Handle, dims []int) []dart.Handle {
	visited := map[dart.Handle]bool{start: true}
	queue := []dart.Handle{start}
	order := []dart.Handle{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, j := range dims {
			n := r.Beta(cur, j)
			if n.IsNull() || visited[n] {
				continue
			}
			visited[n] = true
			order = append(order, n)
			queue = append(queue, n)
		}
	}
	return order
}

// Walk01From walks the 1-involution orbit <β0,β1> as seen starting at
// start: first the forward chain start, β1(start),
// β1²(start), ... out to a β1-free dart or back around to start (closed
// case, in which the walk already covers every dart and stops there);
// then, only if the forward walk ended on a free slot rather than closing,
// the backward chain β0(start), β0²(start), ... out to a β0-free dart.
//
// The generator set {β0,β1} does not by itself pin down a visitation order;
// this picks the order CMap_dart_iterator_basic_of_involution<Map,1> would
// plausibly produce: rooted at the given start, forward side first, then
// backward side. For a closed orbit (the common case: a
// closed facet boundary) the order is simply the cyclic β1-walk and this
// ambiguity does not arise.
func Walk01From(r Reader, start dart.Handle) []dart.Handle {
	seq := []dart.Handle{start}
	cur := start
	closed := false
	for {
		next := r.Beta(cur, 1)
		if next.IsNull() {
			break
		}
		if next == start {
			closed = true
			break
		}
		seq = append(seq, next)
		cur = next
	}
	if closed {
		return seq
	}
	cur = start
	for {
		prev := r.Beta(cur, 0)
		if prev.IsNull() {
			break
		}
		seq = append(seq, prev)
		cur = prev
	}
	return seq
}

// RewindToOpenStart walks β0 backward from d until either β0 is free (d is
// at the head of an open facet boundary) or the walk returns to d itself
// (the facet is closed, in which case d is as good a start as any). Grounds
// insert_cell_0_in_cell_2's own comment, "If the facet is open, we search
// the dart 0-free".
func RewindToOpenStart(r Reader, d dart.Handle) dart.Handle {
	first := d
	for {
		prev := r.Beta(first, 0)
		if prev.IsNull() {
			return first
		}
		if prev == d {
			return d
		}
		first = prev
	}
}

// Walk1Forward walks forward via β1 only, starting at first, stopping when
// β1 is free (open chain) or when it returns to first (closed chain, in
// which case first is included exactly once, at the head). Used by
// InsertCell0InCell2 after RewindToOpenStart has found the boundary's head.
func Walk1Forward(r Reader, first dart.Handle) []dart.Handle {
	seq := []dart.Handle{first}
	cur := first
	for {
		next := r.Beta(cur, 1)
		if next.IsNull() || next == first {
			break
		}
		seq = append(seq, next)
		cur = next
	}
	return seq
}

// SameCell reports whether a and b lie in the same k-cell of a map with
// the given dimension, i.e. b is reachable from a in the orbit generated by
// {β_j : j in [1,d], j != k}. Grounds belong_to_same_cell<Map,0,2> used by
// is_insertable_cell_2_in_cell_3's path validation.
func SameCell(r Reader, a, b dart.Handle, k int) bool {
	if a == b {
		return true
	}
	for _, d := range Cell(r, a, k) {
		if d == b {
			return true
		}
	}
	return false
}
