package pathfind

import (
	"container/heap"
	"fmt"

	"github.com/trayweave/cableroute/core"
)

// Dijkstra computes shortest distances from the source vertex (set via
// WithSource) to every reachable vertex of g, or — when WithTargets is
// given — until every named target has been finalized.
//
// Returns:
//
//   - dist: vertex ID -> distance from the nearest source (infDistance if
//     never reached before the search stopped; a vertex reached but not
//     yet finalized when the search stopped early holds a tentative value).
//   - prev: vertex ID -> predecessor on the shortest path, nil unless
//     WithReturnPath was set.
//   - err: ErrEmptySource, ErrNilGraph, ErrVertexNotFound, or
//     ErrNegativeWeight.
//
// Steps:
//  1. Validate options and graph.
//  2. Pre-scan edges for negative weights.
//  3. Run a heap-ordered relaxation loop from the source, breaking ties on
//     insertion order so repeated runs are reproducible.
//  4. Stop early once all targets are finalized, if any were given.
//
// Complexity: O((V+E) log V). Concurrency: none; g is read-only.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cfg.Sources) == 0 {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	for _, s := range cfg.Sources {
		if !g.HasVertex(s) {
			return nil, nil, ErrVertexNotFound
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s->%s weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner{
		g:         g,
		targets:   cfg.Targets,
		remaining: len(cfg.Targets),
		dist:      make(map[string]float64, g.VertexCount()),
		visited:   make(map[string]bool, g.VertexCount()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, g.VertexCount())
	}

	for _, v := range g.Vertices() {
		r.dist[v] = infDistance
	}

	heap.Init(&r.pq)
	for _, s := range cfg.Sources {
		r.dist[s] = 0
		heap.Push(&r.pq, &pqItem{id: s, dist: 0, seq: r.nextSeq()})
	}

	r.run()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for one Dijkstra execution.
type runner struct {
	g         *core.Graph
	targets   map[string]struct{}
	remaining int

	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool

	pq  priorityQueue
	seq uint64
}

func (r *runner) nextSeq() uint64 {
	r.seq++

	return r.seq
}

// run drains the priority queue, relaxing each finalized vertex's outgoing
// edges, until the queue empties or every target has been reached.
func (r *runner) run() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pqItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if r.targets != nil {
			if _, want := r.targets[u]; want {
				r.remaining--
			}
		}

		r.relax(u, item.dist)

		if r.targets != nil && r.remaining <= 0 {
			return
		}
	}
}

// relax examines u's outgoing edges and updates dist/prev for any
// neighbor reached more cheaply via u, pushing a fresh heap entry for it.
// Stale entries for a vertex already finalized are left in the heap and
// discarded when popped (lazy decrease-key).
func (r *runner) relax(u string, du float64) {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return
	}
	for _, e := range neighbors {
		v := e.To
		if r.visited[v] {
			continue
		}
		newDist := du + e.Weight
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &pqItem{id: v, dist: newDist, seq: r.nextSeq()})
	}
}

// pqItem is a (vertex, distance) pair ordered in the heap by distance,
// with insertion order as a tie-break so equal-distance vertices are
// always popped in the same order across runs.
type pqItem struct {
	id   string
	dist float64
	seq  uint64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
