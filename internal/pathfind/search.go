package pathfind

import (
	"container/heap"
	"math"

	"github.com/vovakirdan/hexcat/internal/hexgrid"
)

// breadthFirst expands tiles in FIFO order. Tiles are marked visited when
// enqueued, so each one is expanded at most once and the first border tile
// dequeued is a minimum-hop one.
func breadthFirst(b Board, start hexgrid.Coord) Result {
	s := newSearch(b)
	seen := make([]bool, len(s.parent))

	queue := make([]int, 0, len(s.parent))
	first := s.index(start)
	queue = append(queue, first)
	seen[first] = true
	end := -1

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		s.visited = append(s.visited, cur)

		if s.isBorder(cur) {
			end = cur
			break
		}

		for _, n := range s.open(cur) {
			ni := s.index(n)
			if seen[ni] {
				continue
			}
			seen[ni] = true
			s.parent[ni] = cur
			queue = append(queue, ni)
		}
	}

	return s.result(end)
}

// depthFirst expands tiles in LIFO order, pushing unvisited neighbors in
// offset-table order. The path it finds is not necessarily the shortest.
func depthFirst(b Board, start hexgrid.Coord) Result {
	s := newSearch(b)
	seen := make([]bool, len(s.parent))

	stack := make([]int, 0, len(s.parent))
	first := s.index(start)
	stack = append(stack, first)
	seen[first] = true
	end := -1

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.visited = append(s.visited, cur)

		if s.isBorder(cur) {
			end = cur
			break
		}

		for _, n := range s.open(cur) {
			ni := s.index(n)
			if seen[ni] {
				continue
			}
			seen[ni] = true
			s.parent[ni] = cur
			stack = append(stack, ni)
		}
	}

	return s.result(end)
}

// aStar orders the frontier by f = g + h, where g is the hop count from the
// start and h the distance to the nearest border ignoring obstacles.
func aStar(b Board, start hexgrid.Coord) Result {
	s := newSearch(b)
	best := make([]int, len(s.parent))
	for i := range best {
		best[i] = math.MaxInt
	}

	heuristic := func(i int) int {
		return hexgrid.BorderDistance(s.coord(i), s.rows, s.cols)
	}

	open := &nodeQueue{}
	first := s.index(start)
	best[first] = 0
	open.push(first, 0, heuristic(first))
	end := -1

	for open.Len() > 0 {
		cur := heap.Pop(open).(node)

		// A cheaper route to this tile was found after this entry was queued.
		if best[cur.tile] < cur.g {
			continue
		}

		s.visited = append(s.visited, cur.tile)
		if s.isBorder(cur.tile) {
			end = cur.tile
			break
		}

		for _, n := range s.open(cur.tile) {
			ni := s.index(n)
			cost := cur.g + 1
			if cost >= best[ni] {
				continue
			}
			best[ni] = cost
			s.parent[ni] = cur.tile
			open.push(ni, cost, heuristic(ni))
		}
	}

	return s.result(end)
}

// node is an entry in the A* open set.
type node struct {
	tile int
	g    int
	f    int
	seq  int // insertion order, breaks ties between equal f
}

// nodeQueue is a min-heap of nodes ordered by f, then insertion order.
type nodeQueue struct {
	items []node
	next  int
}

func (q *nodeQueue) push(tile, g, h int) {
	heap.Push(q, node{tile: tile, g: g, f: g + h, seq: q.next})
	q.next++
}

func (q *nodeQueue) Len() int { return len(q.items) }

func (q *nodeQueue) Less(i, j int) bool {
	if q.items[i].f != q.items[j].f {
		return q.items[i].f < q.items[j].f
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *nodeQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *nodeQueue) Push(x any) { q.items = append(q.items, x.(node)) }

func (q *nodeQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}
