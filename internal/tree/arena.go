// Package tree builds a Huffman tree as a flat node arena addressed by
// index rather than by owned pointers. Leaves are appended first in
// ascending symbol order, then internal nodes are appended as the
// priority-queue merge proceeds, so every internal node's children always
// have a smaller index than the node itself and the root is always the
// last element.
package tree

import "container/heap"

// Node is either a leaf (carrying a symbol) or an internal node (carrying
// two child indices), tagged by IsLeaf rather than modeled via subtype
// polymorphism, so the arena stays a flat, cache-friendly slice.
type Node struct {
	Freq   uint64
	IsLeaf bool
	Symbol byte // valid when IsLeaf
	Left   int  // valid when !IsLeaf; index < this node's own index
	Right  int  // valid when !IsLeaf; index < this node's own index
}

// Arena is the ordered sequence of nodes. Root returns the index of the
// last node, which is always the tree root once Build has run; an empty
// arena (no symbols present) has no root.
type Arena []Node

// Root returns the index of the root node. For an empty arena it returns
// -1, which is not a valid index; callers must check Len() first.
func (a Arena) Root() int {
	return len(a) - 1
}

// Len reports the number of nodes in the arena.
func (a Arena) Len() int {
	return len(a)
}

// heapQueue is a min-priority queue of arena indices ordered by the
// referenced node's frequency. Equal frequencies are ordered by arena
// index, lower first, so Build is deterministic: tie order decides the
// tree's shape and therefore each symbol's code length, which
// canonicalization keeps.
type heapQueue struct {
	arena *Arena
	items []int
}

func (q heapQueue) Len() int { return len(q.items) }
func (q heapQueue) Less(i, j int) bool {
	a, b := (*q.arena)[q.items[i]], (*q.arena)[q.items[j]]
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return q.items[i] < q.items[j]
}
func (q heapQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *heapQueue) Push(x any) {
	q.items = append(q.items, x.(int))
}

func (q *heapQueue) Pop() any {
	old := q.items
	n := len(old)
	x := old[n-1]
	q.items = old[:n-1]
	return x
}

// Build constructs the node arena from a 256-bin byte histogram. An
// all-zero histogram yields an empty arena. A histogram with exactly one
// nonzero bin yields a single-leaf arena (the canonical dictionary assigns
// that symbol a one-bit code elsewhere; the arena itself has no internal
// nodes to build).
func Build(hist [256]uint64) Arena {
	arena := make(Arena, 0, 2*256-1)
	q := &heapQueue{arena: &arena}

	for sym := 0; sym < 256; sym++ {
		if hist[sym] == 0 {
			continue
		}
		arena = append(arena, Node{Freq: hist[sym], IsLeaf: true, Symbol: byte(sym)})
		heap.Push(q, len(arena)-1)
	}

	for q.Len() > 1 {
		a := heap.Pop(q).(int)
		b := heap.Pop(q).(int)
		arena = append(arena, Node{
			Freq:  arena[a].Freq + arena[b].Freq,
			Left:  a,
			Right: b,
		})
		heap.Push(q, len(arena)-1)
	}

	return arena
}
