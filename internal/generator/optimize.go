package generator

import "svw.info/colorfocus/internal/domain"

// Stroop interference optimization: greedily swap cell positions so more
// cells sit next to a neighbor whose word names their ink (or vice versa).
// Swapping whole cells moves positions only, so ink and word multisets and
// the congruent-cell count are preserved, and the pass stays deterministic.

// adjacentIndices returns the orthogonal neighbors of a flat cell index.
// Grid-boundary neighbors are omitted; there is no wraparound.
func adjacentIndices(idx, gridSize int) []int {
	row, col := idx/gridSize, idx%gridSize
	adj := make([]int, 0, 4)
	if row > 0 {
		adj = append(adj, idx-gridSize)
	}
	if col > 0 {
		adj = append(adj, idx-1)
	}
	if col < gridSize-1 {
		adj = append(adj, idx+1)
	}
	if row < gridSize-1 {
		adj = append(adj, idx+gridSize)
	}
	return adj
}

// interferenceAt counts word/ink matches between the cell at idx and its
// orthogonal neighbors, in both directions: the neighbor's word naming this
// cell's ink primes misreading it, and this cell's word primes the neighbor.
func interferenceAt(cells []domain.PuzzleCell, idx, gridSize int) int {
	n := 0
	for _, j := range adjacentIndices(idx, gridSize) {
		if cells[idx].InkColor == cells[j].Word {
			n++
		}
		if cells[idx].Word == cells[j].InkColor {
			n++
		}
	}
	return n
}

func totalInterference(cells []domain.PuzzleCell, gridSize int) int {
	sum := 0
	for i := range cells {
		sum += interferenceAt(cells, i, gridSize)
	}
	return sum
}

// localInterference sums interference over the two swap positions and
// their neighborhoods, the only cells a swap can affect.
func localInterference(cells []domain.PuzzleCell, i, j, gridSize int) int {
	seen := map[int]bool{i: true, j: true}
	for _, n := range adjacentIndices(i, gridSize) {
		seen[n] = true
	}
	for _, n := range adjacentIndices(j, gridSize) {
		seen[n] = true
	}
	sum := 0
	for idx := range seen {
		sum += interferenceAt(cells, idx, gridSize)
	}
	return sum
}

// optimizeInterference runs a single greedy pass over all position pairs in
// fixed order, keeping any swap that strictly increases interference. The
// total never decreases, and fixed iteration order keeps the result a pure
// function of the input cells.
func optimizeInterference(cells []domain.PuzzleCell, gridSize int) {
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if cells[i] == cells[j] {
				continue
			}
			before := localInterference(cells, i, j, gridSize)
			cells[i], cells[j] = cells[j], cells[i]
			if localInterference(cells, i, j, gridSize) <= before {
				cells[i], cells[j] = cells[j], cells[i]
			}
		}
	}
}
