package mapbuilder

import "hypermap/internal/domain/tile"

// NodeCount is the number of tiles in the canonical map.
const NodeCount = 21

const x = tile.NoNeighbor

// canonical is the five-square map: hub 0, ring 1-5, junctions shared by
// neighboring ring tiles and two leaves per ring tile. Neighbors are clockwise.
var canonical = [NodeCount]tile.Node{
	0: {Neighbors: [tile.Arity]int{1, 2, 3, 4, 5}, State: tile.Empty},
	1: {Neighbors: [tile.Arity]int{0, 6, 7, 8, 9}, State: tile.Empty},
	2: {Neighbors: [tile.Arity]int{0, 9, 10, 11, 12}, State: tile.Red},
	3: {Neighbors: [tile.Arity]int{0, 12, 13, 14, 15}, State: tile.Green},
	4: {Neighbors: [tile.Arity]int{0, 15, 16, 17, 18}, State: tile.Blue},
	5: {Neighbors: [tile.Arity]int{0, 18, 19, 20, 6}, State: tile.Cyan},

	6: {Neighbors: [tile.Arity]int{1, 5, x, x, x}},

	7: {Neighbors: [tile.Arity]int{1, x, x, x, x}},
	8: {Neighbors: [tile.Arity]int{1, x, x, x, x}},
	9: {Neighbors: [tile.Arity]int{2, 1, x, x, x}},

	10: {Neighbors: [tile.Arity]int{2, x, x, x, x}},
	11: {Neighbors: [tile.Arity]int{2, x, x, x, x}},
	12: {Neighbors: [tile.Arity]int{3, 2, x, x, x}},

	13: {Neighbors: [tile.Arity]int{3, x, x, x, x}},
	14: {Neighbors: [tile.Arity]int{3, x, x, x, x}},
	15: {Neighbors: [tile.Arity]int{4, 3, x, x, x}},

	16: {Neighbors: [tile.Arity]int{4, x, x, x, x}},
	17: {Neighbors: [tile.Arity]int{4, x, x, x, x}},
	18: {Neighbors: [tile.Arity]int{5, 4, x, x, x}},

	19: {Neighbors: [tile.Arity]int{5, x, x, x, x}},
	20: {Neighbors: [tile.Arity]int{5, x, x, x, x}},
}

// Build returns a fresh copy of the canonical map. Callers may modify the
// result without affecting later calls.
func Build() tile.Map {
	m := make(tile.Map, NodeCount)
	copy(m, canonical[:])
	return m
}
