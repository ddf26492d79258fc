package mapbuilder

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"hypermap/internal/domain/tile"
	errs "hypermap/internal/errors"
)

var validate = validator.New()

var hubNeighbors = [tile.Arity]int{1, 2, 3, 4, 5}

// expectedDegree is the number of populated slots per node id.
func expectedDegree(id int) int {
	switch {
	case id <= 5:
		return tile.Arity
	case id%3 == 0:
		return 2
	default:
		return 1
	}
}

// Validate reports the first invariant of the canonical map that m breaks.
func Validate(m tile.Map) error {
	if len(m) != NodeCount {
		return fmt.Errorf("%w: expected %d nodes, got %d", errs.ErrInvalidTopology, NodeCount, len(m))
	}

	for id, node := range m {
		if err := validate.Struct(node); err != nil {
			return fmt.Errorf("%w: node %d: %w", errs.ErrInvalidTopology, id, err)
		}
		if id >= 1 && id <= 5 && node.Neighbors[0] != 0 {
			return fmt.Errorf("%w: ring node %d must list the hub in slot 0", errs.ErrInvalidTopology, id)
		}

		seenEmpty := false
		for slot, n := range node.Neighbors {
			if n == tile.NoNeighbor {
				seenEmpty = true
				continue
			}
			if seenEmpty {
				return fmt.Errorf("%w: node %d: neighbor in slot %d follows an empty slot", errs.ErrInvalidTopology, id, slot)
			}
			if n == id {
				return fmt.Errorf("%w: node %d links to itself", errs.ErrInvalidTopology, id)
			}
			if !m.HasEdge(n, id) {
				return fmt.Errorf("%w: edge %d->%d has no reverse edge", errs.ErrInvalidTopology, id, n)
			}
		}

		if got, want := m.Degree(id), expectedDegree(id); got != want {
			return fmt.Errorf("%w: node %d has %d neighbors, expected %d", errs.ErrInvalidTopology, id, got, want)
		}
	}

	if m[0].Neighbors != hubNeighbors {
		return fmt.Errorf("%w: hub neighbors are %v, expected %v", errs.ErrInvalidTopology, m[0].Neighbors, hubNeighbors)
	}

	return nil
}
