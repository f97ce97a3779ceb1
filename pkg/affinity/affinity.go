// Package affinity computes CPU-core selections for cache-aware task
// pinning. The generated submission script defers the same computation to
// the shell at submission time; this package exists so tooling can preview
// and validate the selection at generation time.
package affinity

import (
	"errors"
	"strconv"
	"strings"
)

// ErrIncompleteTriple is returned when only some of the three affinity
// values are set. The CPU map is only meaningful with all of them.
var ErrIncompleteTriple = errors.New("must set all of l3cores, l3size, nodesize to generate an srun cpu map")

// Map returns the core indices i in [0, nodeSize) with i % l3Size < l3Cores,
// selecting the first l3Cores cores of every l3Size-sized cache group.
func Map(l3Cores, l3Size, nodeSize int) ([]int, error) {
	if l3Cores <= 0 || l3Size <= 0 || nodeSize <= 0 {
		return nil, ErrIncompleteTriple
	}

	var cores []int
	for i := 0; i < nodeSize; i++ {
		if i%l3Size < l3Cores {
			cores = append(cores, i)
		}
	}
	return cores, nil
}

// Format renders a core selection the way srun's map_cpu binding expects it.
func Format(cores []int) string {
	parts := make([]string, len(cores))
	for i, core := range cores {
		parts[i] = strconv.Itoa(core)
	}
	return strings.Join(parts, ",")
}

// TasksPerNode returns the task count implied by a core selection: the
// ntasks-per-node value must equal l3Cores*(nodeSize/l3Size) for the map to
// line up with the scheduler's task placement.
func TasksPerNode(l3Cores, l3Size, nodeSize int) (int, error) {
	if l3Cores <= 0 || l3Size <= 0 || nodeSize <= 0 {
		return 0, ErrIncompleteTriple
	}
	return l3Cores * (nodeSize / l3Size), nil
}
