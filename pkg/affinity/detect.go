package affinity

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
)

// Topology describes the CPU layout of the machine the generator runs on.
// It is a starting point for choosing NODESIZE when the submitting machine
// resembles the compute nodes; cluster documentation is authoritative.
type Topology struct {
	LogicalCores  int    `json:"logical_cores" yaml:"logical_cores"`
	PhysicalCores int    `json:"physical_cores" yaml:"physical_cores"`
	ModelName     string `json:"model_name" yaml:"model_name"`
}

// DetectTopology inspects the local machine's CPUs.
func DetectTopology() (*Topology, error) {
	logical, err := cpu.Counts(true)
	if err != nil {
		return nil, fmt.Errorf("failed to count logical CPUs: %w", err)
	}

	physical, err := cpu.Counts(false)
	if err != nil {
		return nil, fmt.Errorf("failed to count physical CPUs: %w", err)
	}

	topo := &Topology{
		LogicalCores:  logical,
		PhysicalCores: physical,
	}

	// Model name is informational only; ignore failures on platforms
	// where per-CPU info is unavailable.
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		topo.ModelName = infos[0].ModelName
	}

	return topo, nil
}
