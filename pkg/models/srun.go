package models

// SrunCall describes the srun invocation that launches the job's tasks.
//
// The three affinity values describe the node's L3 cache topology: L3Cores
// tasks are pinned to each L3Size-sized group of cores across a node of
// NodeSize cores. Either all three are set (> 0) to generate a CPU map, or
// none are. Xthi requests a diagnostic rank-layout run before the workload.
type SrunCall struct {
	L3Cores  int    `yaml:"l3cores" json:"l3cores"`
	L3Size   int    `yaml:"l3size" json:"l3size"`
	NodeSize int    `yaml:"nodesize" json:"nodesize"`
	Args     string `yaml:"args" json:"args"`
	Xthi     bool   `yaml:"xthi" json:"xthi"`
}

// DefaultSrunCall returns a call with affinity mapping disabled.
func DefaultSrunCall() SrunCall {
	return SrunCall{
		L3Cores:  -1,
		L3Size:   -1,
		NodeSize: -1,
	}
}

// AffinityRequested reports whether any of the affinity values is set.
func (s SrunCall) AffinityRequested() bool {
	return s.L3Cores > 0 || s.L3Size > 0 || s.NodeSize > 0
}

// AffinityComplete reports whether all affinity values are set.
func (s SrunCall) AffinityComplete() bool {
	return s.L3Cores > 0 && s.L3Size > 0 && s.NodeSize > 0
}
