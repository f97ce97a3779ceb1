package script

import (
	"fmt"
	"strings"

	"github.com/psantana5/slurmgen/pkg/affinity"
	"github.com/psantana5/slurmgen/pkg/models"
)

// cpuMapExpr is the CPU map as a shell-deferred expression. The selection is
// recomputed at submission time from the L3CORES/L3SIZE/NODESIZE variables
// the script defines, so editing those variables in the generated script
// keeps the map consistent.
const cpuMapExpr = `$(python3 -c "print(','.join(map(str,filter(lambda i: (i%${L3SIZE})<${L3CORES}, range(${NODESIZE})))))")`

const affinityComment = `# L3 cache is the lowest level of shared memory, with L3SIZE cores per cache
# and NODESIZE/L3SIZE L3 caches per node. Using fewer than L3SIZE cores/L3
# cache may improve strong scaling performance for memory bound applications.
# The ntasks-per-node value must be equal to L3CORES*(NODESIZE/L3SIZE).`

// RenderSrun renders the srun launch block: the optional CPU-affinity
// variable assignments followed by the SRUN_ARGS and SRUN_CALL definitions.
// Setting only some of the three affinity values is the one configuration
// error in the whole pipeline and returns affinity.ErrIncompleteTriple.
func RenderSrun(s models.SrunCall) (string, error) {
	args := s.Args

	var b strings.Builder
	if s.AffinityRequested() {
		if !s.AffinityComplete() {
			return "", affinity.ErrIncompleteTriple
		}

		args += " --cpu_bind=map_cpu:${CPU_MAP}"
		b.WriteString("\n")
		b.WriteString(affinityComment)
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "L3CORES=%d\n", s.L3Cores)
		fmt.Fprintf(&b, "L3SIZE=%d\n", s.L3Size)
		fmt.Fprintf(&b, "NODESIZE=%d\n", s.NodeSize)
		b.WriteString("\n")
		fmt.Fprintf(&b, "CPU_MAP=%s\n", cpuMapExpr)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "SRUN_ARGS=\"%s\"\n", args)
	b.WriteString("SRUN_CALL=\"srun ${SRUN_ARGS}\"\n")

	return b.String(), nil
}
