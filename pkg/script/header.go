// Package script renders SLURM sbatch submission scripts from the
// configuration records in pkg/models. Rendering is a pure string pipeline;
// nothing is executed and nothing is validated against a live scheduler.
package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/psantana5/slurmgen/pkg/models"
)

// optionalDirective pairs an sbatch directive with its rendered value and the
// rendered declared default. The directive is emitted only when the two
// differ. Comparing rendered strings keeps the default table explicit
// instead of leaning on reflection.
type optionalDirective struct {
	name         string
	value        string
	defaultValue string
}

// flagDirective is an sbatch directive set by presence, not value.
type flagDirective struct {
	name string
	set  bool
}

// optionalDirectives lists the value-carrying optional directives in their
// declared order. Underscores in field names become hyphens here.
func optionalDirectives(h models.SlurmHeader) []optionalDirective {
	defaults := models.DefaultSlurmHeader()
	return []optionalDirective{
		{"switches", strconv.Itoa(h.Switches), strconv.Itoa(defaults.Switches)},
		{"distribution", h.Distribution, defaults.Distribution},
		{"hint", h.Hint, defaults.Hint},
		{"mail-user", h.MailUser, defaults.MailUser},
		{"mail-type", h.MailType, defaults.MailType},
	}
}

func flagDirectives(h models.SlurmHeader) []flagDirective {
	return []flagDirective{
		{"exclusive", h.Exclusive},
		{"requeue", h.Requeue},
	}
}

// RenderHeader renders the SBATCH directive block: shebang, mandatory
// directives, then optional directives that differ from their defaults, then
// flag directives that are set.
func RenderHeader(h models.SlurmHeader) string {
	jobDir := h.JobDir()

	var b strings.Builder
	fmt.Fprintf(&b, "#%s\n", h.BashPath)
	b.WriteString("#\n")
	fmt.Fprintf(&b, "#SBATCH --account=%s\n", h.Account)
	fmt.Fprintf(&b, "#SBATCH --partition=%s\n", h.Partition)
	fmt.Fprintf(&b, "#SBATCH --qos=%s\n", h.QOS)
	b.WriteString("#\n")
	fmt.Fprintf(&b, "#SBATCH --job-name=%s\n", h.JobName)
	fmt.Fprintf(&b, "#SBATCH --output=%s/%s\n", jobDir, h.Output)
	fmt.Fprintf(&b, "#SBATCH --error=%s/%s\n", jobDir, h.Error)
	b.WriteString("#\n")
	fmt.Fprintf(&b, "#SBATCH --nodes=%d\n", h.Nodes)
	fmt.Fprintf(&b, "#SBATCH --ntasks-per-node=%d\n", h.NTasksPerNode)
	b.WriteString("#\n")
	fmt.Fprintf(&b, "#SBATCH --time=%s\n", h.Time)

	for _, opt := range optionalDirectives(h) {
		if opt.value != opt.defaultValue {
			b.WriteString("#\n")
			fmt.Fprintf(&b, "#SBATCH --%s=%s\n", opt.name, opt.value)
		}
	}

	for _, flag := range flagDirectives(h) {
		if flag.set {
			b.WriteString("#\n")
			fmt.Fprintf(&b, "#SBATCH --%s\n", flag.name)
		}
	}

	return b.String()
}
