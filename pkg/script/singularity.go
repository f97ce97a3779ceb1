package script

import (
	"strings"

	"github.com/psantana5/slurmgen/pkg/models"
)

// SingularityArgs builds the combined singularity argument string in fixed
// order: home override, bind source, bind destination, then any extra
// arguments. The accumulator starts as the empty string, so a bind without a
// home override is well defined.
func SingularityArgs(c models.SingularityCall) string {
	args := ""
	if c.Home != "" {
		args = "--home " + c.Home
	}
	if c.BindFrom != "" {
		if args != "" && !strings.HasSuffix(args, " ") {
			args += " "
		}
		args += "--bind " + c.BindFrom
	}
	// The destination attaches to the bind argument itself, no separator.
	if c.BindTo != "" {
		args += ":" + c.BindTo
	}
	if c.Args != "" {
		if args != "" && !strings.HasSuffix(args, " ") {
			args += " "
		}
		args += c.Args
	}
	return args
}
