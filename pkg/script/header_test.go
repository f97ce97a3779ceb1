package script

import (
	"strings"
	"testing"

	"github.com/psantana5/slurmgen/pkg/models"
)

func testHeader() models.SlurmHeader {
	h := models.DefaultSlurmHeader()
	h.Account = "e781"
	h.JobName = "test_job"
	h.JobDirectory = "results"
	h.Nodes = 4
	h.NTasksPerNode = 16
	h.Time = models.WallTime{Hours: 1, Minutes: 5, Seconds: 9}
	return h
}

// parseSbatchDirectives re-parses a rendered header into a name->value map.
// Bare flag directives map to the empty string.
func parseSbatchDirectives(t *testing.T, header string) map[string]string {
	t.Helper()

	directives := make(map[string]string)
	for _, line := range strings.Split(header, "\n") {
		directive, ok := strings.CutPrefix(line, "#SBATCH --")
		if !ok {
			continue
		}
		name, value, _ := strings.Cut(directive, "=")
		if _, dup := directives[name]; dup {
			t.Errorf("directive %q rendered more than once", name)
		}
		directives[name] = value
	}
	return directives
}

func TestRenderHeader_MandatoryDirectives(t *testing.T) {
	rendered := RenderHeader(testHeader())

	if !strings.HasPrefix(rendered, "#!/bin/bash\n") {
		t.Errorf("expected bash shebang, got first line %q", strings.SplitN(rendered, "\n", 2)[0])
	}

	directives := parseSbatchDirectives(t, rendered)
	want := map[string]string{
		"account":         "e781",
		"partition":       "standard",
		"qos":             "standard",
		"job-name":        "test_job",
		"output":          "results/slurm-%x-%j.out",
		"error":           "results/slurm-%x-%j.out",
		"nodes":           "4",
		"ntasks-per-node": "16",
		"time":            "01:05:09",
	}
	for name, value := range want {
		if got := directives[name]; got != value {
			t.Errorf("directive %s = %q, want %q", name, got, value)
		}
	}
	if len(directives) != len(want) {
		t.Errorf("rendered %d directives, want %d: %v", len(directives), len(want), directives)
	}
}

func TestRenderHeader_TimePadding(t *testing.T) {
	tests := []struct {
		name string
		time models.WallTime
		want string
	}{
		{"all zero", models.WallTime{}, "00:00:00"},
		{"single digits", models.WallTime{Hours: 1, Minutes: 2, Seconds: 3}, "01:02:03"},
		{"double digits", models.WallTime{Hours: 12, Minutes: 34, Seconds: 56}, "12:34:56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHeader()
			h.Time = tt.time
			directives := parseSbatchDirectives(t, RenderHeader(h))
			if got := directives["time"]; got != tt.want {
				t.Errorf("time directive = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderHeader_OptionalDirectives(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.SlurmHeader)
		directive string
		want      string
		emitted   bool
	}{
		{"default distribution suppressed", func(h *models.SlurmHeader) {}, "distribution", "", false},
		{"distribution set", func(h *models.SlurmHeader) { h.Distribution = "block:block" }, "distribution", "block:block", true},
		{"default switches suppressed", func(h *models.SlurmHeader) {}, "switches", "", false},
		{"switches set", func(h *models.SlurmHeader) { h.Switches = 1 }, "switches", "1", true},
		{"hint set", func(h *models.SlurmHeader) { h.Hint = "nomultithread" }, "hint", "nomultithread", true},
		{"mail-user set", func(h *models.SlurmHeader) { h.MailUser = "user@example.com" }, "mail-user", "user@example.com", true},
		{"mail-type set", func(h *models.SlurmHeader) { h.MailType = "END,FAIL" }, "mail-type", "END,FAIL", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHeader()
			tt.mutate(&h)
			directives := parseSbatchDirectives(t, RenderHeader(h))
			got, emitted := directives[tt.directive]
			if emitted != tt.emitted {
				t.Fatalf("directive %s emitted = %v, want %v", tt.directive, emitted, tt.emitted)
			}
			if emitted && got != tt.want {
				t.Errorf("directive %s = %q, want %q", tt.directive, got, tt.want)
			}
		})
	}
}

func TestRenderHeader_FlagDirectives(t *testing.T) {
	h := testHeader()
	rendered := RenderHeader(h)
	if strings.Contains(rendered, "--exclusive") || strings.Contains(rendered, "--requeue") {
		t.Errorf("unset flags must not render:\n%s", rendered)
	}

	h.Exclusive = true
	h.Requeue = true
	rendered = RenderHeader(h)
	if !strings.Contains(rendered, "#SBATCH --exclusive\n") {
		t.Errorf("expected bare --exclusive line:\n%s", rendered)
	}
	if !strings.Contains(rendered, "#SBATCH --requeue\n") {
		t.Errorf("expected bare --requeue line:\n%s", rendered)
	}
	if strings.Contains(rendered, "--exclusive=") || strings.Contains(rendered, "--requeue=") {
		t.Errorf("flag directives must not carry values:\n%s", rendered)
	}
}

func TestRenderHeader_DirectiveOrder(t *testing.T) {
	h := testHeader()
	h.Distribution = "block:block"
	h.Hint = "nomultithread"
	h.Exclusive = true
	rendered := RenderHeader(h)

	order := []string{"--account", "--partition", "--qos", "--job-name", "--output",
		"--error", "--nodes", "--ntasks-per-node", "--time", "--distribution", "--hint", "--exclusive"}
	last := -1
	for _, name := range order {
		idx := strings.Index(rendered, name)
		if idx < 0 {
			t.Fatalf("directive %s missing:\n%s", name, rendered)
		}
		if idx < last {
			t.Errorf("directive %s rendered out of order", name)
		}
		last = idx
	}
}

func TestRenderHeader_TrailingSlash(t *testing.T) {
	with := testHeader()
	with.JobDirectory = "results/"
	without := testHeader()
	without.JobDirectory = "results"

	if RenderHeader(with) != RenderHeader(without) {
		t.Error("trailing slash on job directory must not change the header")
	}
}
