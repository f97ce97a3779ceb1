package models

import (
	"fmt"
	"strings"
)

// WallTime is the requested wall-clock limit for a job, rendered as HH:MM:SS.
type WallTime struct {
	Hours   int `yaml:"hours" json:"hours"`
	Minutes int `yaml:"minutes" json:"minutes"`
	Seconds int `yaml:"seconds" json:"seconds"`
}

// String renders the limit with two-digit zero-padded fields.
func (t WallTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// SlurmHeader holds the SBATCH directive values for a submission script.
//
// The output and error patterns may contain the SLURM filename placeholders
// %x (job name) and %j (job id); both files are created under JobDirectory.
// Optional directives (switches, distribution, hint, mail-user, mail-type)
// are only emitted when they differ from their defaults, and flag directives
// (exclusive, requeue) only when true. See the sbatch documentation for the
// meaning of each field.
type SlurmHeader struct {
	Account       string   `yaml:"account" json:"account"`
	Partition     string   `yaml:"partition" json:"partition"`
	QOS           string   `yaml:"qos" json:"qos"`
	JobName       string   `yaml:"job_name" json:"job_name"`
	Output        string   `yaml:"output" json:"output"`
	Error         string   `yaml:"error" json:"error"`
	Nodes         int      `yaml:"nodes" json:"nodes"`
	NTasksPerNode int      `yaml:"ntasks_per_node" json:"ntasks_per_node"`
	Time          WallTime `yaml:"time" json:"time"`
	Switches      int      `yaml:"switches" json:"switches"`
	Distribution  string   `yaml:"distribution" json:"distribution"`
	Hint          string   `yaml:"hint" json:"hint"`
	Exclusive     bool     `yaml:"exclusive" json:"exclusive"`
	Requeue       bool     `yaml:"requeue" json:"requeue"`
	MailUser      string   `yaml:"mail_user" json:"mail_user"`
	MailType      string   `yaml:"mail_type" json:"mail_type"`
	BashPath      string   `yaml:"bash_path" json:"bash_path"`
	JobDirectory  string   `yaml:"job_directory" json:"job_directory"`
}

// DefaultSlurmHeader returns a header populated with the declared defaults.
// Fields without a default (account, job name, nodes, tasks, time) are left
// at their zero value and must be supplied by the caller.
func DefaultSlurmHeader() SlurmHeader {
	return SlurmHeader{
		Partition: "standard",
		QOS:       "standard",
		Output:    "slurm-%x-%j.out",
		Error:     "slurm-%x-%j.out",
		Switches:  -1,
		BashPath:  "!/bin/bash",
	}
}

// JobDir returns the job directory with any trailing slash stripped.
func (h SlurmHeader) JobDir() string {
	return strings.TrimRight(h.JobDirectory, "/")
}
