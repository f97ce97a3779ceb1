package models

// SingularityCall describes the container runtime invocation wrapping the
// job's program. Directory is exported as SIFDIR in the generated script and
// SetupFile is sourced from it before launch. BindFrom/BindTo form a single
// --bind source[:destination] argument.
type SingularityCall struct {
	Container string `yaml:"container" json:"container"`
	Args      string `yaml:"args" json:"args"`
	BindFrom  string `yaml:"bind_from" json:"bind_from"`
	BindTo    string `yaml:"bind_to" json:"bind_to"`
	Home      string `yaml:"home" json:"home"`
	Directory string `yaml:"directory" json:"directory"`
	SetupFile string `yaml:"setup_file" json:"setup_file"`
}

// DefaultSingularityCall returns an empty call; the container image name and
// directory are expected from the caller.
func DefaultSingularityCall() SingularityCall {
	return SingularityCall{}
}
