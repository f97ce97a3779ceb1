// Package jobspec loads a job specification file: a single YAML document
// with header, python, srun and singularity sections that together describe
// one submission script. Absent keys keep their declared defaults.
package jobspec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/psantana5/slurmgen/pkg/affinity"
	"github.com/psantana5/slurmgen/pkg/models"
	"github.com/psantana5/slurmgen/pkg/script"
)

// Spec is a complete job specification.
type Spec struct {
	Header      models.SlurmHeader     `yaml:"header" json:"header"`
	Python      models.PythonCall      `yaml:"python" json:"python"`
	Srun        models.SrunCall        `yaml:"srun" json:"srun"`
	Singularity models.SingularityCall `yaml:"singularity" json:"singularity"`
}

// Default returns a spec with every section at its declared defaults.
func Default() Spec {
	return Spec{
		Header:      models.DefaultSlurmHeader(),
		Python:      models.DefaultPythonCall(),
		Srun:        models.DefaultSrunCall(),
		Singularity: models.DefaultSingularityCall(),
	}
}

// Parse decodes a YAML job specification over the defaults.
func Parse(data []byte) (*Spec, error) {
	spec := Default()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse job spec: %w", err)
	}
	return &spec, nil
}

// Load reads and parses the job specification at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job spec %s: %w", path, err)
	}
	return Parse(data)
}

// Validate surfaces configuration errors before generation. A partially set
// affinity triple is the only invalid configuration; empty strings pass
// through to the generated text untouched.
func (s *Spec) Validate() error {
	if s.Srun.AffinityRequested() && !s.Srun.AffinityComplete() {
		return affinity.ErrIncompleteTriple
	}
	return nil
}

// Generate composes the submission script for this spec.
func (s *Spec) Generate() (string, error) {
	return script.Generate(s.Header, s.Python, s.Srun, s.Singularity)
}

// GenerateFile composes the script and writes it to path.
func (s *Spec) GenerateFile(path string) (string, error) {
	return script.GenerateFile(s.Header, s.Python, s.Srun, s.Singularity, path)
}
