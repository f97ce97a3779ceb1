package models

// PythonCall describes the interpreter and script the job executes. It is
// pure data; every field is substituted verbatim into the generated script.
type PythonCall struct {
	Path       string `yaml:"path" json:"path"`
	Args       string `yaml:"args" json:"args"`
	ScriptName string `yaml:"script_name" json:"script_name"`
	ScriptDir  string `yaml:"script_dir" json:"script_dir"`
	ScriptArgs string `yaml:"script_args" json:"script_args"`
}

// DefaultPythonCall returns a call using the plain "python" interpreter.
func DefaultPythonCall() PythonCall {
	return PythonCall{
		Path: "python",
	}
}
