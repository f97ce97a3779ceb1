package script

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/psantana5/slurmgen/pkg/models"
)

//go:embed templates/jobscript.sh.tmpl
var scriptTemplates embed.FS

// placeholderReplacer resolves the SLURM filename-pattern placeholders that
// output/error patterns may carry into references to the variables the
// scheduler provides at runtime.
var placeholderReplacer = strings.NewReplacer(
	"%x", "${SLURM_JOB_NAME}",
	"%j", "${SLURM_JOB_ID}",
)

// jobScriptValues feeds the jobscript template. All values are final text;
// the template does no computation of its own.
type jobScriptValues struct {
	HeaderText   string
	JobDirectory string

	PythonScript     string
	PythonScriptDir  string
	PythonScriptArgs string
	PythonArgs       string
	PythonExec       string

	SIFDir          string
	Container       string
	SingularityArgs string
	SetupFile       string

	SrunBlock string
	RunXthi   int

	OutputFile    string
	ErrorFile     string
	EmitErrorCopy bool
}

// ResolvePaths returns the job-directory-prefixed output and error file
// paths with %x and %j resolved to shell variable references.
func ResolvePaths(h models.SlurmHeader) (outputFile, errorFile string) {
	jobDir := h.JobDir()
	outputFile = placeholderReplacer.Replace(fmt.Sprintf("%s/%s", jobDir, h.Output))
	errorFile = placeholderReplacer.Replace(fmt.Sprintf("%s/%s", jobDir, h.Error))
	return outputFile, errorFile
}

// Generate composes the full submission script text: header, orchestration
// boilerplate, the rendered srun and singularity blocks, staging, execution
// and copy-back. The error copy-back block is appended only when the
// resolved error path differs from the resolved output path. Output is
// byte-identical for identical inputs.
func Generate(header models.SlurmHeader, python models.PythonCall, srun models.SrunCall, singularity models.SingularityCall) (string, error) {
	srunBlock, err := RenderSrun(srun)
	if err != nil {
		return "", err
	}

	outputFile, errorFile := ResolvePaths(header)

	runXthi := 0
	if srun.Xthi {
		runXthi = 1
	}

	values := jobScriptValues{
		HeaderText:   RenderHeader(header),
		JobDirectory: header.JobDir(),

		PythonScript:     python.ScriptName,
		PythonScriptDir:  python.ScriptDir,
		PythonScriptArgs: python.ScriptArgs,
		PythonArgs:       python.Args,
		PythonExec:       python.Path,

		SIFDir:          singularity.Directory,
		Container:       singularity.Container,
		SingularityArgs: SingularityArgs(singularity),
		SetupFile:       singularity.SetupFile,

		SrunBlock: srunBlock,
		RunXthi:   runXthi,

		OutputFile:    outputFile,
		ErrorFile:     errorFile,
		EmitErrorCopy: errorFile != outputFile,
	}

	t, err := template.ParseFS(scriptTemplates, "templates/*")
	if err != nil {
		return "", fmt.Errorf("failed to parse jobscript template: %w", err)
	}

	var script bytes.Buffer
	if err := t.ExecuteTemplate(&script, "jobscript.sh.tmpl", values); err != nil {
		return "", fmt.Errorf("failed to render jobscript: %w", err)
	}

	return script.String(), nil
}

// GenerateFile composes the script and writes it to path, overwriting any
// existing file. The composed text is returned either way.
func GenerateFile(header models.SlurmHeader, python models.PythonCall, srun models.SrunCall, singularity models.SingularityCall, path string) (string, error) {
	text, err := Generate(header, python, srun, singularity)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write submission script %s: %w", path, err)
	}

	return text, nil
}
