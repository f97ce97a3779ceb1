package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Generate flags
	specFile   string
	scriptFile string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a submission script",
	Long: `Generate the sbatch submission script described by a job specification
file. The composed script is written to the path given with --out, or to
stdout when no path is given.

Example:
  slurmgen generate -f jobspec.yaml -o jobscript.sh
  slurmgen generate -f jobspec.yaml | less`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&specFile, "spec", "f", "", "path to the YAML job specification (required)")
	generateCmd.Flags().StringVarP(&scriptFile, "out", "o", "", "path to write the submission script to")
	generateCmd.MarkFlagRequired("spec")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(specFile)
	if err != nil {
		return err
	}

	if scriptFile != "" {
		if _, err := spec.GenerateFile(scriptFile); err != nil {
			return err
		}
		fmt.Printf("Submission script written to %s\n", scriptFile)
		return nil
	}

	text, err := spec.Generate()
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
