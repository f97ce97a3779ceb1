package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/psantana5/slurmgen/pkg/affinity"
	"github.com/psantana5/slurmgen/pkg/script"
)

var previewSpecFile string

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a job specification",
	Long: `Summarize what a job specification will generate without writing the
script: the SBATCH directives, the resolved output/error file paths, and the
CPU-affinity map when one is configured.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewSpecFile, "spec", "f", "", "path to the YAML job specification (required)")
	previewCmd.MarkFlagRequired("spec")
}

// directiveRow is one parsed #SBATCH line from the rendered header.
type directiveRow struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

type previewResult struct {
	Directives    []directiveRow `json:"directives"`
	OutputFile    string         `json:"output_file"`
	ErrorFile     string         `json:"error_file"`
	ErrorCopyBack bool           `json:"error_copy_back"`
	CPUMap        []int          `json:"cpu_map,omitempty"`
	TasksPerNode  int            `json:"affinity_tasks_per_node,omitempty"`
}

func runPreview(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(previewSpecFile)
	if err != nil {
		return err
	}

	outputFile, errorFile := script.ResolvePaths(spec.Header)

	result := previewResult{
		Directives:    parseDirectives(script.RenderHeader(spec.Header)),
		OutputFile:    outputFile,
		ErrorFile:     errorFile,
		ErrorCopyBack: errorFile != outputFile,
	}

	if spec.Srun.AffinityComplete() {
		// Validate() already ruled out a partial triple.
		result.CPUMap, _ = affinity.Map(spec.Srun.L3Cores, spec.Srun.L3Size, spec.Srun.NodeSize)
		result.TasksPerNode, _ = affinity.TasksPerNode(spec.Srun.L3Cores, spec.Srun.L3Size, spec.Srun.NodeSize)
	}

	if IsJSONOutput() {
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Directive", "Value")
	for _, d := range result.Directives {
		table.Append(d.Name, d.Value)
	}
	table.Render()

	fmt.Println()
	fmt.Printf("Output file: %s\n", result.OutputFile)
	fmt.Printf("Error file:  %s\n", result.ErrorFile)
	if result.ErrorCopyBack {
		fmt.Println("Separate error file copy-back will be emitted")
	}
	if result.CPUMap != nil {
		fmt.Printf("CPU map: %s (%d tasks per node)\n", affinity.Format(result.CPUMap), result.TasksPerNode)
	}

	return nil
}

// parseDirectives extracts the #SBATCH lines from a rendered header block.
func parseDirectives(header string) []directiveRow {
	var rows []directiveRow
	for _, line := range strings.Split(header, "\n") {
		directive, ok := strings.CutPrefix(line, "#SBATCH --")
		if !ok {
			continue
		}
		name, value, _ := strings.Cut(directive, "=")
		rows = append(rows, directiveRow{Name: name, Value: value})
	}
	return rows
}
