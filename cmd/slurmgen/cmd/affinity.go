package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/psantana5/slurmgen/pkg/affinity"
)

var (
	// Affinity map flags
	l3Cores  int
	l3Size   int
	nodeSize int
)

// affinityCmd represents the affinity command
var affinityCmd = &cobra.Command{
	Use:   "affinity",
	Short: "CPU-affinity map tooling",
	Long: `Commands for inspecting the CPU-affinity map a job specification would
pin its tasks to, and for detecting the local CPU topology as a starting
point for choosing NODESIZE.`,
}

// affinityMapCmd represents the affinity map command
var affinityMapCmd = &cobra.Command{
	Use:   "map",
	Short: "Compute a CPU-affinity map",
	Long: `Compute the core selection for an L3-cache-aware CPU map: the first
l3cores cores of every l3size-sized cache group across a node of nodesize
cores. This is the same selection the generated script computes at
submission time.

Example:
  slurmgen affinity map --l3cores 2 --l3size 4 --nodesize 128`,
	RunE: runAffinityMap,
}

// affinityDetectCmd represents the affinity detect command
var affinityDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the local CPU topology",
	Long: `Detect the local machine's CPU counts. Useful as a NODESIZE starting
point when the submitting machine resembles the compute nodes; the cluster
documentation is authoritative.`,
	RunE: runAffinityDetect,
}

func init() {
	rootCmd.AddCommand(affinityCmd)
	affinityCmd.AddCommand(affinityMapCmd)
	affinityCmd.AddCommand(affinityDetectCmd)

	affinityMapCmd.Flags().IntVar(&l3Cores, "l3cores", -1, "cores to use per L3 cache group")
	affinityMapCmd.Flags().IntVar(&l3Size, "l3size", -1, "cores per L3 cache group")
	affinityMapCmd.Flags().IntVar(&nodeSize, "nodesize", -1, "total cores per node")
}

type affinityMapResult struct {
	L3Cores      int    `json:"l3cores"`
	L3Size       int    `json:"l3size"`
	NodeSize     int    `json:"nodesize"`
	CPUMap       []int  `json:"cpu_map"`
	Formatted    string `json:"formatted"`
	TasksPerNode int    `json:"tasks_per_node"`
}

func runAffinityMap(cmd *cobra.Command, args []string) error {
	cores, err := affinity.Map(l3Cores, l3Size, nodeSize)
	if err != nil {
		return err
	}

	tasks, err := affinity.TasksPerNode(l3Cores, l3Size, nodeSize)
	if err != nil {
		return err
	}

	result := affinityMapResult{
		L3Cores:      l3Cores,
		L3Size:       l3Size,
		NodeSize:     nodeSize,
		CPUMap:       cores,
		Formatted:    affinity.Format(cores),
		TasksPerNode: tasks,
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
	table.Header("Cache group", "Cores")
	for group := 0; group*l3Size < nodeSize; group++ {
		var groupCores []int
		for _, core := range cores {
			if core/l3Size == group {
				groupCores = append(groupCores, core)
			}
		}
		table.Append(strconv.Itoa(group), affinity.Format(groupCores))
	}
	table.Render()

	fmt.Println()
	fmt.Printf("CPU map: %s\n", result.Formatted)
	fmt.Printf("Required ntasks-per-node: %d\n", result.TasksPerNode)

	return nil
}

func runAffinityDetect(cmd *cobra.Command, args []string) error {
	topo, err := affinity.DetectTopology()
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		output, err := json.MarshalIndent(topo, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Println("Local CPU topology:")
	if topo.ModelName != "" {
		fmt.Printf("  Model: %s\n", topo.ModelName)
	}
	fmt.Printf("  Logical cores:  %d\n", topo.LogicalCores)
	fmt.Printf("  Physical cores: %d\n", topo.PhysicalCores)
	fmt.Println()
	fmt.Printf("Suggested NODESIZE: %d\n", topo.LogicalCores)

	return nil
}
