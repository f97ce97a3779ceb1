package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/psantana5/slurmgen/pkg/jobspec"
)

var (
	cfgFile      string
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "slurmgen",
	Short: "SLURM submission script generator",
	Long: `slurmgen generates sbatch submission scripts from a YAML job
specification: SBATCH header directives, the python program invocation, the
srun launch wrapper with an optional CPU-affinity map, and the singularity
container wrapper. The generated script is plain text; nothing is submitted.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.slurmgen/config)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table or json")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		// Search config in home directory with name ".slurmgen/config" (without extension)
		configDir := filepath.Join(home, ".slurmgen")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Bind specific environment variables
	viper.BindEnv("account", "SLURMGEN_ACCOUNT")
	viper.BindEnv("partition", "SLURMGEN_PARTITION")
	viper.BindEnv("qos", "SLURMGEN_QOS")
	viper.BindEnv("mail_user", "SLURMGEN_MAIL_USER")

	// A missing config file is fine; the job spec carries everything needed
	_ = viper.ReadInConfig()
}

// applyConfigDefaults fills empty header fields from the user config file or
// environment, without overriding anything the job spec sets itself.
func applyConfigDefaults(spec *jobspec.Spec) {
	if spec.Header.Account == "" {
		spec.Header.Account = viper.GetString("account")
	}
	if spec.Header.Partition == "" {
		spec.Header.Partition = viper.GetString("partition")
	}
	if spec.Header.QOS == "" {
		spec.Header.QOS = viper.GetString("qos")
	}
	if spec.Header.MailUser == "" {
		spec.Header.MailUser = viper.GetString("mail_user")
	}
}

// loadSpec loads a job specification, applies config-file defaults and
// validates it.
func loadSpec(path string) (*jobspec.Spec, error) {
	spec, err := jobspec.Load(path)
	if err != nil {
		return nil, err
	}

	applyConfigDefaults(spec)

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

// IsJSONOutput returns true if JSON output is requested
func IsJSONOutput() bool {
	return outputFormat == "json"
}
