package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Manu343726/isagen/cmd/tools"
	"github.com/Manu343726/isagen/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "isagen",
	Short: "Instruction set decode table generator",
	Long: `isagen compiles a declarative description of an instruction set (the built-in RISC-V
instruction set with its PULP and GAP8 extensions, or a YAML catalogue) into a validated decode
table, and emits it as a C header and source pair for an instruction set simulator.

Optional instruction subsets are enabled with --feature (e.g. --feature d --feature gap8).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(run(RootCmd, os.Stderr))
}

// Runs the command, reporting its errors once, and returns the process exit code
func run(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		printErrors(stderr, err)
		return 1
	}

	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.isagen.yaml)")
	flags.StringSliceP("feature", "f", nil, "Enable an optional instruction subset. Can be repeated")
	flags.String("catalogue", "", "YAML instruction set catalogue to use instead of the built-in RISC-V instruction set")
	flags.Int("load-latency", 0, "Latency, in cycles, of the registers written by load instructions")
	flags.String("log-level", "", "Console log level (debug, info, warn, error)")
	flags.String("log-file", "", "Also write JSON logs to this file")

	cobra.CheckErr(viper.BindPFlag(config.KeyFeatures, flags.Lookup("feature")))
	cobra.CheckErr(viper.BindPFlag(config.KeyCatalogue, flags.Lookup("catalogue")))
	cobra.CheckErr(viper.BindPFlag(config.KeyLoadLatency, flags.Lookup("load-latency")))
	cobra.CheckErr(viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag(config.KeyLogFile, flags.Lookup("log-file")))

	RootCmd.AddCommand(generateCmd, checkCmd, decodeCmd)
	RootCmd.AddCommand(tools.DocsCmd, tools.CatalogueCmd, tools.BrowseCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".isagen" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".isagen")
	}

	config.BindEnvironment(viper.GetViper())

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
