package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/isagen/pkg/config"
	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the instruction set and print a summary of its decode table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closer, err := config.Setup(viper.GetViper())
		if err != nil {
			return err
		}
		defer closer.Close()

		table, _, err := cfg.BuildTable(logger)
		if err != nil {
			return err
		}

		printSummary(cmd.OutOrStdout(), table)
		return nil
	},
}

func printSummary(w io.Writer, table *decoder.Table) {
	features := "none"
	if names := table.Features.Names(); len(names) > 0 {
		features = strings.Join(names, ", ")
	}

	colorHeader.Fprintf(w, "%v\n", table.Name)
	fmt.Fprintf(w, "features: %v\n", features)
	fmt.Fprintf(w, "instructions: %v (%v aliases)\n", len(table.Instructions), len(table.Aliases))

	for class, tree := range table.Trees {
		fmt.Fprintf(w, "  %v bit words: %v instructions, tree depth %v, largest leaf %v\n",
			tree.Class.Width, len(table.ClassInstructions(class)), tree.Root.Depth(), tree.Root.MaxLeafSize())
	}

	fmt.Fprintf(w, "hook groups: %v\n", len(table.HookGroups))

	for _, group := range table.HookGroups {
		fmt.Fprintf(w, "  %v (%v bit words): %v candidates\n", group.Hook, table.Classes[group.Class].Width, len(group.Candidates))
	}

	colorSuccess.Fprintln(w, "ok")
}
