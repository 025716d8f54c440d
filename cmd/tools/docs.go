package tools

import (
	"fmt"
	"io"

	"github.com/Manu343726/isagen/pkg/config"
	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/isa/instructions"
	"github.com/Manu343726/isagen/pkg/isa/riscv"
	"github.com/Manu343726/isagen/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var DocsCmd = &cobra.Command{
	Use:   "docs [MNEMONIC...]",
	Short: "Show instruction documentation",
	Long: `Dumps the documentation of the given instructions: format, encoding diagram, operands and decode
details. Without arguments, documents every instruction enabled by the current features.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var mnemonics []string

		for _, subset := range riscv.ISA().Subsets {
			mnemonics = append(mnemonics, utils.Map(subset.Definitions, func(d *instructions.InstructionDefinition) string { return d.Mnemonic })...)
		}

		return mnemonics, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, closer, err := config.Setup(viper.GetViper())
		if err != nil {
			return err
		}
		defer closer.Close()

		set, err := cfg.InstructionSet()
		if err != nil {
			return err
		}

		return withOutput(cmd, func(w io.Writer) error {
			return writeDocs(w, set, cfg.FeatureSet(), args)
		})
	},
}

// Writes the documentation of the named definitions, or of every enabled definition if no mnemonic is given.
// Named definitions are searched across all subsets, enabled or not
func writeDocs(w io.Writer, set *instructions.InstructionSet, features instructions.Features, mnemonics []string) error {
	definitions := set.Definitions(features)

	if len(mnemonics) > 0 {
		definitions = make([]*instructions.InstructionDefinition, 0, len(mnemonics))

		for _, mnemonic := range mnemonics {
			definition := set.Lookup(mnemonic)
			if definition == nil {
				return utils.MakeError(decoder.ErrUnknownInstruction, "'%v'", mnemonic)
			}

			definitions = append(definitions, definition)
		}
	}

	for i, definition := range definitions {
		documentation, err := definition.Documentation(2)
		if err != nil {
			return fmt.Errorf("%v: %w", definition.Mnemonic, err)
		}

		if i > 0 {
			fmt.Fprintln(w)
		}

		if _, err := io.WriteString(w, documentation); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	DocsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
