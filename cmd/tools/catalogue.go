package tools

import (
	"io"

	"github.com/Manu343726/isagen/pkg/config"
	"github.com/Manu343726/isagen/pkg/isa/catalogue"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var CatalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "Instruction set catalogue tools",
}

var catalogueExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the instruction set as a YAML catalogue",
	Long: `Exports the current instruction set (the built-in RISC-V instruction set, or the catalogue given
with --catalogue) as a YAML catalogue. The exported catalogue can be edited and fed back with --catalogue.`,
	Args: cobra.NoArgs,
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
			return catalogue.Export(w, set)
		})
	},
}

func init() {
	CatalogueCmd.AddCommand(catalogueExportCmd)
	catalogueExportCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the catalogue is dumped to stdout.")
}
