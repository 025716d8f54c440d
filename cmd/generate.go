package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Manu343726/isagen/pkg/config"
	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/isa/emitter"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var printToStdout bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the C decode table of the instruction set",
	Long: `Validates the instruction set and writes the decode table as a C header and source pair.

Both files are written to temporary files first and moved into place only when both were
written, so a failed run never leaves partial output behind.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closer, err := config.Setup(viper.GetViper())
		if err != nil {
			return err
		}
		defer closer.Close()

		if !printToStdout && (cfg.HeaderFile == "" || cfg.SourceFile == "") {
			return fmt.Errorf("both --header-file and --source-file are required (or use --stdout)")
		}

		table, _, err := cfg.BuildTable(logger)
		if err != nil {
			return err
		}

		settings := emitter.DefaultSettings()
		settings.Logger = logger

		generator, err := emitter.NewGenerator(settings)
		if err != nil {
			return err
		}

		if printToStdout {
			return printGenerated(cmd.OutOrStdout(), generator, table)
		}

		if err := generator.Write(config.Fs, table, cfg.HeaderFile, cfg.SourceFile); err != nil {
			return err
		}

		colorSuccess.Fprintf(cmd.OutOrStdout(), "%v decode table written to %v and %v (%v instructions)\n",
			table.Name, cfg.HeaderFile, cfg.SourceFile, len(table.Instructions))
		return nil
	},
}

func printGenerated(w io.Writer, generator *emitter.Generator, table *decoder.Table) error {
	var header, source bytes.Buffer

	if err := generator.Render(table, &header, &source); err != nil {
		return err
	}

	for _, code := range []string{header.String(), source.String()} {
		if color.NoColor {
			if _, err := io.WriteString(w, code); err != nil {
				return err
			}
		} else if err := emitter.Highlight(w, code); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	generateCmd.Flags().StringP("header-file", "H", "", "Output header file")
	generateCmd.Flags().StringP("source-file", "S", "", "Output source file")
	generateCmd.Flags().BoolVar(&printToStdout, "stdout", false, "Print the generated files to stdout instead of writing them")

	cobra.CheckErr(viper.BindPFlag(config.KeyHeaderFile, generateCmd.Flags().Lookup("header-file")))
	cobra.CheckErr(viper.BindPFlag(config.KeySourceFile, generateCmd.Flags().Lookup("source-file")))
}
