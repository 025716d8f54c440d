package cmd

import (
	"github.com/Manu343726/isagen/pkg/config"
	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/utils"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var decodeRaw bool

var decodeCmd = &cobra.Command{
	Use:   "decode WORD...",
	Short: "Decode instruction words with the decode table",
	Long: `Decodes instruction words with the in-process decode table and prints them in assembly syntax.

Words accept any integer literal syntax (0x00a10133, 0b0100000101000100, 16708). Compressed
instructions are identified by their two lowest bits, the upper half of their word is ignored.`,
	Args: cobra.MinimumNArgs(1),
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

		unknown := 0

		for _, arg := range args {
			word, err := utils.ParseUint(arg, 32)
			if err != nil {
				return err
			}

			decoded, ok := table.Decode(uint32(word))
			if !ok {
				colorWarning.Fprintf(cmd.OutOrStdout(), "%v  unknown instruction\n", utils.FormatUintHex(uint64(word), 8))
				unknown++
				continue
			}

			printDecoded(cmd.OutOrStdout(), table, decoded)

			if decodeRaw {
				spew.Fdump(cmd.OutOrStdout(), decoded.Operands)
			}
		}

		if unknown > 0 {
			return utils.MakeError(decoder.ErrUnknownInstruction, "%v of %v words did not match any instruction", unknown, len(args))
		}

		return nil
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeRaw, "raw", false, "Dump the decoded operands")
}
