package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/isa/instructions"
	"github.com/Manu343726/isagen/pkg/isa/riscv"
	"github.com/Manu343726/isagen/pkg/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func init() {
	color.NoColor = true
}

func buildTable(t *testing.T, features ...string) *decoder.Table {
	table, err := decoder.NewBuilder(decoder.DefaultSettings()).Build(riscv.ISA(), instructions.NewFeatures(features...))
	require.NoError(t, err)
	return table
}

func decode(t *testing.T, table *decoder.Table, word uint32) *decoder.Decoded {
	decoded, ok := table.Decode(word)
	require.True(t, ok)
	return decoded
}

func TestPrintErrors(t *testing.T) {
	var out bytes.Buffer

	printErrors(&out, multierr.Combine(errors.New("first"), errors.New("second")))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, []string{"  error: first", "  error: second"}, lines)
}

func TestPrintErrors_ValidationErrors(t *testing.T) {
	var out bytes.Buffer

	err := multierr.Combine(
		instructions.ErrDuplicateMnemonic,
		decoder.ErrAmbiguousEncoding,
	)
	printErrors(&out, err)

	assert.True(t, strings.HasPrefix(out.String(), "invalid instruction set (2 errors):\n"))
	assert.Contains(t, out.String(), "  error: ambiguous encoding\n")
}

func TestPrintDecoded(t *testing.T) {
	table := buildTable(t)

	for _, test := range []struct {
		word     uint32
		expected string
	}{
		{0x00a10133, "0x00a10133  add x2, x2, x10\n"},
		{0x00000013, "0x00000013  nop  (alias of addi)\n"},
		{0x0505, "0x0505  c.addi x10, x10, 1\n"},
		{0x00208463, "0x00208463  beq x1, x2, 8  [bxx_decode: beq, bne, blt, bge, bltu, bgeu, p.beqimm, p.bneimm]\n"},
	} {
		var out bytes.Buffer
		printDecoded(&out, table, decode(t, table, test.word))
		assert.Equal(t, test.expected, out.String())
	}
}

func TestFormatDecoded_MatchesDecodedString(t *testing.T) {
	table := buildTable(t)

	for _, word := range []uint32{0x00c00093, 0x4144, 0x7085, 0x02c58533} {
		decoded := decode(t, table, word)
		assert.Equal(t, decoded.String(), formatDecoded(decoded))
	}
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer

	printSummary(&out, buildTable(t, riscv.FeatureDouble))

	text := out.String()
	assert.Contains(t, text, "features: d\n")
	assert.Contains(t, text, "  32 bit words: ")
	assert.Contains(t, text, "  16 bit words: ")
	assert.Contains(t, text, "bxx_decode (32 bit words): ")
	assert.True(t, strings.HasSuffix(text, "ok\n"))
}

func TestPrintSummary_NoFeatures(t *testing.T) {
	var out bytes.Buffer

	printSummary(&out, buildTable(t))
	assert.Contains(t, out.String(), "features: none\n")
}

func TestRun_ReportsErrorsOnce(t *testing.T) {
	var stderr bytes.Buffer

	cmd := &cobra.Command{
		Use:           "isagen",
		SilenceUsage:  RootCmd.SilenceUsage,
		SilenceErrors: RootCmd.SilenceErrors,
		RunE: func(cmd *cobra.Command, args []string) error {
			return multierr.Combine(
				utils.MakeError(decoder.ErrAmbiguousEncoding, "add and sub share fixed bits"),
				utils.MakeError(instructions.ErrDuplicateMnemonic, "add"),
			)
		},
	}
	cmd.SetArgs([]string{})
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)

	assert.Equal(t, 1, run(cmd, &stderr))

	text := stderr.String()
	assert.True(t, strings.HasPrefix(text, "invalid instruction set (2 errors):\n"))
	assert.Equal(t, 1, strings.Count(text, "add and sub share fixed bits"))
	assert.NotContains(t, text, "Error:")
}

func TestRun_Success(t *testing.T) {
	var stderr bytes.Buffer

	cmd := &cobra.Command{Use: "isagen", RunE: func(cmd *cobra.Command, args []string) error { return nil }}
	cmd.SetArgs([]string{})

	assert.Equal(t, 0, run(cmd, &stderr))
	assert.Empty(t, stderr.String())
}
